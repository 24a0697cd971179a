package ace_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MrWong99/a2fbridge/pkg/a2fpb"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference"
	"github.com/MrWong99/a2fbridge/pkg/provider/inference/ace"
)

// fakeClient is an in-memory AnimationServiceClient.
type fakeClient struct {
	lastReq *a2fpb.ProcessAudioRequest
	lastMD  metadata.MD
	resp    *a2fpb.ProcessAudioResponse
	err     error
}

func (f *fakeClient) ProcessAudio(ctx context.Context, in *a2fpb.ProcessAudioRequest, _ ...grpc.CallOption) (*a2fpb.ProcessAudioResponse, error) {
	f.lastReq = in
	f.lastMD, _ = metadata.FromOutgoingContext(ctx)
	return f.resp, f.err
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := ace.New("host:443", ""); err == nil {
		t.Error("expected error for empty apiKey, got nil")
	}
}

func TestNew_RequiresTargetWithoutClient(t *testing.T) {
	if _, err := ace.New("", "nvapi-test"); err == nil {
		t.Error("expected error for empty target, got nil")
	}
}

func TestAnimate_Success(t *testing.T) {
	fc := &fakeClient{
		resp: &a2fpb.ProcessAudioResponse{
			BlendshapeNames: []string{"jawOpen", "eyeBlinkLeft"},
			Frames: []*a2fpb.AnimationFrame{
				{Values: []float32{0.1, 0.9}},
				{Values: []float32{0.2, 0.8}},
			},
		},
	}
	p, err := ace.New("", "nvapi-test", ace.WithClient(fc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	audio := []byte("raw audio bytes")
	res, err := p.Animate(context.Background(), inference.Request{
		Audio:      base64.StdEncoding.EncodeToString(audio),
		Format:     "wav",
		FunctionID: "func-1",
		OutputFPS:  30,
	})
	if err != nil {
		t.Fatalf("Animate: %v", err)
	}

	if string(fc.lastReq.GetAudio()) != string(audio) {
		t.Errorf("audio = %q, want decoded payload", fc.lastReq.GetAudio())
	}
	if fc.lastReq.GetFormat() != "wav" {
		t.Errorf("format = %q, want wav", fc.lastReq.GetFormat())
	}
	if fc.lastReq.GetOutputFps() != 30 {
		t.Errorf("output_fps = %d, want 30", fc.lastReq.GetOutputFps())
	}
	if fc.lastReq.GetFunctionId() != "func-1" {
		t.Errorf("function_id = %q, want func-1", fc.lastReq.GetFunctionId())
	}

	if got := fc.lastMD.Get("authorization"); len(got) != 1 || got[0] != "Bearer nvapi-test" {
		t.Errorf("authorization metadata = %v, want [Bearer nvapi-test]", got)
	}

	if len(res.Frames) != 2 {
		t.Fatalf("len(frames) = %d, want 2", len(res.Frames))
	}
	if got := res.Frames[0].Values; len(got) != 2 || got[1] != float64(float32(0.9)) {
		t.Errorf("frames[0].Values = %v", got)
	}
	if len(res.Names) != 2 || res.Names[0] != "jawOpen" {
		t.Errorf("names = %v, want [jawOpen eyeBlinkLeft]", res.Names)
	}
}

func TestAnimate_RPCError(t *testing.T) {
	fc := &fakeClient{
		err: status.Error(codes.ResourceExhausted, "quota exceeded"),
	}
	p, _ := ace.New("", "nvapi-test", ace.WithClient(fc))

	_, err := p.Animate(context.Background(), inference.Request{
		Audio:      base64.StdEncoding.EncodeToString([]byte("x")),
		FunctionID: "f",
		OutputFPS:  60,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var ue *inference.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("error type = %T, want *inference.UpstreamError", err)
	}
	if ue.StatusCode != int(codes.ResourceExhausted) {
		t.Errorf("StatusCode = %d, want %d", ue.StatusCode, codes.ResourceExhausted)
	}
	if ue.Detail != "quota exceeded" {
		t.Errorf("Detail = %q, want quota exceeded", ue.Detail)
	}
}

func TestAnimate_BadBase64(t *testing.T) {
	p, _ := ace.New("", "nvapi-test", ace.WithClient(&fakeClient{}))
	_, err := p.Animate(context.Background(), inference.Request{
		Audio:      "not base64!!!",
		FunctionID: "f",
		OutputFPS:  60,
	})
	if err == nil {
		t.Error("expected error for invalid base64, got nil")
	}
}

func TestClose_NoDialIsNoOp(t *testing.T) {
	p, _ := ace.New("", "nvapi-test", ace.WithClient(&fakeClient{}))
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
