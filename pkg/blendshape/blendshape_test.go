package blendshape

import (
	"encoding/json"
	"math"
	"testing"
)

func TestTranslate_MappingFrames(t *testing.T) {
	raw := []Raw{
		{Named: map[string]float64{"jawOpen": 0.1}},
		{Named: map[string]float64{"jawOpen": 0.2}},
		{Named: map[string]float64{"jawOpen": 0.0}},
	}

	frames := Translate(raw, 60, nil)
	if len(frames) != 3 {
		t.Fatalf("len(frames) = %d, want 3", len(frames))
	}
	for i, want := range []float64{0, 1.0 / 60, 2.0 / 60} {
		if math.Abs(frames[i].Timestamp-want) > 1e-9 {
			t.Errorf("frames[%d].Timestamp = %v, want %v", i, frames[i].Timestamp, want)
		}
	}
	wantWeights := []float64{0.1, 0.2, 0.0}
	for i, w := range wantWeights {
		if got := frames[i].Blendshapes["jawOpen"]; got != w {
			t.Errorf("frames[%d].jawOpen = %v, want %v", i, got, w)
		}
	}
}

func TestTranslate_FlatFramesSynthesizeNames(t *testing.T) {
	raw := []Raw{
		{Values: []float64{0.1, 0.2, 0.3}},
		{Values: []float64{0.4, 0.5, 0.6}},
	}

	frames := Translate(raw, 30, nil)
	if len(frames) != 2 {
		t.Fatalf("len(frames) = %d, want 2", len(frames))
	}
	for i, f := range frames {
		if len(f.Blendshapes) != 3 {
			t.Fatalf("frames[%d] has %d keys, want 3", i, len(f.Blendshapes))
		}
		for _, key := range []string{"blendshape_0", "blendshape_1", "blendshape_2"} {
			if _, ok := f.Blendshapes[key]; !ok {
				t.Errorf("frames[%d] missing key %q", i, key)
			}
		}
	}
	if got := frames[1].Blendshapes["blendshape_2"]; got != 0.6 {
		t.Errorf("frames[1].blendshape_2 = %v, want 0.6", got)
	}
}

func TestTranslate_NameTable(t *testing.T) {
	raw := []Raw{{Values: []float64{0.4, 0.9, 0.1}}}
	names := []string{"jawOpen", "eyeBlinkLeft"}

	frames := Translate(raw, 60, names)
	bs := frames[0].Blendshapes
	if got := bs["jawOpen"]; got != 0.4 {
		t.Errorf("jawOpen = %v, want 0.4", got)
	}
	if got := bs["eyeBlinkLeft"]; got != 0.9 {
		t.Errorf("eyeBlinkLeft = %v, want 0.9", got)
	}
	// Index 2 is past the name table and falls back to the placeholder.
	if got := bs["blendshape_2"]; got != 0.1 {
		t.Errorf("blendshape_2 = %v, want 0.1", got)
	}
}

func TestTranslate_EmptyInput(t *testing.T) {
	frames := Translate(nil, 60, nil)
	if frames == nil {
		t.Fatal("Translate(nil) = nil, want empty non-nil slice")
	}
	if len(frames) != 0 {
		t.Errorf("len(frames) = %d, want 0", len(frames))
	}
}

func TestTranslate_OrderPreserved(t *testing.T) {
	raw := make([]Raw, 100)
	for i := range raw {
		raw[i] = Raw{Named: map[string]float64{"idx": float64(i)}}
	}
	frames := Translate(raw, 24, nil)
	for i, f := range frames {
		if got := f.Blendshapes["idx"]; got != float64(i) {
			t.Fatalf("frames[%d].idx = %v, want %d", i, got, i)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		frames int
		fps    int
		want   float64
	}{
		{0, 60, 0},
		{3, 60, 0.05},
		{60, 60, 1},
		{90, 30, 3},
	}
	for _, tc := range tests {
		if got := Duration(tc.frames, tc.fps); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Duration(%d, %d) = %v, want %v", tc.frames, tc.fps, got, tc.want)
		}
	}
}

func TestRawUnmarshal_Object(t *testing.T) {
	var r Raw
	if err := json.Unmarshal([]byte(`{"jawOpen": 0.5, "mouthSmile": 0.25}`), &r); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}
	if r.Values != nil {
		t.Error("Values should be nil for an object record")
	}
	if got := r.Named["jawOpen"]; got != 0.5 {
		t.Errorf("jawOpen = %v, want 0.5", got)
	}
}

func TestRawUnmarshal_Array(t *testing.T) {
	var r Raw
	if err := json.Unmarshal([]byte(` [0.1, 0.2, 0.3]`), &r); err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if r.Named != nil {
		t.Error("Named should be nil for an array record")
	}
	if len(r.Values) != 3 || r.Values[1] != 0.2 {
		t.Errorf("Values = %v, want [0.1 0.2 0.3]", r.Values)
	}
}

func TestRawUnmarshal_Invalid(t *testing.T) {
	var r Raw
	if err := json.Unmarshal([]byte(`"nope"`), &r); err == nil {
		t.Error("expected error for scalar record, got nil")
	}
	if err := json.Unmarshal([]byte(`42`), &r); err == nil {
		t.Error("expected error for numeric record, got nil")
	}
}

func TestFrameJSONShape(t *testing.T) {
	f := Frame{Timestamp: 0.05, Blendshapes: map[string]float64{"jawOpen": 0.1}}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["timestamp"]; !ok {
		t.Error("missing timestamp key")
	}
	if _, ok := decoded["blendshapes"]; !ok {
		t.Error("missing blendshapes key")
	}
}
