// Package blendshape defines the normalized facial-animation frame model and
// the translation from raw upstream records into timestamped frames.
//
// An inference provider returns one raw record per animation frame. Depending
// on the upstream wire format a record is either a mapping from coefficient
// name to weight, or a flat ordered list of weights without names. Translate
// normalizes both shapes into the [Frame] sequence consumed by clients.
package blendshape

import (
	"encoding/json"
	"fmt"
)

// Frame is a single normalized animation frame: a playback timestamp in
// seconds and the blendshape coefficient weights active at that instant.
type Frame struct {
	Timestamp   float64            `json:"timestamp"`
	Blendshapes map[string]float64 `json:"blendshapes"`
}

// Raw is one upstream frame record before normalization. Exactly one of the
// two fields is populated: Named when the upstream sent a name→weight
// mapping, Values when it sent a flat ordered weight list.
type Raw struct {
	Named  map[string]float64
	Values []float64
}

// UnmarshalJSON accepts either a JSON object ({"jawOpen": 0.1, ...}) or a
// JSON array ([0.1, 0.0, ...]), matching the two shapes the NVCF REST API
// emits for blendshape frames. Numeric values are coerced to float64.
func (r *Raw) UnmarshalJSON(data []byte) error {
	// Cheap shape sniff: the first non-space byte decides object vs array.
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			r.Values = nil
			return json.Unmarshal(data, &r.Named)
		case '[':
			r.Named = nil
			return json.Unmarshal(data, &r.Values)
		default:
			return fmt.Errorf("blendshape: frame record must be a JSON object or array, got %q", b)
		}
	}
	return fmt.Errorf("blendshape: empty frame record")
}

// Translate converts n raw records into n normalized frames at the given
// output frame rate. The i-th frame is stamped i/fps seconds. Record order is
// preserved; no reordering or interpolation happens here.
//
// For flat records the coefficient name for index j is names[j] when the name
// table covers it, otherwise the synthesized placeholder "blendshape_<j>".
// names may be nil. An empty input yields an empty, non-nil slice.
func Translate(raw []Raw, fps int, names []string) []Frame {
	frames := make([]Frame, 0, len(raw))
	for i, rec := range raw {
		f := Frame{
			Timestamp:   float64(i) / float64(fps),
			Blendshapes: make(map[string]float64, weightCount(rec)),
		}
		if rec.Named != nil {
			for k, v := range rec.Named {
				f.Blendshapes[k] = v
			}
		} else {
			for j, v := range rec.Values {
				f.Blendshapes[coefficientName(names, j)] = v
			}
		}
		frames = append(frames, f)
	}
	return frames
}

// Duration returns the playback duration in seconds of frameCount frames at
// the given rate. Zero frames means zero duration.
func Duration(frameCount, fps int) float64 {
	if frameCount == 0 {
		return 0
	}
	return float64(frameCount) / float64(fps)
}

// coefficientName resolves the name for a flat-record weight at index j.
func coefficientName(names []string, j int) string {
	if j < len(names) && names[j] != "" {
		return names[j]
	}
	return fmt.Sprintf("blendshape_%d", j)
}

func weightCount(r Raw) int {
	if r.Named != nil {
		return len(r.Named)
	}
	return len(r.Values)
}
