package draft

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Segment is a caption placed on the timeline, in microseconds.
type Segment struct {
	MaterialID string
	Start      int64
	Duration   int64
}

// End is the exclusive end of the segment.
func (s Segment) End() int64 {
	return s.Start + s.Duration
}

// CollectSegments gathers every segment that references a resolved text,
// across all tracks, ordered by start time. Segments sharing a start keep
// their track order.
func CollectSegments(tracks []Track, texts map[string]TextMaterial) ([]Segment, error) {
	var segments []Segment
	for ti, track := range tracks {
		for si, raw := range track.Segments {
			if raw.MaterialID == "" {
				continue
			}
			if _, ok := texts[raw.MaterialID]; !ok {
				continue
			}

			seg, err := toSegment(raw)
			if err != nil {
				return nil, &ParseError{
					Op:         OpSegment,
					Track:      ti,
					Segment:    si,
					MaterialID: raw.MaterialID,
					Err:        err,
				}
			}
			segments = append(segments, seg)
		}
	}

	slices.SortStableFunc(segments, func(a, b Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return segments, nil
}

func toSegment(raw RawSegment) (Segment, error) {
	if raw.TargetTimerange == nil {
		return Segment{}, errors.New("missing target_timerange")
	}

	start, ok, err := parseMicros(raw.TargetTimerange.Start)
	if err != nil {
		return Segment{}, fmt.Errorf("target_timerange.start: %w", err)
	}
	if !ok {
		return Segment{}, errors.New("missing target_timerange.start")
	}

	duration, ok, err := parseMicros(raw.TargetTimerange.Duration)
	if err != nil {
		return Segment{}, fmt.Errorf("target_timerange.duration: %w", err)
	}
	if !ok {
		return Segment{}, errors.New("missing target_timerange.duration")
	}

	return Segment{
		MaterialID: raw.MaterialID,
		Start:      start,
		Duration:   duration,
	}, nil
}
