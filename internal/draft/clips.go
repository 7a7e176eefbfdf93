package draft

import "fmt"

// Clip is a source video or audio in declaration order.
type Clip struct {
	Name     string
	Duration int64
}

// Window is the [Start, End) span of the timeline attributed to one clip.
type Window struct {
	Name  string
	Start int64
	End   int64
}

// Duration of the window in microseconds.
func (w Window) Duration() int64 {
	return w.End - w.Start
}

// Contains reports whether t falls in [Start, End).
func (w Window) Contains(t int64) bool {
	return w.Start <= t && t < w.End
}

// NormalizeClips lists videos then audios as uniform clips. A missing or
// null duration counts as 0.
func NormalizeClips(m *Materials) ([]Clip, error) {
	if m == nil {
		return nil, nil
	}

	clips := make([]Clip, 0, len(m.Videos)+len(m.Audios))
	for _, list := range [][]ClipMaterial{m.Videos, m.Audios} {
		for _, mat := range list {
			name := mat.clipName()
			duration, _, err := parseMicros(mat.Duration)
			if err != nil {
				return nil, &ParseError{
					Op:   OpClip,
					Clip: name,
					Err:  fmt.Errorf("duration: %w", err),
				}
			}
			clips = append(clips, Clip{Name: name, Duration: duration})
		}
	}
	return clips, nil
}

// PartitionClips lays clips end to end from 0. A repeated name keeps its
// first window and adds no time.
func PartitionClips(clips []Clip) []Window {
	windows := make([]Window, 0, len(clips))
	seen := make(map[string]struct{}, len(clips))

	var cursor int64
	for _, clip := range clips {
		if _, dup := seen[clip.Name]; dup {
			continue
		}
		seen[clip.Name] = struct{}{}

		end := cursor + clip.Duration
		windows = append(windows, Window{
			Name:  clip.Name,
			Start: cursor,
			End:   end,
		})
		cursor = end
	}
	return windows
}

// AssignWindow returns the index of the first window containing start.
func AssignWindow(start int64, windows []Window) (int, bool) {
	for i, w := range windows {
		if w.Contains(start) {
			return i, true
		}
	}
	return -1, false
}
