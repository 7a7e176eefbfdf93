package draft

import (
	"bytes"
	"fmt"

	"github.com/mgpai22/draftsub/internal/subtitle"
)

// Options control numbering and timing of the rendered subtitles.
type Options struct {
	// first SRT index of every rendered track
	StartIndex int
	Offset     subtitle.Offset
}

// DefaultOptions numbers from 1 with no offset.
func DefaultOptions() Options {
	return Options{
		StartIndex: 1,
		Offset:     subtitle.Offset{FrameRate: subtitle.DefaultFrameRate},
	}
}

// Result holds the whole-timeline subtitles and one track per clip window.
type Result struct {
	Clips    []ClipResult
	Timeline TimelineResult
}

// ClipResult is the subtitles falling in one clip window, timed relative to
// the window start.
type ClipResult struct {
	Window
	Entries []subtitle.Entry
	SRT     string
}

// TimelineResult is every subtitle timed from the timeline origin.
type TimelineResult struct {
	Entries []subtitle.Entry
	SRT     string
	Text    string
}

// Clip looks up a clip window by name.
func (r *Result) Clip(name string) (*ClipResult, bool) {
	for i := range r.Clips {
		if r.Clips[i].Name == name {
			return &r.Clips[i], true
		}
	}
	return nil, false
}

// ParseBytes decodes a draft and parses it.
func ParseBytes(data []byte, opts Options) (*Result, error) {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return Parse(doc, opts)
}

// Parse builds the subtitle tracks of doc. It fails with ErrInvalidInput when
// the draft has no materials and with a *ParseError for malformed segments
// or clips.
func Parse(doc *Document, opts Options) (*Result, error) {
	if doc == nil || doc.Materials == nil {
		return nil, fmt.Errorf("%w: missing 'materials' field", ErrInvalidInput)
	}

	texts := ResolveTexts(doc.Materials.Texts)

	segments, err := CollectSegments(doc.Tracks, texts)
	if err != nil {
		return nil, err
	}

	clips, err := NormalizeClips(doc.Materials)
	if err != nil {
		return nil, err
	}
	windows := PartitionClips(clips)

	timeline := make([]subtitle.Entry, 0, len(segments))
	perClip := make([][]subtitle.Entry, len(windows))
	for _, seg := range segments {
		text := texts[seg.MaterialID].Content
		timeline = append(timeline, newEntry(len(timeline), seg.Start, seg.Duration, text, opts))

		i, ok := AssignWindow(seg.Start, windows)
		if !ok {
			continue
		}
		rel := seg.Start - windows[i].Start
		perClip[i] = append(perClip[i], newEntry(len(perClip[i]), rel, seg.Duration, text, opts))
	}

	result := &Result{
		Clips: make([]ClipResult, len(windows)),
		Timeline: TimelineResult{
			Entries: timeline,
			SRT:     subtitle.ToSRT(timeline, opts.StartIndex),
			Text:    subtitle.ToPlainText(timeline),
		},
	}
	for i, w := range windows {
		result.Clips[i] = ClipResult{
			Window:  w,
			Entries: perClip[i],
			SRT:     subtitle.ToSRT(perClip[i], opts.StartIndex),
		}
	}
	return result, nil
}

func newEntry(pos int, start, duration int64, text string, opts Options) subtitle.Entry {
	return subtitle.Entry{
		Index:     opts.StartIndex + pos,
		StartTime: subtitle.Micros(opts.Offset.Apply(start)),
		EndTime:   subtitle.Micros(opts.Offset.Apply(start + duration)),
		Text:      text,
	}
}
