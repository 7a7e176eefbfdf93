// Package draft turns a video-editor draft document into subtitle tracks.
//
// The draft is the editor's project JSON: text materials hold caption text,
// track segments place materials on the timeline, and video/audio materials
// describe the source clips laid end to end. Parse resolves the texts,
// orders the segments, splits them by source clip and renders SRT and plain
// text for the whole timeline and for every clip.
package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Document is the subset of a draft file the parser relies on.
type Document struct {
	Materials *Materials `json:"materials"`
	Tracks    []Track    `json:"tracks"`
}

// Materials holds the draft's reusable assets.
type Materials struct {
	Texts  TextTable      `json:"texts"`
	Videos []ClipMaterial `json:"videos"`
	Audios []ClipMaterial `json:"audios"`
}

// RawText is a text material as stored in the draft. Content is either the
// caption itself or a JSON envelope carrying it in a "text" field.
type RawText struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// ClipMaterial is a video or audio source. Videos name themselves with
// material_name, audios with name.
type ClipMaterial struct {
	MaterialName string          `json:"material_name"`
	Name         string          `json:"name"`
	Duration     json.RawMessage `json:"duration"`
}

// Track is one timeline track.
type Track struct {
	Segments []RawSegment `json:"segments"`
}

// RawSegment places a material on the timeline.
type RawSegment struct {
	MaterialID      string     `json:"material_id"`
	TargetTimerange *TimeRange `json:"target_timerange"`
}

// TimeRange is a [start, start+duration) span in microseconds. The values
// are kept raw so a malformed number can be reported against its segment.
type TimeRange struct {
	Start    json.RawMessage `json:"start"`
	Duration json.RawMessage `json:"duration"`
}

// TextTable is the draft's text material list in document order. It decodes
// from a JSON object (keys are ignored) or from a JSON array.
type TextTable []RawText

func (t *TextTable) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	switch data[0] {
	case '[':
		var items []RawText
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("decode texts: %w", err)
		}
		*t = items
		return nil
	case '{':
		items, err := decodeTextObject(data)
		if err != nil {
			return err
		}
		*t = items
		return nil
	default:
		return fmt.Errorf("decode texts: expected object or array, got %q", data[0])
	}
}

func decodeTextObject(data []byte) ([]RawText, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode texts: %w", err)
	}

	var items []RawText
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode texts: %w", err)
		}
		var item RawText
		if err := dec.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode texts[%v]: %w", key, err)
		}
		items = append(items, item)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode texts: %w", err)
	}
	return items, nil
}

// Decode reads a draft document. Syntax and shape errors are reported as
// ParseFailure.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Op: OpDecode, Err: err}
	}
	return &doc, nil
}

// BaseName suggests an output file stem: the first video's material name,
// else the first audio's name, without its extension. Empty when the draft
// has no named clip.
func (d *Document) BaseName() string {
	if d == nil || d.Materials == nil {
		return ""
	}
	for _, list := range [][]ClipMaterial{d.Materials.Videos, d.Materials.Audios} {
		if len(list) == 0 {
			continue
		}
		name := list[0].clipName()
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return ""
}

func (c ClipMaterial) clipName() string {
	if c.MaterialName != "" {
		return c.MaterialName
	}
	return c.Name
}
