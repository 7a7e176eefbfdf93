// Package export writes parsed draft subtitles to disk: one combined file
// per format and, on request, one file per source clip in timeline order.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/mgpai22/draftsub/internal/draft"
	"github.com/mgpai22/draftsub/internal/subtitle"
	"github.com/mgpai22/draftsub/internal/textfilter"
)

const lockFileName = ".draftsub.lock"

// ErrDirBusy means another export holds the output directory.
var ErrDirBusy = errors.New("output directory is locked by another export")

// Options select what a Plan contains.
type Options struct {
	BaseName   string
	Formats    []subtitle.Format
	SplitClips bool
	StartIndex int
	Filter     *textfilter.Filter
}

// Item is one output file.
type Item struct {
	FileName string
	Format   subtitle.Format
	// empty for the whole timeline
	Clip    string
	Entries int
	Content string
}

// Plan is the ordered list of files an export produces.
type Plan struct {
	Items []Item
}

// NewPlan renders result for every requested format. Clip items follow the
// combined ones in window order; clips without subtitles are skipped.
func NewPlan(result *draft.Result, opts Options) (*Plan, error) {
	if result == nil {
		return nil, errors.New("nil parse result")
	}
	if len(opts.Formats) == 0 {
		opts.Formats = []subtitle.Format{subtitle.FormatSRT}
	}
	base := SanitizeFileName(opts.BaseName)

	plan := &Plan{}
	for _, format := range opts.Formats {
		content, err := renderTimeline(result, format, opts)
		if err != nil {
			return nil, err
		}
		plan.Items = append(plan.Items, Item{
			FileName: WithExtension(base, format),
			Format:   format,
			Entries:  len(result.Timeline.Entries),
			Content:  content,
		})
	}

	if !opts.SplitClips {
		return plan, nil
	}

	width := len(fmt.Sprint(len(result.Clips)))
	if width < 2 {
		width = 2
	}
	for i, clip := range result.Clips {
		if len(clip.Entries) == 0 {
			continue
		}
		stem := fmt.Sprintf("%0*d_%s", width, i+1, SanitizeFileName(StripExtension(clip.Name)))
		for _, format := range opts.Formats {
			content, err := renderClip(clip, format, opts)
			if err != nil {
				return nil, err
			}
			plan.Items = append(plan.Items, Item{
				FileName: WithExtension(stem, format),
				Format:   format,
				Clip:     clip.Name,
				Entries:  len(clip.Entries),
				Content:  content,
			})
		}
	}
	return plan, nil
}

func renderTimeline(result *draft.Result, format subtitle.Format, opts Options) (string, error) {
	if opts.Filter.Empty() {
		switch format {
		case subtitle.FormatSRT:
			return result.Timeline.SRT, nil
		case subtitle.FormatTXT:
			return result.Timeline.Text, nil
		}
	}
	return render(result.Timeline.Entries, format, opts)
}

func renderClip(clip draft.ClipResult, format subtitle.Format, opts Options) (string, error) {
	if opts.Filter.Empty() && format == subtitle.FormatSRT {
		return clip.SRT, nil
	}
	return render(clip.Entries, format, opts)
}

func render(entries []subtitle.Entry, format subtitle.Format, opts Options) (string, error) {
	if !opts.Filter.Empty() {
		filtered := make([]subtitle.Entry, len(entries))
		for i, e := range entries {
			e.Text = opts.Filter.Apply(e.Text)
			filtered[i] = e
		}
		entries = filtered
	}
	return subtitle.Render(&subtitle.Subtitle{
		Entries:    entries,
		StartIndex: opts.StartIndex,
		Format:     string(format),
	}, format)
}

// Write stores every item in dir, one after another, and returns the written
// paths. The directory is locked for the duration of the export.
func (p *Plan) Write(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrDirBusy, dir)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	written := make([]string, 0, len(p.Items))
	for _, item := range p.Items {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		path := filepath.Join(dir, item.FileName)
		if err := os.WriteFile(path, []byte(item.Content), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", item.FileName, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Timeline returns the combined item for format.
func (p *Plan) Timeline(format subtitle.Format) (Item, bool) {
	for _, item := range p.Items {
		if item.Clip == "" && item.Format == format {
			return item, true
		}
	}
	return Item{}, false
}
