package cli

import (
	"fmt"
	"strings"

	"github.com/mgpai22/draftsub/internal/config"
	"github.com/mgpai22/draftsub/internal/draft"
	"github.com/mgpai22/draftsub/internal/subtitle"
	"github.com/mgpai22/draftsub/internal/textfilter"
	"github.com/spf13/cobra"
)

func addTimingFlags(cmd *cobra.Command) {
	cmd.Flags().Int("offset-hour", 0, "Hours added to every timestamp")
	cmd.Flags().Int("offset-min", 0, "Minutes added to every timestamp")
	cmd.Flags().Int("offset-second", 0, "Seconds added to every timestamp")
	cmd.Flags().Int("offset-frame", 0, "Frames added to every timestamp")
	cmd.Flags().Int("frame-rate", subtitle.DefaultFrameRate, "Frames per second used for --offset-frame")
	cmd.Flags().Int("start-index", 1, "Number of the first SRT block")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("filter-fillers", false, "Remove filler words from subtitle text")
	cmd.Flags().StringSlice("filler", nil, "Filler pattern to remove (repeatable, replaces the configured list)")
	cmd.Flags().StringArray("replace", nil, "Replace text, as old=new (repeatable, regular expressions allowed, added to configured replacements)")
}

// draft options from config, overridden by any flag set on the command line
func parseOptions(cmd *cobra.Command, c *config.Config) (draft.Options, error) {
	opts := draft.DefaultOptions()
	if c != nil {
		opts.StartIndex = c.Timing.StartIndex
		opts.Offset = subtitle.Offset{
			Hour:      c.Timing.OffsetHour,
			Minute:    c.Timing.OffsetMin,
			Second:    c.Timing.OffsetSecond,
			Frame:     c.Timing.OffsetFrame,
			FrameRate: c.Timing.FrameRate,
		}
	}

	flags := cmd.Flags()
	overrides := []struct {
		name   string
		target *int
	}{
		{"offset-hour", &opts.Offset.Hour},
		{"offset-min", &opts.Offset.Minute},
		{"offset-second", &opts.Offset.Second},
		{"offset-frame", &opts.Offset.Frame},
		{"frame-rate", &opts.Offset.FrameRate},
		{"start-index", &opts.StartIndex},
	}
	for _, o := range overrides {
		if !flags.Changed(o.name) {
			continue
		}
		v, err := flags.GetInt(o.name)
		if err != nil {
			return opts, err
		}
		*o.target = v
	}

	if opts.Offset.FrameRate <= 0 {
		return opts, fmt.Errorf("frame rate must be positive, got %d", opts.Offset.FrameRate)
	}
	if opts.StartIndex < 0 {
		return opts, fmt.Errorf("start index must not be negative, got %d", opts.StartIndex)
	}
	return opts, nil
}

// text filter from config, overridden by filter flags
func buildFilter(cmd *cobra.Command, c *config.Config) (*textfilter.Filter, error) {
	var (
		removeFillers bool
		fillers       []string
		replacements  []textfilter.Replacement
	)
	if c != nil {
		removeFillers = c.Filter.RemoveFillers
		fillers = c.Filter.Fillers
		for _, r := range c.Filter.Replace {
			replacements = append(replacements, textfilter.Replacement{Old: r.Old, New: r.New})
		}
	} else {
		fillers = textfilter.DefaultFillers
	}

	flags := cmd.Flags()
	if flags.Changed("filter-fillers") {
		removeFillers, _ = flags.GetBool("filter-fillers")
	}
	if flags.Changed("filler") {
		fillers, _ = flags.GetStringSlice("filler")
		removeFillers = true
	}
	if flags.Changed("replace") {
		specs, _ := flags.GetStringArray("replace")
		for _, spec := range specs {
			r, err := textfilter.ParseReplacement(spec)
			if err != nil {
				return nil, err
			}
			replacements = append(replacements, r)
		}
	}

	if !removeFillers {
		fillers = nil
	}
	return textfilter.New(fillers, replacements)
}

func parseFormats(names []string) ([]subtitle.Format, error) {
	var formats []subtitle.Format
	seen := make(map[subtitle.Format]bool)
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := subtitle.ParseFormat(part)
			if err != nil {
				return nil, err
			}
			if seen[f] {
				continue
			}
			seen[f] = true
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []subtitle.Format{subtitle.FormatSRT}, nil
	}
	return formats, nil
}
