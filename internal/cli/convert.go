package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/draftsub/internal/draft"
	"github.com/mgpai22/draftsub/internal/export"
	"github.com/mgpai22/draftsub/internal/subtitle"
	"github.com/spf13/cobra"
)

const fallbackBaseName = "subtitles"

var convertCmd = &cobra.Command{
	Use:   "convert [draft_file]",
	Short: "Export subtitles from a draft file",
	Long: `Export the captions of a video editor draft (draft_content.json) as
subtitle files.

One combined file is written per format. With --split, every source clip
also gets its own SRT file with timestamps relative to the clip start.

Examples:
  draftsub convert draft_content.json
  draftsub convert draft_content.json -f srt,txt --split -o subs/
  draftsub convert draft_content.json --offset-hour 1 --start-index 0
  draftsub convert draft_content.json --filter-fillers --replace "剪映=CapCut"
  draftsub convert draft_content.json --print --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringSliceP("format", "f", nil, "Output formats (srt, txt, vtt); defaults to the configured formats")
	convertCmd.Flags().
		StringP("output-dir", "o", "", "Directory for the exported files")
	convertCmd.Flags().
		StringP("name", "n", "", "Base name of the combined file (default: first clip name)")
	convertCmd.Flags().
		Bool("split", false, "Also write one file per source clip")
	convertCmd.Flags().
		Bool("print", false, "Print the combined subtitles instead of only writing files")
	convertCmd.Flags().
		Bool("copy", false, "Copy the combined subtitles to the clipboard")
	convertCmd.Flags().
		Bool("dry-run", false, "Parse and report without writing files")

	addTimingFlags(convertCmd)
	addFilterFlags(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	draftPath := args[0]
	ctx := commandContext(cmd)

	formatNames, _ := cmd.Flags().GetStringSlice("format")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	baseName, _ := cmd.Flags().GetString("name")
	printOut, _ := cmd.Flags().GetBool("print")
	copyOut, _ := cmd.Flags().GetBool("copy")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	split := cfg.Output.SplitClips
	if cmd.Flags().Changed("split") {
		split, _ = cmd.Flags().GetBool("split")
	}
	if !cmd.Flags().Changed("format") {
		formatNames = cfg.Output.Formats
	}
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}

	formats, err := parseFormats(formatNames)
	if err != nil {
		return err
	}
	opts, err := parseOptions(cmd, cfg)
	if err != nil {
		return err
	}
	filter, err := buildFilter(cmd, cfg)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}

	doc, result, err := loadDraft(draftPath, opts)
	if err != nil {
		return err
	}

	if baseName == "" {
		baseName = doc.BaseName()
	}
	if baseName == "" {
		baseName = fallbackBaseName
	}

	logger.Infow("Parsed draft",
		"input", draftPath,
		"subtitles", len(result.Timeline.Entries),
		"clips", len(result.Clips),
		"start_index", opts.StartIndex,
	)
	if !opts.Offset.IsZero() {
		logger.Debugw("Applying time offset", "offset", subtitle.FormatTime(0, opts.Offset))
	}
	if len(result.Timeline.Entries) == 0 {
		logger.Warnw("Draft contains no text segments", "input", draftPath)
	}

	plan, err := export.NewPlan(result, export.Options{
		BaseName:   baseName,
		Formats:    formats,
		SplitClips: split,
		StartIndex: opts.StartIndex,
		Filter:     filter,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare export: %w", err)
	}

	combined, _ := plan.Timeline(formats[0])
	if printOut {
		fmt.Fprintln(cmd.OutOrStdout(), combined.Content)
	}
	if copyOut {
		if err := export.CopyToClipboard(combined.Content); err != nil {
			logger.Warnw("Could not copy subtitles to clipboard", "error", err)
		} else {
			logger.Infow("Copied subtitles to clipboard", "format", combined.Format)
		}
	}

	if dryRun {
		for _, item := range plan.Items {
			printf(cmd, "would write %s (%d entries)\n", filepath.Join(outputDir, item.FileName), item.Entries)
		}
		return nil
	}

	written, err := plan.Write(ctx, outputDir)
	for _, path := range written {
		logger.Debugw("Wrote subtitle file", "path", path)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	absDir, _ := filepath.Abs(outputDir)
	printf(cmd, "Subtitles exported successfully: %s\n", absDir)
	printf(cmd, "  Files: %d\n", len(written))
	printf(cmd, "  Entries: %d\n", len(result.Timeline.Entries))
	if split {
		printf(cmd, "  Clips: %d\n", (len(plan.Items)-len(formats))/len(formats))
	}

	return nil
}

// reads and parses a draft file, describing failures in user terms
func loadDraft(path string, opts draft.Options) (*draft.Document, *draft.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read draft: %w", err)
	}

	doc, err := draft.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%s is not a valid draft file: %w", path, err)
	}

	result, err := draft.Parse(doc, opts)
	switch {
	case errors.Is(err, draft.ErrInvalidInput):
		return nil, nil, fmt.Errorf("%s is not a video editor draft: %w", path, err)
	case err != nil:
		return nil, nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	return doc, result, nil
}
