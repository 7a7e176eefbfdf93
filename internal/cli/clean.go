package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/draftsub/internal/subtitle"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [subtitle_file]",
	Short: "Remove filler words and apply replacements to a subtitle file",
	Long: `Apply the text filter to an existing SRT or WebVTT file, such as one
exported earlier by 'draftsub convert'. Timing and numbering are kept.

Filler removal is enabled by default for this command.

Examples:
  draftsub clean episode.srt
  draftsub clean episode.srt --replace "剪映=CapCut" --in-place
  draftsub clean episode.vtt --filler 嗯 --filler 啊 -o clean.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().
		StringP("output", "o", "", "Output file path (default: <name>.clean<ext>)")
	cleanCmd.Flags().
		Bool("in-place", false, "Overwrite the input file")
	addFilterFlags(cleanCmd)
	_ = cleanCmd.Flags().Set("filter-fillers", "true")
}

func runClean(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	inPlace, _ := cmd.Flags().GetBool("in-place")

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}
	if inPlace && outputPath != "" {
		return fmt.Errorf("--in-place and --output cannot be used together")
	}

	switch {
	case inPlace:
		outputPath = subtitlePath
	case outputPath == "":
		ext := filepath.Ext(subtitlePath)
		outputPath = strings.TrimSuffix(subtitlePath, ext) + ".clean" + ext
	}

	filter, err := buildFilter(cmd, cfg)
	if err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	if filter.Empty() {
		return fmt.Errorf("nothing to do: no fillers or replacements configured")
	}

	file, err := subtitle.Open(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	sub := file.Subtitle()
	changed := 0
	for i, entry := range sub.Entries {
		cleaned := filter.Apply(entry.Text)
		if cleaned == entry.Text {
			continue
		}
		if err := file.SetText(i, cleaned); err != nil {
			return fmt.Errorf("failed to set text for entry %d: %w", i, err)
		}
		changed++
	}

	logger.Infow("Cleaned subtitle file",
		"input", subtitlePath,
		"output", outputPath,
		"entries", len(sub.Entries),
		"changed", changed,
	)

	if err := file.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	printf(cmd, "Subtitles cleaned successfully: %s\n", absOutput)
	printf(cmd, "  Entries: %d\n", len(sub.Entries))
	printf(cmd, "  Changed: %d\n", changed)
	return nil
}
