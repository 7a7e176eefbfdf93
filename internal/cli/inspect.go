package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mgpai22/draftsub/internal/draft"
	"github.com/mgpai22/draftsub/internal/subtitle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [draft_file]",
	Short: "Show the clip windows and subtitle counts of a draft",
	Long: `Show how a draft's timeline is divided between its source clips.

Each video and audio clip is given a window starting where the previous one
ended; subtitles are attributed to the window containing their start time.

Examples:
  draftsub inspect draft_content.json
  draftsub inspect draft_content.json --as yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		String("as", "table", "Output style (table, json, yaml)")
}

type clipSummary struct {
	Name      string `json:"name" yaml:"name"`
	Start     string `json:"start" yaml:"start"`
	End       string `json:"end" yaml:"end"`
	Duration  string `json:"duration" yaml:"duration"`
	Subtitles int    `json:"subtitles" yaml:"subtitles"`
}

type draftSummary struct {
	Name       string        `json:"name" yaml:"name"`
	Subtitles  int           `json:"subtitles" yaml:"subtitles"`
	Unassigned int           `json:"unassigned" yaml:"unassigned"`
	Clips      []clipSummary `json:"clips" yaml:"clips"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	style, _ := cmd.Flags().GetString("as")

	opts, err := parseOptions(cmd, cfg)
	if err != nil {
		return err
	}
	doc, result, err := loadDraft(args[0], opts)
	if err != nil {
		return err
	}

	summary := summarize(doc, result)
	out := cmd.OutOrStdout()

	switch strings.ToLower(style) {
	case "table":
		fmt.Fprintln(out, renderSummaryTable(summary, isTerminal(out)))
	case "json":
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		return fmt.Errorf("unsupported output style %q: use table, json, or yaml", style)
	}
	return nil
}

func summarize(doc *draft.Document, result *draft.Result) draftSummary {
	s := draftSummary{
		Name:      doc.BaseName(),
		Subtitles: len(result.Timeline.Entries),
		Clips:     make([]clipSummary, 0, len(result.Clips)),
	}

	assigned := 0
	for _, clip := range result.Clips {
		assigned += len(clip.Entries)
		s.Clips = append(s.Clips, clipSummary{
			Name:      clip.Name,
			Start:     subtitle.FormatTime(clip.Start, subtitle.Offset{}),
			End:       subtitle.FormatTime(clip.End, subtitle.Offset{}),
			Duration:  subtitle.FormatTime(clip.Duration(), subtitle.Offset{}),
			Subtitles: len(clip.Entries),
		})
	}
	s.Unassigned = s.Subtitles - assigned
	return s
}

func renderSummaryTable(s draftSummary, fancy bool) string {
	rows := make([][]string, 0, len(s.Clips)+1)
	for i, clip := range s.Clips {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			clip.Name,
			clip.Start,
			clip.End,
			clip.Duration,
			strconv.Itoa(clip.Subtitles),
		})
	}
	if s.Unassigned > 0 {
		rows = append(rows, []string{"-", "(outside all clips)", "", "", "", strconv.Itoa(s.Unassigned)})
	}

	table := renderTable(
		[]string{"#", "Clip", "Start", "End", "Duration", "Subtitles"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
		fancy,
	)
	return fmt.Sprintf("%s\nTotal subtitles: %d", table, s.Subtitles)
}
