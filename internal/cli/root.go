package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mgpai22/draftsub/internal/config"
	"github.com/mgpai22/draftsub/internal/logging"
	"github.com/spf13/cobra"
)

const skipConfigAnnotation = "draftsub/skip-config"

var (
	verbose    bool
	configPath string
	logger     = logging.NewNop()
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "draftsub",
	Short: "Extract subtitles from video editor drafts",
	Long: `Draftsub reads a video editor project file (draft_content.json) and
exports its captions as SRT, WebVTT or plain text.

Subtitles can be shifted by a time offset, cleaned of filler words, and
split into one file per source clip.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, skip := cmd.Annotations[skipConfigAnnotation]; skip {
			cfg = nil
			logger = logging.NewLogger(verbose)
			return nil
		}

		loaded, path, exists, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if verbose {
			logger = logging.NewLogger(true)
		} else {
			logger, err = logging.NewWithLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
		}
		logger.Debugw("Loaded configuration",
			"path", path,
			"from_file", exists,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/draftsub/config.toml or ./draftsub.toml)")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
