package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mgpai22/draftsub/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the draftsub configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample configuration file",
	Long: `Write a commented sample configuration file.

Without a path the file is created at ~/.config/draftsub/config.toml.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE:        runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().
		Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	var (
		path string
		err  error
	)
	if len(args) == 1 {
		path, err = config.ExpandPath(args[0])
	} else {
		path, err = config.DefaultConfigPath()
	}
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	if err := config.CreateSample(path); err != nil {
		return err
	}
	printf(cmd, "Sample configuration written: %s\n", path)
	return nil
}
