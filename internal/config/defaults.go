package config

import "github.com/mgpai22/draftsub/internal/textfilter"

const (
	defaultFrameRate  = 25
	defaultStartIndex = 1
	defaultOutputDir  = "."
	defaultLogLevel   = "info"
)

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Timing: Timing{
			FrameRate:  defaultFrameRate,
			StartIndex: defaultStartIndex,
		},
		Output: Output{
			Dir:        defaultOutputDir,
			Formats:    []string{"srt"},
			SplitClips: false,
		},
		Filter: Filter{
			Fillers: append([]string(nil), textfilter.DefaultFillers...),
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
