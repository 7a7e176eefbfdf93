package config

import (
	"strings"
)

func (c *Config) normalize() error {
	if c.Timing.FrameRate == 0 {
		c.Timing.FrameRate = defaultFrameRate
	}

	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		c.Output.Dir = defaultOutputDir
	}
	dir, err := expandPath(c.Output.Dir)
	if err != nil {
		return err
	}
	c.Output.Dir = dir

	formats := make([]string, 0, len(c.Output.Formats))
	seen := make(map[string]struct{}, len(c.Output.Formats))
	for _, f := range c.Output.Formats {
		f = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(f)), ".")
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []string{"srt"}
	}
	c.Output.Formats = formats

	fillers := c.Filter.Fillers[:0]
	for _, word := range c.Filter.Fillers {
		if strings.TrimSpace(word) != "" {
			fillers = append(fillers, word)
		}
	}
	c.Filter.Fillers = fillers

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
