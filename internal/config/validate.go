package config

import (
	"errors"
	"fmt"

	"github.com/mgpai22/draftsub/internal/logging"
	"github.com/mgpai22/draftsub/internal/subtitle"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTiming(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func (c *Config) validateTiming() error {
	if c.Timing.FrameRate < 0 {
		return errors.New("timing.frame_rate must be positive")
	}
	if c.Timing.StartIndex < 0 {
		return errors.New("timing.start_index must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	for _, f := range c.Output.Formats {
		if _, err := subtitle.ParseFormat(f); err != nil {
			return fmt.Errorf("output.formats: %w", err)
		}
	}
	return nil
}
