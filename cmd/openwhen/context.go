package main

import (
	"fmt"

	"openwhen/internal/config"
	"openwhen/internal/envelope"
	"openwhen/internal/letter"
	"openwhen/internal/stamp"
	"openwhen/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// commandContext is shared by every subcommand. The config is resolved once,
// on first use, after flags have been parsed.
type commandContext struct {
	configFlag *string
	v          *viper.Viper

	cfg    *config.Config
	cfgErr error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, v: config.New()}
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	if c.cfg == nil && c.cfgErr == nil {
		cfg, err := config.Load(c.v, *c.configFlag)
		if err != nil {
			c.cfgErr = err
		} else {
			c.cfg = &cfg
		}
	}
	if c.cfgErr != nil {
		return config.Config{}, c.cfgErr
	}
	return *c.cfg, nil
}

// letters returns the configured letter set, or the built-in one.
func (c *commandContext) letters() (letter.Set, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	set, err := letter.LoadOrDefault(cfg.Letters)
	if err != nil {
		return nil, fmt.Errorf("load letters: %w", err)
	}
	return set, nil
}

// galleryOptions maps the config onto ui.Options.
func galleryOptions(cfg config.Config, log logrus.FieldLogger, obs envelope.Observer) ui.Options {
	return ui.Options{
		Heading:   cfg.Heading,
		Signature: cfg.Signature,
		Timing:    envelope.DefaultTiming().Scaled(cfg.Speed),
		Stamps:    stamp.Resolver{Dir: cfg.Assets},
		Observer:  obs,
		Log:       log,
	}
}
