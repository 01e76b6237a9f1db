package main

import (
	"openwhen/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "openwhen",
		Short:         "A gallery of Open When letters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "validate" {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, ctx)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path (default ~/"+config.DefaultFileName+")")
	flags.String("letters", "", "Letters file (TOML); the built-in letters are used when empty")
	flags.String("assets", "", "Directory holding stamp assets")
	flags.Float64("speed", 1.0, "Animation speed multiplier")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Write logs to this file")
	flags.Bool("mouse", true, "Enable mouse input")
	bindFlags(ctx, flags, map[string]string{
		config.KeyLetters:  "letters",
		config.KeyAssets:   "assets",
		config.KeySpeed:    "speed",
		config.KeyLogLevel: "log-level",
		config.KeyLogFile:  "log-file",
		config.KeyMouse:    "mouse",
	})

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}

func bindFlags(ctx *commandContext, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// Names come from the literal map above; a lookup miss is a programming error.
		if err := ctx.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
