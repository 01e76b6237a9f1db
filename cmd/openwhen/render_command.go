package main

import (
	"github.com/spf13/cobra"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the gallery once, every card closed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			set, err := ctx.letters()
			if err != nil {
				return err
			}
			return writeStatic(cmd.OutOrStdout(), set, cfg, width)
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", staticWidth, "Terminal width to lay out for")
	return cmd
}
