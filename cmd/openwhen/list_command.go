package main

import (
	"fmt"
	"strconv"

	"openwhen/internal/color"
	"openwhen/internal/letter"
	"openwhen/internal/stamp"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List letters with their derived colours",
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
			rows, err := letterRows(set, stamp.Resolver{Dir: cfg.Assets})
			if err != nil {
				return err
			}
			headers := []string{"ID", "Title", "Accent", "Flap", "Bottom", "Text", "Stamp"}
			aligns := []columnAlignment{alignRight}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}
}

func letterRows(set letter.Set, stamps stamp.Resolver) ([][]string, error) {
	rows := make([][]string, 0, len(set))
	for _, rec := range set {
		p, err := rec.Palette()
		if err != nil {
			return nil, fmt.Errorf("letter %d: %w", rec.ID, err)
		}
		rows = append(rows, []string{
			strconv.Itoa(rec.ID),
			rec.Title,
			p.Base.Hex(),
			p.Darker.Hex(),
			p.Darkest.Hex(),
			textLabel(p.Text),
			stampLabel(rec, stamps),
		})
	}
	return rows, nil
}

func textLabel(hex string) string {
	if hex == color.TextDark {
		return "dark"
	}
	return "light"
}

func stampLabel(rec letter.Record, stamps stamp.Resolver) string {
	s, ok := stamps.Resolve(rec.StampAsset)
	switch {
	case !ok:
		return "-"
	case s.Path != "" && !s.Found:
		return s.Glyph + " " + s.Asset + " (missing)"
	default:
		return s.Glyph + " " + s.Asset
	}
}
