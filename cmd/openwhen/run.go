package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"openwhen/internal/config"
	"openwhen/internal/envelope"
	"openwhen/internal/letter"
	"openwhen/internal/logging"
	"openwhen/internal/trace"
	"openwhen/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the final span flush on exit.
const shutdownTimeout = 5 * time.Second

// runGallery starts the interactive gallery. Without a terminal on stdout it
// prints the static gallery instead.
func runGallery(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	set, err := ctx.letters()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		return writeStatic(out, set, cfg, staticWidth)
	}

	log, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	exporter, err := trace.NewOTLPExporter(cmd.Context())
	if err != nil {
		// Tracing is optional; run without it.
		log.WithError(err).Warn("tracing disabled")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := exporter.Shutdown(sctx); err != nil {
			log.WithError(err).Warn("trace shutdown")
		}
	}()

	observers := []envelope.Observer{&logging.PhaseLogger{Log: log}}
	spans := trace.NewSequenceObserver(exporter)
	if spans != nil {
		observers = append(observers, spans)
	}

	model, err := ui.NewGalleryModel(set, galleryOptions(cfg, log, envelope.NewMultiObserver(observers...)))
	if err != nil {
		return err
	}
	if spans != nil {
		for _, c := range model.Cards {
			spans.Label(c.ID, c.Letter.Title)
		}
	}

	log.WithFields(logrus.Fields{
		"letters": len(set),
		"config":  cfg.File,
		"speed":   cfg.Speed,
		"tracing": spans != nil,
	}).Info("starting gallery")

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	return nil
}

// staticWidth lays out the static gallery in three columns.
const staticWidth = ui.BreakpointWide

// writeStatic prints every card closed, with no input handling.
func writeStatic(w io.Writer, set letter.Set, cfg config.Config, width int) error {
	model, err := ui.NewGalleryModel(set, galleryOptions(cfg, logging.Discard(), nil))
	if err != nil {
		return err
	}
	model.Update(tea.WindowSizeMsg{Width: width})
	_, err = fmt.Fprintln(w, model.Render())
	return err
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
