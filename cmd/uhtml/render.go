package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"uhtml/pkg/pipeline"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output        string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markup into a PNG image",
		Long: `Render draws one frame of the markup without opening a window and writes
it as PNG. The markup comes from a file, an HTTP(S) URL or "-" for
standard input; without an argument the built-in sample document is
rendered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readMarkup(cmd, args)
			if err != nil {
				return err
			}
			if width <= 0 {
				width = a.cfg.Window.Width
			}
			if height <= 0 {
				height = a.cfg.Window.Height
			}
			return a.renderPNG(markup, width, height, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "output.png", "output PNG file path")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "image width in pixels (default from config)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "image height in pixels (default from config)")
	return cmd
}

func (a *app) renderPNG(markup string, width, height int, output string) error {
	target := image.NewRGBA(image.Rect(0, 0, width, height))
	p := pipeline.New(
		pipeline.WithFonts(a.cfg.FontConfig()),
		pipeline.WithColors(a.cfg.TextColor(), a.cfg.BackgroundColor()),
		pipeline.WithLogger(a.logger),
	)
	a.logger.Debug("rendering", "width", width, "height", height)
	if err := p.Render(markup, target); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := png.Encode(f, target); err != nil {
		f.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	a.logger.Info("wrote image", "path", output)
	return nil
}
