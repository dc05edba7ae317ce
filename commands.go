package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ebiten-calendar/config"
	"ebiten-calendar/generation"
	"ebiten-calendar/preview"
)

// cli holds the flags shared by every command
type cli struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "ebiten-calendar",
		Short:         "Show a week calendar grid drawn from a texture atlas",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runWindow(cmd)
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level, overrides CALENDAR_LOG_LEVEL")

	root.AddCommand(
		c.newTilesetCmd(),
		c.newPreviewCmd(),
		c.newDumpCmd(),
	)
	return root
}

// settings loads the environment config and applies flag overrides
func (c *cli) settings(console io.Writer) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return config.Config{}, zerolog.Nop(), err
	}
	return cfg, newLogger(level, console), nil
}

func (c *cli) runWindow(cmd *cobra.Command) error {
	cfg, logger, err := c.settings(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	game, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowTitle("Calendar")
	if err := ebiten.RunGame(game); err != nil {
		return eris.Wrap(err, "game loop failed")
	}
	return nil
}

func (c *cli) newTilesetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tileset [path]",
		Short: "Browse the texture atlas tile by tile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := c.settings(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.AtlasPath = args[0]
			}
			tileset, err := loadTileset(cfg)
			if err != nil {
				return err
			}
			logger.Info().Str("atlas", tileset.Name).Int("tiles", tileset.Count()).Msg("viewing tileset")

			viewer := NewTilesetViewer(tileset, 64)
			ebiten.SetWindowSize(viewer.Layout(0, 0))
			ebiten.SetWindowTitle(fmt.Sprintf("Tileset Viewer - %s", tileset.Name))
			if err := ebiten.RunGame(viewer); err != nil {
				return eris.Wrap(err, "tileset viewer failed")
			}
			return nil
		},
	}
}

func (c *cli) newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Draw the calendar grid in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The terminal belongs to tcell while the preview is up.
			_, logger, err := c.settings(io.Discard)
			if err != nil {
				return err
			}
			layout := generation.NewCalendarGenerator().Generate()
			logger.Debug().Uint32("width", layout.Size.X).Uint32("height", layout.Size.Y).Msg("terminal preview")
			return preview.Run(layout)
		},
	}
}

func (c *cli) newDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the calendar grid, top row first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := c.settings(cmd.ErrOrStderr()); err != nil {
				return err
			}
			layout := generation.NewCalendarGenerator().Generate()
			switch format {
			case "text":
				return writeDump(cmd.OutOrStdout(), layout)
			case "json":
				return writeDumpJSON(cmd.OutOrStdout(), layout)
			default:
				return eris.Errorf("unknown dump format %q, want text or json", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

// writeDump prints one line per grid row with each tile as two characters
func writeDump(w io.Writer, layout generation.Layout) error {
	_, err := io.WriteString(w, strings.Join(preview.Lines(layout), "\n")+"\n")
	return eris.Wrap(err, "failed to write dump")
}

type dumpTile struct {
	X       uint32 `json:"x"`
	Y       uint32 `json:"y"`
	Texture uint32 `json:"texture"`
	Region  string `json:"region"`
	Color   string `json:"color"`
}

type dumpLayout struct {
	Width  uint32     `json:"width"`
	Height uint32     `json:"height"`
	Tiles  []dumpTile `json:"tiles"`
}

// writeDumpJSON prints every resolved tile, row-major from the bottom row
func writeDumpJSON(w io.Writer, layout generation.Layout) error {
	placements := layout.Resolve()
	out := dumpLayout{
		Width:  layout.Size.X,
		Height: layout.Size.Y,
		Tiles:  make([]dumpTile, 0, len(placements)),
	}
	for _, p := range placements {
		out.Tiles = append(out.Tiles, dumpTile{
			X:       p.Pos.X,
			Y:       p.Pos.Y,
			Texture: uint32(p.Texture),
			Region:  p.Region.String(),
			Color:   fmt.Sprintf("#%02x%02x%02x%02x", p.Color.R, p.Color.G, p.Color.B, p.Color.A),
		})
	}

	bz, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return eris.Wrap(err, "failed to encode layout")
	}
	_, err = w.Write(append(bz, '\n'))
	return eris.Wrap(err, "failed to write dump")
}

