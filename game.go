package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-calendar/assets"
	"ebiten-calendar/components"
	"ebiten-calendar/config"
	"ebiten-calendar/ecs"
	"ebiten-calendar/generation"
	"ebiten-calendar/input"
	"ebiten-calendar/screens"
	"ebiten-calendar/spawners"
	"ebiten-calendar/systems"
	"ebiten-calendar/tilemap"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg          config.Config
	logger       zerolog.Logger
	world        *ecs.World
	cameraSystem *systems.CameraSystem
	renderSystem *systems.RenderSystem
	screens      *screens.ScreenStack
}

// NewGame creates the calendar scene. The world is populated by its
// Startup stage on the first Update.
func NewGame(cfg config.Config, logger zerolog.Logger) (*Game, error) {
	tileset, err := loadTileset(cfg)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	cameraSystem := systems.NewCameraSystem(logger)
	renderSystem := systems.NewRenderSystem(cameraSystem, logger)
	renderSystem.AddTileset(assets.CalendarAtlas, tileset)

	g := &Game{
		cfg:          cfg,
		logger:       logger,
		world:        world,
		cameraSystem: cameraSystem,
		renderSystem: renderSystem,
		screens:      screens.NewScreenStack(),
	}

	logSceneEvents(world, logger)
	world.AddStartupSystem(g.setup)
	world.AddSystem(systems.NewInputSystem(input.EbitenKeys{}))
	world.AddSystem(cameraSystem)

	g.screens.Push(screens.NewCalendarScreen(world, renderSystem, systems.GetMessageLog()))

	logger.Info().
		Str("atlas", tileset.Name).
		Int("tiles", tileset.Count()).
		Msg("tileset loaded")
	return g, nil
}

func loadTileset(cfg config.Config) (*systems.Tileset, error) {
	if cfg.AtlasPath != "" {
		ts, err := systems.NewTileset(cfg.AtlasPath, config.TileSize)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to load atlas %s", cfg.AtlasPath)
		}
		return ts, nil
	}
	ts, err := systems.NewTilesetFromFS(assets.FS, assets.CalendarAtlas, config.TileSize)
	if err != nil {
		return nil, eris.Wrap(err, "failed to load embedded atlas")
	}
	return ts, nil
}

// setup spawns the camera and the calendar tilemap
func (g *Game) setup(world *ecs.World) {
	spawner := spawners.NewEntitySpawner(world, g.logger)

	startScale := g.cfg.CameraScale
	if g.cfg.CameraZoomSeconds > 0 {
		startScale = 1
	}
	spawner.CreateCamera(startScale)

	layout := generation.NewCalendarGenerator().Generate()
	tm := spawner.CreateCalendarTilemap(layout, assets.CalendarAtlas, tilemap.TileSize{X: config.TileSize, Y: config.TileSize})

	tiles := 0
	if comp, ok := ecs.Get[*components.TilemapComponent](world, tm.ID, components.Tilemap); ok {
		tiles = comp.Storage.Len()
	}
	world.EmitEvent(systems.TilemapReadyEvent{TilemapID: tm.ID, Tiles: tiles})

	if g.cfg.CameraZoomSeconds > 0 {
		g.cameraSystem.ZoomTo(world, g.cfg.CameraScale, g.cfg.CameraZoomSeconds)
	}
}

// logSceneEvents reports the scene's events on the logger, and through it
// on the inspector and status line
func logSceneEvents(world *ecs.World, logger zerolog.Logger) {
	events := world.GetEventManager()
	events.Subscribe(systems.EventTilemapReady, func(e ecs.Event) {
		ev := e.(systems.TilemapReadyEvent)
		logger.Info().Uint64("tilemap", uint64(ev.TilemapID)).Int("tiles", ev.Tiles).Msg("tilemap ready")
	})
	events.Subscribe(systems.EventCameraUpdate, func(e ecs.Event) {
		ev := e.(systems.CameraUpdateEvent)
		if ev.Settled {
			logger.Info().Float64("scale", ev.Scale).Msg("camera zoom settled")
		}
	})
	events.Subscribe(systems.EventActionPressed, func(e ecs.Event) {
		ev := e.(systems.ActionPressedEvent)
		logger.Debug().Uint64("entity", uint64(ev.EntityID)).Stringer("action", ev.Action).Msg("action pressed")
	})
}

// Update implements ebiten.Game's Update.
func (g *Game) Update() error {
	return g.screens.Update()
}

// Draw implements ebiten.Game's Draw.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screens.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  F1: inspector", ebiten.ActualFPS()))
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screens.Layout(outsideWidth, outsideHeight)
}
