package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-calendar/config"
	"ebiten-calendar/generation"
	"ebiten-calendar/systems"
	"ebiten-calendar/tilemap"
)

func TestDumpCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"dump", "--log-level", "warn"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, generation.GridHeight)
	assert.True(t, strings.HasPrefix(lines[1], "MoTuWeThFrSaSu"), lines[1])
}

func TestDumpRejectsBadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump", "--log-level", "loud"})

	assert.Error(t, cmd.Execute())
}

func TestDumpRejectsBadEnvironment(t *testing.T) {
	t.Setenv("CALENDAR_CAMERA_SCALE", "-1")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump"})

	assert.Error(t, cmd.Execute())
}

func TestWriteDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDump(&buf, generation.NewCalendarGenerator().Generate()))
	assert.Equal(t, generation.GridHeight, strings.Count(buf.String(), "\n"))
}

func TestLoggerFeedsMessageLog(t *testing.T) {
	systems.GetMessageLog().Clear()
	var console bytes.Buffer
	logger := newLogger(zerolog.InfoLevel, &console)

	logger.Debug().Msg("hidden")
	logger.Warn().Int("index", 42).Msg("texture index outside atlas")

	msgs := systems.GetMessageLog().Snapshot()
	require.Len(t, msgs, 1)
	msg := systems.ParseColoredMessage(msgs[0])
	assert.Equal(t, zerolog.WarnLevel, msg.Level)
	assert.Contains(t, msg.Text, "index=42")
	assert.Contains(t, console.String(), "texture index outside atlas")
}

func TestLoadTilesetMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.AtlasPath = "does-not-exist.png"
	_, err := loadTileset(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.png")
}

func TestTileLabel(t *testing.T) {
	assert.Equal(t, "#0 Mo", tileLabel(0))
	assert.Equal(t, "#6 Su", tileLabel(6))
	assert.Equal(t, "#7 blank", tileLabel(generation.BlankTexture))
	assert.Equal(t, "#9", tileLabel(tilemap.TextureIndex(9)))
}

func TestDumpJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump", "--format", "json"})
	require.NoError(t, cmd.Execute())

	var got dumpLayout
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, uint32(generation.GridWidth), got.Width)
	assert.Equal(t, uint32(generation.GridHeight), got.Height)
	require.Len(t, got.Tiles, generation.GridWidth*generation.GridHeight)

	headers := 0
	for _, tile := range got.Tiles {
		if tile.Region == generation.RegionHeader.String() {
			headers++
			assert.Equal(t, uint32(generation.HeaderRow), tile.Y)
			assert.Equal(t, "#ffffffff", tile.Color)
		}
	}
	assert.Equal(t, generation.Weekdays, headers)
	assert.Equal(t, "#000000ff", got.Tiles[len(got.Tiles)-1].Color)
}

func TestDumpUnknownFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump", "--format", "yaml"})
	assert.Error(t, cmd.Execute())
}
