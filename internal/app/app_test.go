package app_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/amidakuji/internal/app"
	"github.com/katalvlaran/amidakuji/ladder"
	"github.com/katalvlaran/amidakuji/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestRun_SelectsAndRenders(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := &app.Config{
		LogLevel:  "debug",
		LogFormat: "text",
		Start:     2,
		All:       true,
		ShowPath:  true,
		Overrides: app.Overrides{
			Lanes:        intPtr(4),
			Seed:         int64Ptr(11),
			Participants: []string{"Aoi"},
		},
	}
	a, err := app.NewApp(context.Background(), &out, &logs, cfg)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background(), cfg))

	s := a.Session()
	assert.Equal(t, 4, s.Lanes())
	want, err := trace.Trace(s.Ladder(), 1)
	require.NoError(t, err)
	res, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, want.End(), res)

	text := out.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], " Aoi"), "header: %q", lines[0])
	assert.Contains(t, text, "Aoi -> ")
	assert.Contains(t, text, "seed: 11")
	assert.Contains(t, logs.String(), "Lane traced.")
	assert.NotContains(t, text, "Lane traced.", "logs must not leak into the board output")
}

func TestNewApp_SettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amidakuji.hcl")
	require.NoError(t, os.WriteFile(path, []byte("lanes = 3\nrows = lanes * 2\nseed = 4\n"), 0o600))

	var out, logs bytes.Buffer
	cfg := &app.Config{
		SettingsPath: path,
		Overrides:    app.Overrides{Seed: int64Ptr(8)},
	}
	a, err := app.NewApp(context.Background(), &out, &logs, cfg)
	require.NoError(t, err)

	s := a.Session()
	assert.Equal(t, 3, s.Lanes())
	assert.Equal(t, 6, s.Ladder().Rows())
	assert.Equal(t, int64(8), s.Seed(), "command line overrides the file")
}

func TestNewApp_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(bad, []byte("lanes = \n"), 0o600))

	var out, logs bytes.Buffer
	_, err := app.NewApp(context.Background(), &out, &logs, &app.Config{SettingsPath: bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load settings")

	_, err = app.NewApp(context.Background(), &out, &logs, &app.Config{
		Overrides: app.Overrides{Lanes: intPtr(20)},
	})
	assert.ErrorIs(t, err, ladder.ErrInvalidLaneCount)
}

func TestRun_StartOutOfRange(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := &app.Config{Start: 9, Overrides: app.Overrides{Seed: int64Ptr(1)}}
	a, err := app.NewApp(context.Background(), &out, &logs, cfg)
	require.NoError(t, err)
	err = a.Run(context.Background(), cfg)
	assert.ErrorIs(t, err, trace.ErrOutOfRange)
}

func TestNewConfig(t *testing.T) {
	_, err := app.NewConfig(app.Config{Start: -1})
	assert.Error(t, err)
	cfg, err := app.NewConfig(app.Config{Start: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Start)
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := app.ParseLogLevel(tc.in)
			if tc.wantErr {
				assert.ErrorContains(t, err, "invalid log-level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	f, err := app.ParseLogFormat("")
	require.NoError(t, err)
	assert.Equal(t, app.LogFormatText, f)

	f, err = app.ParseLogFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, app.LogFormatJSON, f)

	_, err = app.ParseLogFormat("xml")
	assert.ErrorContains(t, err, "invalid log-format")
}

func TestNewApp_LogSettings(t *testing.T) {
	var out, logs bytes.Buffer
	_, err := app.NewApp(context.Background(), &out, &logs, &app.Config{LogLevel: "loud"})
	assert.ErrorContains(t, err, "invalid log-level")

	cfg := &app.Config{LogLevel: "debug", LogFormat: "json", Overrides: app.Overrides{Seed: int64Ptr(2)}}
	_, err = app.NewApp(context.Background(), &out, &logs, cfg)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"msg":"Session started."`)
	assert.Empty(t, out.String())
}
