// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dverrors "github.com/kraklabs/div/internal/errors"
	divtest "github.com/kraklabs/div/internal/testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    Config{Output: OutputText},
		},
		{
			name:    "all fields",
			content: "output: json\nno_color: true\nmetrics_textfile: /tmp/div.prom\n",
			want:    Config{Output: OutputJSON, NoColor: true, MetricsTextfile: "/tmp/div.prom"},
		},
		{
			name:    "partial file",
			content: "no_color: true\n",
			want:    Config{Output: OutputText, NoColor: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(divtest.WriteConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoadConfig_NoPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCause string
	}{
		{name: "unknown key", content: "outptu: json\n", wantCause: "field outptu not found"},
		{name: "wrong type", content: "no_color: maybe\n", wantCause: "is not valid"},
		{name: "unsupported output", content: "output: xml\n", wantCause: `unsupported output format "xml"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(divtest.WriteConfig(t, tt.content))
			require.Error(t, err)

			var ue *dverrors.UserError
			require.True(t, errors.As(err, &ue), "expected *UserError, got %T", err)
			assert.Equal(t, dverrors.ExitConfig, ue.ExitCode)
			assert.Contains(t, ue.Cause, tt.wantCause)
		})
	}
}

func TestGlobalFlags_ApplyConfig(t *testing.T) {
	cfg := &Config{Output: OutputJSON, NoColor: true, MetricsTextfile: "from-config.prom"}

	t.Run("config fills unset flags", func(t *testing.T) {
		g, err := parseFlags(nil, nil)
		require.NoError(t, err)
		g.applyConfig(cfg)
		assert.True(t, g.JSON)
		assert.True(t, g.NoColor)
		assert.Equal(t, "from-config.prom", g.MetricsTextfile)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		g, err := parseFlags([]string{"--json=false", "--no-color=false", "--metrics-textfile", "flag.prom"}, nil)
		require.NoError(t, err)
		g.applyConfig(cfg)
		assert.False(t, g.JSON)
		assert.False(t, g.NoColor)
		assert.Equal(t, "flag.prom", g.MetricsTextfile)
	})
}
