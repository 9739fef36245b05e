package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "greeter")
	require.NoError(t, os.Mkdir(dir, 0o755))

	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, &Resolved{
		Root:    dir,
		Title:   "greeter",
		Padding: 1,
		Accent:  DefaultAccent,
	}, got)
}

func TestResolveTitleFromModule(t *testing.T) {
	tests := []struct {
		module string
		want   string
	}{
		{"example.com/tools/greeter", "greeter"},
		{"example.com/tools/greeter/v2", "greeter"},
		{"greeter", "greeter"},
	}
	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "go.mod", "module "+tt.module+"\n\ngo 1.24\n")

			got, err := Resolve(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Title)
		})
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  title: "  Colors  "
theme:
  padding: 0
  accent: "#00ff88"
metrics:
  addr: "127.0.0.1:9464"
`)

	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Colors", got.Title)
	assert.Equal(t, 0, got.Padding)
	assert.Equal(t, "#00ff88", got.Accent)
	assert.Equal(t, "127.0.0.1:9464", got.MetricsAddr)
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "app: [", "failed to parse inplace.yaml"},
		{"negative padding", "theme:\n  padding: -2\n", "theme.padding cannot be negative"},
		{"bad addr", "metrics:\n  addr: localhost\n", "metrics.addr is not host:port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)

			_, err := Resolve(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
