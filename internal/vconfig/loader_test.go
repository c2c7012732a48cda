package vconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	restoreCwd := chdir(t, dir)
	defer restoreCwd()

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultCORSOrigin, cfg.CORSOrigin)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Empty(t, cfg.Reader)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	restoreCwd := chdir(t, dir)
	defer restoreCwd()

	yamlBody := "reader: postgres://localhost/db\nhttp_addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vvsql.yaml"), []byte(yamlBody), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/db", cfg.Reader)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, DefaultCORSOrigin, cfg.CORSOrigin)
}

func TestLoad_MissingExplicitConfigFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/vvsql.yaml", nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	restoreCwd := chdir(t, dir)
	defer restoreCwd()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "vvsql.yaml"), []byte("http_addr: \":9090\"\n"), 0o644))
	t.Setenv("VVSQL_HTTP_ADDR", ":7070")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTPAddr)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	restoreCwd := chdir(t, dir)
	defer restoreCwd()

	t.Setenv("VVSQL_HTTP_ADDR", ":7070")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("http-addr", "", "")
	require.NoError(t, flags.Set("http-addr", ":6060"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.HTTPAddr)
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	dir := t.TempDir()
	restoreCwd := chdir(t, dir)
	defer restoreCwd()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("http-addr", "", "")

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(orig) }
}
