// Package main provides tests for the vvsql CLI entrypoint.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vvsql/vvsql/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command error = %v", err)
	}

	if !strings.Contains(buf.String(), "version") {
		t.Errorf("version output should mention 'version', got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help command error = %v", err)
	}

	for _, want := range []string{"parse", "exec", "run", "validate", "serve"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help output should contain %q, got: %s", want, buf.String())
		}
	}
}

func TestRunCommandEndToEnd(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{
		"run", "--format", "json",
		"SELECT * FROM (VALUES (1, 10), (2, 20)) AS t(x, y) VISUALISE AS PLOT WITH line USING x=x, y=y",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run command error = %v", err)
	}

	if !strings.Contains(buf.String(), "\"mark\"") {
		t.Errorf("run output should be a Vega-Lite document, got: %s", buf.String())
	}
}

func TestPreloadFlagMakesFileQueryable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cities.csv"), []byte("name,population\nAda,120\nBend,340\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--preload", dir, "exec", "SELECT * FROM cities ORDER BY name"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("exec command error = %v", err)
	}

	if !strings.Contains(buf.String(), "Ada") {
		t.Errorf("exec output should include preloaded row, got: %s", buf.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"unknown-command"})

	if err := cmd.Execute(); err == nil {
		t.Error("unknown command should return an error")
	}
}
