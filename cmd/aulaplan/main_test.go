package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/aulaplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBackend(t *testing.T) (*testutil.Backend, string) {
	t.Helper()
	backend := testutil.NewBackend(
		testutil.NewGroup().WithID("1").WithName("Turma A").Build(),
		testutil.NewGroup().WithID("2").WithName("Turma B").Closed().Build(),
	)
	t.Cleanup(backend.Close)
	backend.Seed(
		testutil.NewWeek().WithNumber(1).WithUnit("Redes").WithResources("lab,projetor").Build(),
		testutil.NewWeek().WithNumber(2).WithUnit("Lógica").WithResources("quadro").Completed().Build(),
	)

	dir := t.TempDir()
	cfg := fmt.Sprintf(`api:
  base_url: %s
store:
  backend: sqlite
  path: %s
log:
  level: error
  file: "-"
export:
  dir: %s
`, backend.BaseURL(), filepath.Join(dir, "state.db"), filepath.Join(dir, "exports"))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return backend, path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGroupsCommand(t *testing.T) {
	_, cfg := setupBackend(t)
	out, err := run(t, "-c", cfg, "groups")
	require.NoError(t, err)
	assert.Contains(t, out, "Turma A")
	assert.Contains(t, out, "encerrada")
}

func TestWeeksCommandFilters(t *testing.T) {
	_, cfg := setupBackend(t)

	out, err := run(t, "-c", cfg, "weeks", "--group", "turma a")
	require.NoError(t, err)
	assert.Contains(t, out, "Redes")
	assert.Contains(t, out, "lab, projetor")
	assert.Contains(t, out, "2 semanas")

	out, err = run(t, "-c", cfg, "weeks", "-g", "1", "--search", "recurso:quadro")
	require.NoError(t, err)
	assert.NotContains(t, out, "Redes")
	assert.Contains(t, out, "1/2 semanas")

	out, err = run(t, "-c", cfg, "weeks", "-g", "1", "--unit", "Redes")
	require.NoError(t, err)
	assert.Contains(t, out, "1/2 semanas")
}

func TestWeeksCommandNeedsGroup(t *testing.T) {
	_, cfg := setupBackend(t)
	_, err := run(t, "-c", cfg, "weeks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no group selected")

	_, err = run(t, "-c", cfg, "weeks", "-g", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `group "99" not found`)
}

func TestExportCommand(t *testing.T) {
	_, cfg := setupBackend(t)
	target := filepath.Join(t.TempDir(), "out.json")

	out, err := run(t, "-c", cfg, "export", "-g", "1", "-f", "json", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lógica")
}

func TestExportCommandRejectsUnknownFormat(t *testing.T) {
	_, cfg := setupBackend(t)
	_, err := run(t, "-c", cfg, "export", "-g", "1", "-f", "docx")
	require.Error(t, err)
}

func TestRootRequiresTerminal(t *testing.T) {
	_, cfg := setupBackend(t)
	_, err := run(t, "-c", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}
