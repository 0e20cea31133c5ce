package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	app := &App{
		Fs:  afero.NewMemMapFs(),
		Out: out,
		Err: &bytes.Buffer{},
	}
	return app, out
}

func writeFixture(t *testing.T, app *App, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(app.Fs, path, []byte(content), 0o644))
}

func runCmd(app *App, args ...string) error {
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestGetCmd(t *testing.T) {
	app, out := setupTestApp(t)
	writeFixture(t, app, "run.conf", "[time]\ndt = 0.1\n")

	require.NoError(t, runCmd(app, "get", "run.conf", "time/dt"))
	assert.Equal(t, "0.1\n", out.String())
}

func TestGetCmdTyped(t *testing.T) {
	app, out := setupTestApp(t)
	writeFixture(t, app, "run.conf", "[time]\ndt = 0.1\nsteps = 1000\n")

	require.NoError(t, runCmd(app, "get", "run.conf", "time/steps", "--type", "int"))
	assert.Equal(t, "1000\n", out.String())

	out.Reset()
	err := runCmd(app, "get", "run.conf", "time/dt", "--type", "int")
	assert.Error(t, err, "0.1 does not parse as an integer")
}

func TestGetCmdUnknownType(t *testing.T) {
	app, _ := setupTestApp(t)
	writeFixture(t, app, "run.conf", "[time]\ndt = 0.1\n")

	err := runCmd(app, "get", "run.conf", "time/dt", "--type", "duration")
	assert.ErrorContains(t, err, "unknown type")
}

func TestGetCmdMissingFile(t *testing.T) {
	app, _ := setupTestApp(t)
	err := runCmd(app, "get", "nope.conf", "time/dt")
	assert.ErrorContains(t, err, "no such parameter file")
}

func TestSetCmdCreatesAndUpdates(t *testing.T) {
	app, out := setupTestApp(t)

	require.NoError(t, runCmd(app, "set", "run.conf", "time/dt", "0.1"))
	require.NoError(t, runCmd(app, "set", "run.conf", "time/steps", "1000"))
	require.NoError(t, runCmd(app, "set", "run.conf", "time/dt", "0.2"))

	require.NoError(t, runCmd(app, "get", "run.conf", "time/dt"))
	assert.Equal(t, "0.2\n", out.String())

	data, err := afero.ReadFile(app.Fs, "run.conf")
	require.NoError(t, err)
	assert.Equal(t, "\n[time]\ndt = 0.2\nsteps = 1000\n", string(data))
}

func TestDumpCmd(t *testing.T) {
	app, out := setupTestApp(t)
	writeFixture(t, app, "run.conf", "[b]\ny = 2\n[a]\nx = 1\nz = 3\n")

	require.NoError(t, runCmd(app, "dump", "run.conf"))
	assert.Equal(t, "\n[a]\nx = 1\nz = 3\n\n[b]\ny = 2\n", out.String())
}

func TestDumpCmdFlat(t *testing.T) {
	app, out := setupTestApp(t)
	writeFixture(t, app, "run.conf", "[a]\nx = 1\n")

	require.NoError(t, runCmd(app, "dump", "run.conf", "--flat"))
	assert.Contains(t, out.String(), "*** Parameters ***")
	assert.Contains(t, out.String(), "a/x: 1")
}

func TestSectionsCmd(t *testing.T) {
	app, out := setupTestApp(t)
	writeFixture(t, app, "run.conf", "mode = fast\n[time]\ndt = 0.1\n[output]\npath = /tmp\n")

	require.NoError(t, runCmd(app, "sections", "run.conf"))
	assert.Equal(t, "output\ntime\n", out.String())
}
