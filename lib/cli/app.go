package cli

import (
	"io"
	"os"

	"github.com/gridsim/params/lib/params"
	"github.com/gridsim/params/lib/util"
	"github.com/samber/oops"
	"github.com/spf13/afero"
)

// App carries the dependencies shared by every subcommand. Tests inject an
// in-memory filesystem and capture the writers.
type App struct {
	Fs  afero.Fs
	Out io.Writer
	Err io.Writer
}

// NewApp returns an App wired to the real filesystem and standard streams.
func NewApp() *App {
	return &App{
		Fs:  afero.NewOsFs(),
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// openStore loads the parameter file at path into a fresh store.
func (a *App) openStore(path string) (*params.Store, error) {
	if !util.CheckFileExists(a.Fs, path) {
		return nil, oops.Errorf("no such parameter file: %s", path)
	}
	store := params.NewWithFs(a.Fs)
	if err := store.Load(path); err != nil {
		return nil, err
	}
	return store, nil
}
