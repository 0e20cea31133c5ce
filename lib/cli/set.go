package cli

import (
	"github.com/gridsim/params/lib/params"
	"github.com/gridsim/params/lib/util"
	"github.com/spf13/cobra"
)

// NewSetCmd writes one value into a parameter file, creating the file if it
// does not exist yet.
func NewSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <section/key> <value>",
		Short: "Set one value in a parameter file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, key, value := args[0], args[1], args[2]
			store := params.NewWithFs(app.Fs)
			if util.CheckFileExists(app.Fs, path) {
				if err := store.Load(path); err != nil {
					return err
				}
			}
			store.SetString(key, value)
			return store.Save(path)
		},
	}
	return cmd
}
