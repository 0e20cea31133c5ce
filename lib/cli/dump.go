package cli

import (
	"github.com/spf13/cobra"
)

// NewDumpCmd prints a parameter file back out in its canonical grouped
// form, or as a flat key listing with --flat.
func NewDumpCmd(app *App) *cobra.Command {
	var flat bool
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print a parameter file in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore(args[0])
			if err != nil {
				return err
			}
			if flat {
				store.Print(app.Out)
				return nil
			}
			return store.Write(app.Out)
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "print composite keys one per line instead of grouped sections")
	return cmd
}
