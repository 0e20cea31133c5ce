package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSectionsCmd lists the distinct section names in a parameter file.
func NewSectionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <file>",
		Short: "List the sections of a parameter file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore(args[0])
			if err != nil {
				return err
			}
			for _, name := range store.SectionNames() {
				if name == "" {
					continue
				}
				fmt.Fprintln(app.Out, name)
			}
			return nil
		},
	}
	return cmd
}
