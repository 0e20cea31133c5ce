package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the params command tree around the shared App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "params",
		Short:         "Inspect and edit sectioned parameter files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)
	root.AddCommand(
		NewGetCmd(app),
		NewSetCmd(app),
		NewDumpCmd(app),
		NewSectionsCmd(app),
	)
	return root
}
