package cli

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// NewGetCmd prints a single value from a parameter file, optionally
// converted to a scalar type so conversion errors surface here rather than
// in whatever consumes the output.
func NewGetCmd(app *App) *cobra.Command {
	var valueType string
	cmd := &cobra.Command{
		Use:   "get <file> <section/key>",
		Short: "Print one value from a parameter file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore(args[0])
			if err != nil {
				return err
			}
			key := args[1]
			switch valueType {
			case "string":
				v, err := store.GetString(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, v)
			case "int":
				v, err := store.GetInt64(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, v)
			case "float":
				v, err := store.GetFloat64(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, v)
			case "bool":
				v, err := store.GetBool(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(app.Out, v)
			default:
				return oops.Errorf("unknown type %q (want string, int, float, or bool)", valueType)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&valueType, "type", "string", "interpret the value as this scalar type")
	return cmd
}
