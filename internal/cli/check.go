package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/linkform/internal/ui"
	"github.com/idilsaglam/linkform/internal/validate"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the seed list and print every error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.newForm()
			if err != nil {
				return err
			}
			st := f.State()
			ui.PrintPanel(app.out, ui.ReportLines(f.List(), st))
			if !st.Valid() {
				ui.Fail(app.errOut, (&validate.Error{State: st}).Error())
				return errInvalid
			}
			ui.OK(app.out, "all links valid")
			return nil
		},
	}
}
