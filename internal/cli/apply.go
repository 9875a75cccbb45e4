package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/linkform/internal/ui"
	"github.com/idilsaglam/linkform/internal/validate"
)

func newApplyCmd(app *App) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "apply <op>...",
		Short: "Run list operations on the seed list, then submit it",
		Long: `Each argument is one operation; positions are 1-based.

  append  TITLE URL      add a link at the end
  prepend TITLE URL      add a link at the start
  insert  POS TITLE URL  add a link at POS (clamped to the list)
  remove  POS            drop the link at POS
  swap    I J            exchange two links
  move    FROM TO        relocate a link
  update  POS TITLE URL  replace the content at POS
  replace [TITLE URL]... start over with the given links

Out-of-range positions are ignored. Quote titles with spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOps(args)
			if err != nil {
				return err
			}
			f, err := app.newForm()
			if err != nil {
				return err
			}
			for _, o := range ops {
				applied, err := o.apply(f)
				if err != nil {
					return err
				}
				app.log.Debug("op", zap.Stringer("op", o), zap.Bool("applied", applied))
				if !applied && !quiet {
					fmt.Fprintln(app.errOut, ui.Current().Muted.Render("ignored: "+o.String()))
				}
			}

			links, err := f.Submit()
			var ve *validate.Error
			if errors.As(err, &ve) {
				ui.PrintPanel(app.errOut, ui.ReportLines(f.List(), f.Visible()))
				ui.Fail(app.errOut, fmtErrors(ve.State.Count()))
				return errInvalid
			}
			if err != nil {
				return err
			}
			if !quiet {
				ui.PrintPanel(app.errOut, ui.ReportLines(f.List(), f.Visible()))
			}
			return app.writeLinks(links)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the submitted links")
	return cmd
}

func fmtErrors(n int) string {
	if n == 1 {
		return "submit blocked: 1 field error"
	}
	return fmt.Sprintf("submit blocked: %d field errors", n)
}
