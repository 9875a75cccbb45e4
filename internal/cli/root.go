package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/linkform/internal/config"
	"github.com/idilsaglam/linkform/internal/form"
	"github.com/idilsaglam/linkform/internal/logging"
	"github.com/idilsaglam/linkform/internal/model"
	"github.com/idilsaglam/linkform/internal/seed"
	"github.com/idilsaglam/linkform/internal/tui"
	"github.com/idilsaglam/linkform/internal/ui"
)

// App carries root flags and the per-invocation ambient state.
type App struct {
	ConfigPath string
	Seed       string
	Mode       string
	Theme      string
	Format     string

	cfg config.Config
	log *zap.Logger

	out, errOut io.Writer
	// runTUI is swapped out in tests.
	runTUI func(*form.Form) ([]model.Link, error)
}

// errInvalid is returned when a command ends with an invalid list.
var errInvalid = errors.New("list is invalid")

// Run executes the CLI and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	return run(args, os.Stdout, os.Stderr, tui.Run)
}

func run(args []string, out, errOut io.Writer, runTUI func(*form.Form) ([]model.Link, error)) int {
	app := &App{out: out, errOut: errOut, runTUI: runTUI}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := cmd.Execute()
	if app.log != nil {
		_ = app.log.Sync()
	}
	if err == nil {
		return 0
	}
	if !errors.Is(err, errInvalid) {
		ui.Fail(errOut, err.Error())
	}
	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(errOut, ui.Current().Muted.Render("Hint: run `linkform --help` for usage"))
		return 2
	}
	return 1
}

// NewRootCmd builds the command tree writing to stdout/stderr.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{out: os.Stdout, errOut: os.Stderr, runTUI: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "linkform",
		Short:         "Edit and validate a list of links",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive form
  linkform

  # Validate a seed file
  linkform check --seed links.yaml

  # Scripted edits, then submit
  linkform apply "swap 1 2" "update 2 x http://x.com" "remove 6"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runInteractive()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", "", "config file (default ~/.linkform/config.yaml)")
	pf.StringVar(&app.Seed, "seed", "", "initial links (.json, .yaml, .yml, .html)")
	pf.StringVar(&app.Mode, "mode", "", "validation timing: onChange, onTouched, onSubmit")
	pf.StringVar(&app.Theme, "theme", "", "theme: classic, neon, mono")
	pf.StringVar(&app.Format, "format", "json", "submitted output format: json or yaml")

	cmd.AddCommand(newCheckCmd(app), newApplyCmd(app), newConfigCmd(app))
	return cmd
}

// setup loads config, applies flag overrides, and builds the logger.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.Seed
	}
	if flags.Changed("mode") {
		cfg.Mode = a.Mode
	}
	if flags.Changed("theme") {
		cfg.Theme = a.Theme
	}
	if err := cfg.Validate(); err != nil {
		return usageError{msg: err.Error()}
	}
	switch a.Format {
	case "json", "yaml":
	default:
		return usageErrorf("unsupported format %q", a.Format)
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return err
	}
	a.cfg = cfg

	interactive := cmd.Parent() == nil
	log, err := logging.New(cfg.Log, interactive)
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("cmd", cmd.Name()))
	return nil
}

func (a *App) newForm() (*form.Form, error) {
	links, err := seed.Load(a.cfg.Seed)
	if err != nil {
		return nil, err
	}
	a.log.Debug("seed loaded", zap.String("seed", a.cfg.Seed), zap.Int("count", len(links)))
	return form.New(links, form.WithMode(a.cfg.FormMode()), form.WithLogger(a.log)), nil
}

func (a *App) runInteractive() error {
	f, err := a.newForm()
	if err != nil {
		return err
	}
	links, err := a.runTUI(f)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if links == nil {
		return nil
	}
	return a.writeLinks(links)
}

// writeLinks prints submitted links in the selected format.
func (a *App) writeLinks(links []model.Link) error {
	if links == nil {
		links = []model.Link{}
	}
	var b []byte
	var err error
	switch a.Format {
	case "yaml":
		b, err = yaml.Marshal(links)
	default:
		b, err = json.MarshalIndent(links, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	_, err = a.out.Write(b)
	return err
}
