package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"regalgebra/internal/automaton"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "json" | "yaml"
	MaxStates int
	Config    string

	// Fs is where scripts, config files and -o outputs are read and written.
	Fs afero.Fs

	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

const defaultMaxStates = 10000

// NewRootCommand creates the root command. A nil opts uses the OS filesystem.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts == nil {
		opts = &RootOptions{}
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "regalgebra",
		Short: "Regular language algebra",
		Long: `Parse regular expressions, build their automata and compare the
languages they denote.

Inclusion and equality are decided exactly on the determinized automata.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(v, cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	pf.IntVar(&opts.MaxStates, "max-states", defaultMaxStates, "determinization state budget, 0 for none")
	pf.StringVar(&opts.Config, "config", "", "config file")

	for _, key := range []string{"verbose", "format", "max-states"} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewMatchCommand(opts))
	cmd.AddCommand(NewIncludeCommand(opts))
	cmd.AddCommand(NewEqualCommand(opts))
	cmd.AddCommand(NewDOTCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// load resolves flags, REGALGEBRA_* variables and the config file, in that
// order of precedence.
func (o *RootOptions) load(v *viper.Viper, stderr io.Writer) error {
	v.SetFs(o.Fs)
	v.SetEnvPrefix("REGALGEBRA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if o.Config != "" {
		v.SetConfigFile(o.Config)
		if err := v.ReadInConfig(); err != nil {
			return WrapExitError(ExitCommandError, "read config", err)
		}
	}

	o.Verbose = v.GetBool("verbose")
	o.Format = v.GetString("format")
	o.MaxStates = v.GetInt("max-states")

	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *RootOptions) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// compile builds a pattern under the configured state budget.
func (o *RootOptions) compile(source string) (*automaton.Pattern, error) {
	p, err := automaton.CompilePattern(source,
		automaton.WithMaxStates(o.MaxStates),
		automaton.WithLogger(o.logger()),
	)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("compile %q", source), err)
	}
	return p, nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
