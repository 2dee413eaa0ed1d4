package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/jenkins-job-linter/internal/version"
	"github.com/arthur-debert/jenkins-job-linter/pkg/config"
	"github.com/arthur-debert/jenkins-job-linter/pkg/engine"
	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
	"github.com/arthur-debert/jenkins-job-linter/pkg/logging"
	"github.com/arthur-debert/jenkins-job-linter/pkg/report"
	"github.com/arthur-debert/jenkins-job-linter/pkg/source"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags plus what PersistentPreRunE derives
// from them.
type globalOptions struct {
	verbosity int
	confPath  string
	format    string

	raw          *koanf.Koanf
	reportFormat report.Format
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "jenkins-job-linter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.Name(), args)
			return opts.load()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.confPath, "conf", "", MsgFlagConf)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", report.FormatText.String(),
		MsgFlagFormat+" ("+strings.Join(report.Formats(), "|")+")")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newLintDirectoryCmd(opts))
	rootCmd.AddCommand(newLintJenkinsCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

// load resolves the output format and reads the configuration file. An
// explicit --conf must load; otherwise the XDG default file is used when one
// exists.
func (o *globalOptions) load() error {
	format, err := report.ParseFormat(o.format)
	if err != nil {
		return err
	}
	o.reportFormat = format

	path := o.confPath
	if path == "" {
		found, ok := config.FindDefaultFile()
		if !ok {
			log.Debug().Msg("No configuration file found")
			return nil
		}
		path = found
	}

	raw, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("Configuration loaded")
	o.raw = raw
	return nil
}

// lint runs one batch and turns a failing batch into ErrLintFailed.
func (o *globalOptions) lint(cmd *cobra.Command, jobs []source.Job) error {
	reporter, err := report.New(cmd.OutOrStdout(), o.reportFormat)
	if err != nil {
		return err
	}

	ok, err := engine.New(engine.WithReporter(reporter)).LintBatch(jobs, o.raw)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrLintFailed, MsgErrLintFailed).
			WithDetail("jobs", len(jobs))
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := engine.New().EffectiveConfig(opts.raw)
			if err != nil {
				return err
			}
			out, err := config.MarshalTOML(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [rule]",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := engine.New().Rules()
			if len(args) == 1 {
				f, err := reg.Get(args[0])
				if err != nil {
					return err
				}
				return describeRule(out, f())
			}
			return reg.Each(func(name string, f lint.Factory) error {
				r := f()
				_, err := fmt.Fprintf(out, MsgRuleFormat, name, r.Description(), strings.Join(r.RootTags(), ", "))
				return err
			})
		},
	}
}

func describeRule(w io.Writer, r lint.Rule) error {
	if _, err := fmt.Fprintf(w, MsgRuleDetailFormat,
		r.Name(), r.Description(), strings.Join(r.RootTags(), ", "), config.RuleSectionName(r.Name())); err != nil {
		return err
	}

	defaults := r.DefaultConfig()
	opts := make([]string, 0, len(defaults))
	for opt := range defaults {
		opts = append(opts, opt)
	}
	sort.Strings(opts)
	for _, opt := range opts {
		if _, err := fmt.Fprintf(w, MsgRuleOptionFormat, opt, defaults[opt]); err != nil {
			return err
		}
	}
	return nil
}
