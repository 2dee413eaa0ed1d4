// Package engine runs registered rules over batches of job documents.
package engine

import (
	"io"
	"os"

	"github.com/arthur-debert/jenkins-job-linter/pkg/config"
	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
	"github.com/arthur-debert/jenkins-job-linter/pkg/logging"
	"github.com/arthur-debert/jenkins-job-linter/pkg/registry"
	"github.com/arthur-debert/jenkins-job-linter/pkg/report"
	"github.com/arthur-debert/jenkins-job-linter/pkg/rules"
	"github.com/arthur-debert/jenkins-job-linter/pkg/source"
	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Engine evaluates rules against documents and reports failures.
type Engine struct {
	rules    registry.Registry[lint.Factory]
	reporter report.Reporter
	logger   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules replaces the built-in rule set.
func WithRules(reg registry.Registry[lint.Factory]) Option {
	return func(e *Engine) { e.rules = reg }
}

// WithReporter sets where failures go.
func WithReporter(r report.Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// WithLogger sets the engine's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an engine running the built-in rules and reporting text to
// stdout unless options say otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{logger: logging.GetLogger("engine")}
	for _, opt := range opts {
		opt(e)
	}
	if e.rules == nil {
		e.rules = rules.Builtin()
	}
	if e.reporter == nil {
		e.reporter = textReporter(os.Stdout)
	}
	return e
}

func textReporter(w io.Writer) report.Reporter {
	r, _ := report.New(w, report.FormatText)
	return r
}

// Rules returns the rule registry in use.
func (e *Engine) Rules() registry.Registry[lint.Factory] {
	return e.rules
}

// EffectiveConfig builds the configuration for raw with the defaults of every
// registered rule.
func (e *Engine) EffectiveConfig(raw *koanf.Koanf) (*config.Config, error) {
	var defaults []config.Defaults
	err := e.rules.Each(func(_ string, f lint.Factory) error {
		defaults = append(defaults, f())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return config.Build(raw, defaults...)
}

// LintDocument runs every enabled rule against one document and reports its
// failures. It returns true when no rule failed. Reporter errors are logged.
func (e *Engine) LintDocument(run *lint.RunContext, name string, doc *etree.Document, cfg *config.Config) bool {
	ok, err := e.lintDocument(run, name, doc, cfg)
	if err != nil {
		e.logger.Error().Err(err).Str("job", name).Msg("Failed to report failure")
	}
	return ok
}

func (e *Engine) lintDocument(run *lint.RunContext, name string, doc *etree.Document, cfg *config.Config) (bool, error) {
	disabled := toSet(cfg.List(config.Namespace, config.DisableLinters))
	only := toSet(cfg.List(config.Namespace, config.OnlyRun))
	logger := e.logger.With().Str("job", name).Logger()

	success := true
	err := e.rules.Each(func(ruleName string, factory lint.Factory) error {
		if _, off := disabled[ruleName]; off {
			logger.Trace().Str("rule", ruleName).Msg("Rule disabled")
			return nil
		}
		if len(only) > 0 {
			if _, on := only[ruleName]; !on {
				logger.Trace().Str("rule", ruleName).Msg("Rule not in only_run")
				return nil
			}
		}

		rule := factory()
		ctx := &lint.Context{
			Config:   cfg.RuleSection(ruleName),
			Run:      run,
			Document: doc,
		}
		res := lint.Evaluate(rule, ctx)
		logger.Debug().
			Str("rule", ruleName).
			Stringer("outcome", res.Outcome).
			Str("detail", res.Detail).
			Msg("Rule evaluated")

		if !res.Outcome.IsFailure() {
			return nil
		}
		success = false
		return e.reporter.Report(report.Failure{
			Job:         name,
			Rule:        ruleName,
			Description: rule.Description(),
			Detail:      res.Detail,
		})
	})
	return success, err
}

// LintBatch lints every job with one shared run context and configuration,
// then flushes the reporter. It returns true when every job passed; an empty
// batch passes.
func (e *Engine) LintBatch(jobs []source.Job, raw *koanf.Koanf) (bool, error) {
	runID := uuid.New().String()[:8]
	logger := e.logger.With().Str("run_id", runID).Logger()
	done := logging.LogOperationStart(logger, "lint batch")
	defer done()

	cfg, err := e.EffectiveConfig(raw)
	if err != nil {
		return false, err
	}
	run := lint.NewRunContext(source.Names(jobs))

	logger.Info().Int("jobs", len(jobs)).Int("rules", e.rules.Count()).Msg("Linting batch")

	success := true
	failed := 0
	for _, job := range jobs {
		ok, err := e.lintDocument(run, job.Name, job.Document, cfg)
		if err != nil {
			return false, err
		}
		if !ok {
			success = false
			failed++
		}
	}

	if err := e.reporter.Flush(); err != nil {
		return false, err
	}
	logger.Info().Int("jobs", len(jobs)).Int("failed", failed).Bool("success", success).Msg("Batch linted")
	return success, nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
