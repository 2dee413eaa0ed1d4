package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Reporter receives failures as they are found.
type Reporter interface {
	// Report records one failure.
	Report(f Failure) error
	// Flush writes anything still buffered. It is called once per batch.
	Flush() error
}

// failColor matches the error color of the terminal theme.
var failColor = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}

// New returns a reporter writing to w in the given format.
func New(w io.Writer, format Format) (Reporter, error) {
	switch format {
	case FormatText:
		return newTextReporter(w), nil
	case FormatJSON, FormatYAML:
		return &documentReporter{w: w, format: format}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported report format: %s", format)
	}
}

// textReporter writes each failure on its own line as soon as it is
// reported.
type textReporter struct {
	mu    sync.Mutex
	w     io.Writer
	token string
}

func newTextReporter(w io.Writer) *textReporter {
	token := "FAIL"
	if useColor(w) {
		token = lipgloss.NewRenderer(w).NewStyle().
			Foreground(failColor).
			Bold(true).
			Render(token)
	}
	return &textReporter{w: w, token: token}
}

func (r *textReporter) Report(f Failure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintln(r.w, f.line(r.token)); err != nil {
		return errors.Wrap(err, errors.ErrReportWrite, "failed to write text output")
	}
	return nil
}

func (r *textReporter) Flush() error { return nil }

// documentReporter buffers failures and writes them as one JSON or YAML
// document on Flush.
type documentReporter struct {
	mu       sync.Mutex
	w        io.Writer
	format   Format
	failures []Failure
}

type document struct {
	Failures []Failure `json:"failures" yaml:"failures"`
}

func (r *documentReporter) Report(f Failure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, f)
	return nil
}

func (r *documentReporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := document{Failures: r.failures}
	if doc.Failures == nil {
		doc.Failures = []Failure{}
	}
	r.failures = nil

	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return errors.Wrap(err, errors.ErrReportWrite, "failed to encode JSON output")
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(r.w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return errors.Wrap(err, errors.ErrReportWrite, "failed to encode YAML output")
		}
		if err := encoder.Close(); err != nil {
			return errors.Wrap(err, errors.ErrReportWrite, "failed to encode YAML output")
		}
	}
	return nil
}

// Collector keeps failures in memory.
type Collector struct {
	mu       sync.Mutex
	failures []Failure
	flushes  int
}

func (c *Collector) Report(f Failure) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, f)
	return nil
}

func (c *Collector) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushes++
	return nil
}

// Failures returns a copy of everything reported so far.
func (c *Collector) Failures() []Failure {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Failure, len(c.failures))
	copy(out, c.failures)
	return out
}

// Lines renders every failure with Failure.String.
func (c *Collector) Lines() []string {
	failures := c.Failures()
	out := make([]string, len(failures))
	for i, f := range failures {
		out[i] = f.String()
	}
	return out
}

// Flushes returns how many times Flush was called.
func (c *Collector) Flushes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}

// Multi fans failures out to several reporters. The first error wins.
func Multi(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

type multiReporter []Reporter

func (m multiReporter) Report(f Failure) error {
	for _, r := range m {
		if err := r.Report(f); err != nil {
			return err
		}
	}
	return nil
}

func (m multiReporter) Flush() error {
	for _, r := range m {
		if err := r.Flush(); err != nil {
			return err
		}
	}
	return nil
}
