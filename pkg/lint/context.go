package lint

import (
	"github.com/arthur-debert/jenkins-job-linter/pkg/config"
	"github.com/beevik/etree"
)

// Context carries everything one rule invocation may read.
type Context struct {
	// Config is the rule's own configuration section.
	Config config.Section
	// Run is shared by every invocation in the batch.
	Run *RunContext
	// Document is the parsed job definition.
	Document *etree.Document
}

// Root returns the document's root element, or nil when there is none.
func (c *Context) Root() *etree.Element {
	if c == nil || c.Document == nil {
		return nil
	}
	return c.Document.Root()
}

// RunContext holds information about the whole batch being linted. It is
// read-only once built.
type RunContext struct {
	names []string
	index map[string]struct{}
}

// NewRunContext records the names of every object in the batch, in order.
func NewRunContext(names []string) *RunContext {
	rc := &RunContext{
		names: make([]string, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	copy(rc.names, names)
	for _, n := range names {
		rc.index[n] = struct{}{}
	}
	return rc
}

// Names returns a copy of the batch's object names.
func (r *RunContext) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether an object of that name is part of the batch.
func (r *RunContext) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.index[name]
	return ok
}
