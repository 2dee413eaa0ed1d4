package lint

// Rule is one semantic check over a job document.
type Rule interface {
	// Name is the stable identifier used in configuration section names and
	// in the disable_linters/only_run filters.
	Name() string

	// Description prefixes every failure report of the rule.
	Description() string

	// RootTags lists the document root element tags the rule applies to.
	RootTags() []string

	// DefaultConfig returns the rule's options and their default values.
	DefaultConfig() map[string]interface{}

	// Check runs the rule against a document that already passed the root
	// tag gate.
	Check(ctx *Context) Result
}

// OptionReader is implemented by rules that read options from their
// configuration section. Every option named by Options must have a default in
// DefaultConfig.
type OptionReader interface {
	Options() []string
}

// Factory creates a fresh Rule instance.
type Factory func() Rule

// JobRootTags are the root tags of freestyle and matrix project jobs.
var JobRootTags = []string{"project", "matrix-project"}

// ListViewRootTags are the root tags of list view definitions.
var ListViewRootTags = []string{"hudson.model.ListView"}

// AppliesTo reports whether the rule handles documents with the given root
// tag.
func AppliesTo(rule Rule, tag string) bool {
	for _, t := range rule.RootTags() {
		if t == tag {
			return true
		}
	}
	return false
}

// Evaluate runs rule against ctx behind the root tag gate: a document without
// a root element, or whose root tag the rule does not declare, is skipped
// without calling Check.
func Evaluate(rule Rule, ctx *Context) Result {
	root := ctx.Root()
	if root == nil || !AppliesTo(rule, root.Tag) {
		return Skipped()
	}
	return rule.Check(ctx)
}
