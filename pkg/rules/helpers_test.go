package rules_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/jenkins-job-linter/pkg/config"
	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// evaluate runs rule against xml with the rule's defaults overridden by opts.
func evaluate(t *testing.T, rule lint.Rule, xml string, opts map[string]interface{}, names ...string) lint.Result {
	t.Helper()

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))

	settings := rule.DefaultConfig()
	for k, v := range opts {
		settings[k] = v
	}

	ctx := &lint.Context{
		Config:   config.NewSection(config.RuleSectionName(rule.Name()), settings),
		Run:      lint.NewRunContext(names),
		Document: doc,
	}
	return lint.Evaluate(rule, ctx)
}

func project(body ...string) string {
	return "<project>" + strings.Join(body, "") + "</project>"
}

func shellSteps(scripts ...string) string {
	var b strings.Builder
	b.WriteString("<builders>")
	for _, s := range scripts {
		b.WriteString("<hudson.tasks.Shell><command>")
		b.WriteString(s)
		b.WriteString("</command></hudson.tasks.Shell>")
	}
	b.WriteString("</builders>")
	return b.String()
}
