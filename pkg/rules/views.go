package rules

import (
	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
)

// NewCheckColumnConfiguration fails list views that configure no columns.
func NewCheckColumnConfiguration() lint.Rule {
	return &rule{
		name:        "check_column_configuration",
		description: "checking column configuration",
		rootTags:    lint.ListViewRootTags,
		check: func(ctx *lint.Context) lint.Result {
			if len(ctx.Root().FindElements("./columns/*")) == 0 {
				return lint.Failed("No columns configured")
			}
			return lint.Passed()
		},
	}
}
