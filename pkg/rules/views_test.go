package rules_test

import (
	"testing"

	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
	"github.com/arthur-debert/jenkins-job-linter/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestCheckColumnConfiguration(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want lint.Result
	}{
		{
			name: "columns configured",
			xml:  "<hudson.model.ListView><columns><hudson.views.StatusColumn/></columns></hudson.model.ListView>",
			want: lint.Passed(),
		},
		{
			name: "empty columns",
			xml:  "<hudson.model.ListView><columns/></hudson.model.ListView>",
			want: lint.Failed("No columns configured"),
		},
		{
			name: "no columns element",
			xml:  "<hudson.model.ListView/>",
			want: lint.Failed("No columns configured"),
		},
		{
			name: "jobs are skipped",
			xml:  project(),
			want: lint.Skipped(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(t, rules.NewCheckColumnConfiguration(), tt.xml, nil))
		})
	}
}
