package rules_test

import (
	"testing"

	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
	"github.com/arthur-debert/jenkins-job-linter/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func TestRequireElementRules(t *testing.T) {
	tests := []struct {
		name string
		rule lint.Rule
		xml  string
		want lint.Result
	}{
		{
			name: "timestamps configured",
			rule: rules.NewEnsureTimestamps(),
			xml:  project("<buildWrappers><hudson.plugins.timestamper.TimestamperBuildWrapper/></buildWrappers>"),
			want: lint.Passed(),
		},
		{
			name: "timestamps missing",
			rule: rules.NewEnsureTimestamps(),
			xml:  project("<buildWrappers/>"),
			want: lint.Failed(""),
		},
		{
			name: "timestamps outside buildWrappers",
			rule: rules.NewEnsureTimestamps(),
			xml:  project("<hudson.plugins.timestamper.TimestamperBuildWrapper/>"),
			want: lint.Failed(""),
		},
		{
			name: "timestamps on a list view",
			rule: rules.NewEnsureTimestamps(),
			xml:  "<hudson.model.ListView/>",
			want: lint.Skipped(),
		},
		{
			name: "workspace cleanup configured",
			rule: rules.NewEnsureWorkspaceCleanup(),
			xml:  project("<buildWrappers><hudson.plugins.ws__cleanup.PreBuildCleanup/></buildWrappers>"),
			want: lint.Passed(),
		},
		{
			name: "workspace cleanup missing",
			rule: rules.NewEnsureWorkspaceCleanup(),
			xml:  project(),
			want: lint.Failed(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(t, tt.rule, tt.xml, nil))
		})
	}
}

func envInject(content string) string {
	return "<properties><EnvInjectJobProperty><info><propertiesContent>" +
		content +
		"</propertiesContent></info></EnvInjectJobProperty></properties>"
}

func TestCheckEnvInject(t *testing.T) {
	required := map[string]interface{}{
		"required_environment_settings": "LANG=C.UTF-8, TZ=UTC",
	}

	tests := []struct {
		name string
		xml  string
		opts map[string]interface{}
		want lint.Result
	}{
		{
			name: "nothing required",
			xml:  project(),
			want: lint.Skipped(),
		},
		{
			name: "all settings present",
			xml:  project(envInject("TZ=UTC\nLANG=C.UTF-8\nOTHER=1")),
			opts: required,
			want: lint.Passed(),
		},
		{
			name: "setting missing",
			xml:  project(envInject("LANG=C.UTF-8")),
			opts: required,
			want: lint.Failed("Did not find TZ=UTC"),
		},
		{
			name: "setting only as substring",
			xml:  project(envInject("LANG=C.UTF-8\nTZ=UTC+1")),
			opts: required,
			want: lint.Failed("Did not find TZ=UTC"),
		},
		{
			name: "injection not configured",
			xml:  project(),
			opts: required,
			want: lint.Failed("Injection unexpectedly unconfigured"),
		},
		{
			name: "injected properties empty",
			xml:  project(envInject("")),
			opts: required,
			want: lint.Failed("Injected properties empty"),
		},
		{
			name: "settings given as a list",
			xml:  project(envInject("A=1\nB=2")),
			opts: map[string]interface{}{"required_environment_settings": []interface{}{"A=1", "B=2"}},
			want: lint.Passed(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(t, rules.NewCheckEnvInject(), tt.xml, tt.opts))
		})
	}
}

func trigger(projects ...string) string {
	out := "<builders><hudson.plugins.parameterizedtrigger.TriggerBuilder><configs>"
	for _, p := range projects {
		out += "<hudson.plugins.parameterizedtrigger.BlockableBuildTriggerConfig><projects>" +
			p +
			"</projects></hudson.plugins.parameterizedtrigger.BlockableBuildTriggerConfig>"
	}
	return out + "</configs></hudson.plugins.parameterizedtrigger.TriggerBuilder></builders>"
}

func TestCheckJobReferences(t *testing.T) {
	batch := []string{"job-a", "job-b", "job-c"}

	tests := []struct {
		name string
		xml  string
		want lint.Result
	}{
		{"no triggers", project(), lint.Passed()},
		{"existing reference", project(trigger("job-b")), lint.Passed()},
		{"comma separated references", project(trigger("job-b, job-c")), lint.Passed()},
		{"missing reference", project(trigger("job-x")), lint.Failed("Reference to missing object job-x")},
		{"missing in list", project(trigger("job-b,job-x,job-y")), lint.Failed("Reference to missing object job-x")},
		{"prefix is not a match", project(trigger("job")), lint.Failed("Reference to missing object job")},
		{"empty reference", project(trigger("")), lint.Failed("No reference configured")},
		{"blank reference", project(trigger("  ")), lint.Failed("No reference configured")},
		{"empty entry in list", project(trigger("job-a,,job-b")), lint.Failed("Reference to missing object ")},
		{"trailing comma", project(trigger("job-a,")), lint.Failed("Reference to missing object ")},
		{"second config fails", project(trigger("job-a", "job-z")), lint.Failed("Reference to missing object job-z")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, evaluate(t, rules.NewCheckJobReferences(), tt.xml, nil, batch...))
		})
	}
}
