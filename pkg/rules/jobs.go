package rules

import (
	"strings"

	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
)

const (
	timestamperPath      = "./buildWrappers/hudson.plugins.timestamper.TimestamperBuildWrapper"
	workspaceCleanupPath = "./buildWrappers/hudson.plugins.ws__cleanup.PreBuildCleanup"
	envInjectPath        = "./properties/EnvInjectJobProperty/info/propertiesContent"
	triggerProjectsPath  = "./builders/hudson.plugins.parameterizedtrigger.TriggerBuilder/configs/*/projects"

	optRequiredEnvironmentSettings = "required_environment_settings"
)

// NewEnsureTimestamps requires the timestamper build wrapper.
func NewEnsureTimestamps() lint.Rule {
	return requireElement("ensure_timestamps", "checking for timestamps", timestamperPath)()
}

// NewEnsureWorkspaceCleanup requires the pre-build workspace cleanup wrapper.
func NewEnsureWorkspaceCleanup() lint.Rule {
	return requireElement("ensure_workspace_cleanup", "checking for workspace cleanup", workspaceCleanupPath)()
}

// NewCheckEnvInject checks that every line listed in
// required_environment_settings appears verbatim in the EnvInject properties
// of the job. With nothing required the rule is skipped.
func NewCheckEnvInject() lint.Rule {
	return &rule{
		name:        "check_env_inject",
		description: "checking environment variable injection",
		rootTags:    lint.JobRootTags,
		defaults: map[string]interface{}{
			optRequiredEnvironmentSettings: "",
		},
		options: []string{optRequiredEnvironmentSettings},
		check:   checkEnvInject,
	}
}

func checkEnvInject(ctx *lint.Context) lint.Result {
	required := ctx.Config.List(optRequiredEnvironmentSettings)
	if len(required) == 0 {
		return lint.Skipped()
	}

	content := ctx.Root().FindElement(envInjectPath)
	if content == nil {
		return lint.Failed("Injection unexpectedly unconfigured")
	}
	text := content.Text()
	if text == "" {
		return lint.Failed("Injected properties empty")
	}

	lines := make(map[string]struct{})
	for _, line := range strings.Split(text, "\n") {
		lines[line] = struct{}{}
	}
	for _, setting := range required {
		if _, ok := lines[setting]; !ok {
			return lint.Failedf("Did not find %s", setting)
		}
	}
	return lint.Passed()
}

// NewCheckJobReferences checks that every job triggered by a parameterized
// trigger build step is part of the linted batch.
func NewCheckJobReferences() lint.Rule {
	return &rule{
		name:        "check_job_references",
		description: "checking job references",
		rootTags:    lint.JobRootTags,
		check:       checkJobReferences,
	}
}

func checkJobReferences(ctx *lint.Context) lint.Result {
	for _, node := range ctx.Root().FindElements(triggerProjectsPath) {
		projects := strings.TrimSpace(node.Text())
		if projects == "" {
			return lint.Failed("No reference configured")
		}
		// An empty entry, as in "a,,b", names no job and is reported as missing.
		for _, project := range strings.Split(projects, ",") {
			project = strings.TrimSpace(project)
			if !ctx.Run.Has(project) {
				return lint.Failedf("Reference to missing object %s", project)
			}
		}
	}
	return lint.Passed()
}
