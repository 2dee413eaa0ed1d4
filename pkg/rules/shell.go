package rules

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
)

// ShellStepPath selects the script of every inline shell build step.
const ShellStepPath = "./builders/hudson.tasks.Shell/command"

// ShellCheckFunc checks the script of a single shell build step. An empty
// script is passed as "".
type ShellCheckFunc func(ctx *lint.Context, script string) lint.Result

// ShellSteps returns the script text of every shell build step in document
// order.
func ShellSteps(ctx *lint.Context) []string {
	root := ctx.Root()
	if root == nil {
		return nil
	}
	elements := root.FindElements(ShellStepPath)
	scripts := make([]string, 0, len(elements))
	for _, el := range elements {
		scripts = append(scripts, el.Text())
	}
	return scripts
}

// EachShellStep runs check over every shell build step. The first failing
// step decides the result. Otherwise the job passes if any step passed and is
// skipped if every step was skipped or there are no shell steps.
func EachShellStep(ctx *lint.Context, check ShellCheckFunc) lint.Result {
	passed := false
	for _, script := range ShellSteps(ctx) {
		res := check(ctx, script)
		switch res.Outcome {
		case lint.Fail:
			return res
		case lint.Pass:
			passed = true
		}
	}
	if passed {
		return lint.Passed()
	}
	return lint.Skipped()
}

func shellRule(name, description string, defaults map[string]interface{}, options []string, check ShellCheckFunc) lint.Factory {
	return func() lint.Rule {
		return &rule{
			name:        name,
			description: description,
			rootTags:    lint.JobRootTags,
			defaults:    defaults,
			options:     options,
			check: func(ctx *lint.Context) lint.Result {
				return EachShellStep(ctx, check)
			},
		}
	}
}

// NewCheckForEmptyShell fails jobs with a shell build step whose script is
// empty.
func NewCheckForEmptyShell() lint.Rule {
	return shellRule(
		"check_for_empty_shell",
		"checking shell builder shell scripts are not empty",
		nil,
		nil,
		func(_ *lint.Context, script string) lint.Result {
			if script == "" {
				return lint.Failed("")
			}
			return lint.Passed()
		},
	)()
}

const (
	optAllowDefaultShebang  = "allow_default_shebang"
	optRequiredShellOptions = "required_shell_options"
)

var (
	shellShebang = regexp.MustCompile(`^#!/bin/[a-z]*sh`)
	shellOptions = regexp.MustCompile(`^-([a-z]+)`)
)

// NewCheckShebang checks that shell steps with a shell shebang pass the
// required option letters (by default -eux). Scripts relying on the Jenkins
// default shebang are skipped unless allow_default_shebang is false; scripts
// with a non-shell interpreter are always skipped.
func NewCheckShebang() lint.Rule {
	return shellRule(
		"check_shebang",
		"checking shebang of shell builders",
		map[string]interface{}{
			optAllowDefaultShebang:  true,
			optRequiredShellOptions: "eux",
		},
		[]string{optAllowDefaultShebang, optRequiredShellOptions},
		checkShebang,
	)()
}

func checkShebang(ctx *lint.Context, script string) lint.Result {
	if script == "" {
		return lint.Skipped()
	}

	firstLine := strings.TrimSuffix(strings.SplitN(script, "\n", 2)[0], "\r")
	if !strings.HasPrefix(firstLine, "#!") {
		if ctx.Config.Bool(optAllowDefaultShebang) {
			return lint.Skipped()
		}
		return lint.Failed("Shebang is Jenkins' default")
	}
	if !shellShebang.MatchString(firstLine) {
		return lint.Skipped()
	}

	required := ctx.Config.String(optRequiredShellOptions)
	if required == "" {
		return lint.Passed()
	}
	if !hasShellOptions(firstLine, required) {
		return lint.Failedf("Shebang is %s", firstLine)
	}
	return lint.Passed()
}

// hasShellOptions reports whether the second token of a shebang line is a
// single-dash option group containing every letter of required.
func hasShellOptions(shebang, required string) bool {
	fields := strings.Fields(shebang)
	if len(fields) < 2 {
		return false
	}
	m := shellOptions.FindStringSubmatch(fields[1])
	if m == nil {
		return false
	}
	for _, letter := range required {
		if !strings.ContainsRune(m[1], letter) {
			return false
		}
	}
	return true
}
