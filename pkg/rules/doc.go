// Package rules contains the built-in job linters.
//
// Each rule checks one narrow property of a compiled Jenkins job (or list
// view) definition. Rules are registered in a fixed order, which is also the
// order they are evaluated and reported in:
//
//	ensure_timestamps            timestamper build wrapper is configured
//	check_for_empty_shell        no shell build step has an empty script
//	check_shebang                shell steps invoke the shell with the required options
//	check_env_inject             required lines are injected into the build environment
//	check_job_references         triggered jobs exist in the same batch
//	ensure_workspace_cleanup     workspace is cleaned before the build
//	check_column_configuration   list views configure at least one column
//
// Rules that inspect shell build steps share EachShellStep; rules that only
// require an element to exist are built with requireElement.
//
// # Configuration
//
// Rule options live in their own section of the configuration file:
//
//	["job_linter:check_shebang"]
//	allow_default_shebang = false
//	required_shell_options = "eu"
//
//	["job_linter:check_env_inject"]
//	required_environment_settings = "LANG=C.UTF-8, TZ=UTC"
package rules
