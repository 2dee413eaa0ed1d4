package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort          = "Lint Jenkins job configurations"
	MsgRootLong           = "jenkins-job-linter checks Jenkins job and view config.xml documents against a set of\nconfigurable rules, either from a local directory or straight from a Jenkins server."
	MsgVersionShort       = "Print version information"
	MsgVersionLong        = "Print detailed version information including commit hash and build date"
	MsgLintDirectoryShort = "Lint every job XML file in a directory"
	MsgLintDirectoryLong  = "Each regular file in the directory is one job; the file name is the job name."
	MsgLintJenkinsShort   = "Lint every job on a Jenkins server"
	MsgLintJenkinsLong    = "Connection settings come from the flags, then JENKINS_URL, JENKINS_USERNAME and\nJENKINS_PASSWORD, then the [jenkins] section of the configuration file."
	MsgConfigShort        = "Print the effective configuration as TOML"
	MsgRulesShort         = "List the available rules or describe one"
	MsgRulesLong          = "Without arguments, list every rule in evaluation order. With a rule name, show\nits root tags, configuration section and default options."

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConf     = "Path to a configuration file (TOML or YAML)"
	MsgFlagFormat   = "Output format for lint failures"
	MsgFlagURL      = "Jenkins base URL"
	MsgFlagUsername = "Jenkins user name"
	MsgFlagPassword = "Jenkins password or API token"

	// Output
	MsgVersionFormat    = "jenkins-job-linter version %s\n"
	MsgCommitFormat     = "Commit: %s\n"
	MsgBuiltFormat      = "Built:  %s\n"
	MsgRuleFormat       = "%-28s %s [%s]\n"
	MsgRuleDetailFormat = "name:        %s\ndescription: %s\nroot tags:   %s\nsection:     [%q]\n"
	MsgRuleOptionFormat = "  %s = %v\n"

	// Error messages
	MsgErrLintFailed   = "lint failures found"
	MsgErrNoURL        = "no Jenkins URL given; use --jenkins-url, JENKINS_URL or the [jenkins] section"
	MsgErrJenkinsEnv   = "failed to read Jenkins settings from the environment"
	MsgErrDetailFormat = "  %s: %v\n"
	MsgUsageHint       = "Run 'jenkins-job-linter --help' for usage."
)
