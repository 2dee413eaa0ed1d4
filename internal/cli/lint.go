package cli

import (
	"github.com/arthur-debert/jenkins-job-linter/pkg/config"
	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/arthur-debert/jenkins-job-linter/pkg/source"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// jenkinsEnv reads JENKINS_URL, JENKINS_USERNAME and JENKINS_PASSWORD.
type jenkinsEnv struct {
	URL      string
	Username string
	Password string
}

func newLintDirectoryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint-directory <dir>",
		Short: MsgLintDirectoryShort,
		Long:  MsgLintDirectoryLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := source.NewDirectory(afero.NewOsFs(), args[0])
			if err := dir.Check(); err != nil {
				return err
			}
			jobs, err := dir.Jobs(cmd.Context())
			if err != nil {
				return err
			}
			return opts.lint(cmd, jobs)
		},
	}
}

func newLintJenkinsCmd(opts *globalOptions) *cobra.Command {
	var flags config.JenkinsSettings

	cmd := &cobra.Command{
		Use:   "lint-jenkins",
		Short: MsgLintJenkinsShort,
		Long:  MsgLintJenkinsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveJenkins(flags, opts)
			if err != nil {
				return err
			}

			server, err := source.NewJenkins(settings)
			if err != nil {
				return err
			}
			jobs, err := server.Jobs(cmd.Context())
			if err != nil {
				return err
			}
			return opts.lint(cmd, jobs)
		},
	}

	cmd.Flags().StringVar(&flags.URL, "jenkins-url", "", MsgFlagURL)
	cmd.Flags().StringVar(&flags.Username, "jenkins-username", "", MsgFlagUsername)
	cmd.Flags().StringVar(&flags.Password, "jenkins-password", "", MsgFlagPassword)

	return cmd
}

// resolveJenkins layers flags over the environment over the [jenkins]
// configuration section, field by field.
func resolveJenkins(flags config.JenkinsSettings, opts *globalOptions) (config.JenkinsSettings, error) {
	var env jenkinsEnv
	if err := envconfig.Process("jenkins", &env); err != nil {
		return config.JenkinsSettings{}, errors.Wrap(err, errors.ErrInvalidInput, MsgErrJenkinsEnv)
	}

	fromFile, err := config.JenkinsFromRaw(opts.raw)
	if err != nil {
		return config.JenkinsSettings{}, err
	}

	settings := flags.Merge(config.JenkinsSettings(env)).Merge(fromFile)
	if settings.URL == "" {
		return config.JenkinsSettings{}, errors.New(errors.ErrInvalidInput, MsgErrNoURL)
	}
	return settings, nil
}
