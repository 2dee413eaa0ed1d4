package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/jenkins-job-linter/pkg/config"
	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/arthur-debert/jenkins-job-linter/pkg/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	cause := stderrors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain",
			err:  errors.New(errors.ErrLintFailed, "lint failures found"),
			want: "[LINT_FAILED] lint failures found",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrRuleInvalid, "rule %q has no name", "x"),
			want: `[RULE_INVALID] rule "x" has no name`,
		},
		{
			name: "wrapped",
			err:  errors.Wrap(cause, errors.ErrSourceFetch, "cannot list jobs"),
			want: "[SOURCE_FETCH] cannot list jobs: connection refused",
		},
		{
			name: "wrapped formatted",
			err:  errors.Wrapf(cause, errors.ErrSourceFetch, "cannot fetch %s", "nightly"),
			want: "[SOURCE_FETCH] cannot fetch nightly: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "unused"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "unused %d", 1))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("lint-directory: %w",
		errors.New(errors.ErrLintFailed, "lint failures found").WithDetail("jobs", 3))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrLintFailed, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrInternal, "")))
	assert.True(t, errors.IsErrorCode(err, errors.ErrLintFailed))
	assert.Equal(t, errors.ErrLintFailed, errors.GetErrorCode(err))
	assert.Equal(t, 3, errors.GetErrorDetails(err)["jobs"])

	var linterErr *errors.LinterError
	require.True(t, stderrors.As(err, &linterErr))
	assert.Equal(t, "lint failures found", linterErr.Message)
}

func TestForeignErrors(t *testing.T) {
	err := stderrors.New(`unknown flag: --nope`)

	assert.False(t, errors.IsErrorCode(err, errors.ErrUnknown))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(err))
	assert.Nil(t, errors.GetErrorDetails(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestWithDetailOnLiteral(t *testing.T) {
	err := (&errors.LinterError{Code: errors.ErrNotFound, Message: "missing"}).
		WithDetail("name", "nope")
	assert.Equal(t, map[string]interface{}{"name": "nope"}, err.Details)
}

func TestDocumentParseCarriesJob(t *testing.T) {
	_, err := source.Parse("nightly", []byte("<project>"))
	require.Error(t, err)

	assert.Equal(t, errors.ErrDocumentParse, errors.GetErrorCode(err))
	assert.Equal(t, "nightly", errors.GetErrorDetails(err)["job"])
	assert.Contains(t, err.Error(), "cannot parse nightly")
}

func TestConfigLoadWrapsOSError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	_, err := config.LoadFile(path)
	require.Error(t, err)

	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(err))
	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}
