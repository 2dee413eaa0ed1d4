package source_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/arthur-debert/jenkins-job-linter/pkg/source"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		root    string
	}{
		{name: "project", data: "<?xml version='1.0' encoding='UTF-8'?>\n<project><builders/></project>", root: "project"},
		{name: "list view", data: "<hudson.model.ListView/>", root: "hudson.model.ListView"},
		{name: "unclosed", data: "<project>", wantErr: true},
		{name: "mismatched", data: "<project></matrix-project>", wantErr: true},
		{name: "empty", data: "", wantErr: true},
		{name: "plain text", data: "not xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := source.Parse(tt.name, []byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
				assert.Equal(t, tt.name, errors.GetErrorDetails(err)["job"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, job.Name)
			assert.Equal(t, tt.root, job.Document.Root().Tag)
		})
	}
}

func TestDirectoryJobs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/jobs/nested", 0755))
	require.NoError(t, afero.WriteFile(fs, "/jobs/job-b", []byte("<project/>"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/jobs/job-a", []byte("<matrix-project/>"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/jobs/nested/job-c", []byte("<project/>"), 0644))

	dir := source.NewDirectory(fs, "/jobs")
	require.NoError(t, dir.Check())

	jobs, err := dir.Jobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"job-a", "job-b"}, source.Names(jobs))
	assert.Equal(t, "matrix-project", jobs[0].Document.Root().Tag)
}

func TestDirectoryEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/jobs", 0755))

	jobs, err := source.NewDirectory(fs, "/jobs").Jobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestDirectoryAccessErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file.xml", []byte("<project/>"), 0644))

	tests := []struct {
		name string
		dir  string
	}{
		{"missing", "/nope"},
		{"not a directory", "/file.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := source.NewDirectory(fs, tt.dir)
			err := d.Check()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSourceAccess))

			_, err = d.Jobs(context.Background())
			assert.True(t, errors.IsErrorCode(err, errors.ErrSourceAccess))
		})
	}
}

func TestDirectoryBadDocumentAbortsBatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/jobs/good", []byte("<project/>"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/jobs/bad", []byte("<project>"), 0644))

	jobs, err := source.NewDirectory(fs, "/jobs").Jobs(context.Background())
	require.Error(t, err)
	assert.Nil(t, jobs)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
}
