package source

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/spf13/afero"
)

// Directory reads every regular file of one directory as a job. The file
// name is the job name.
type Directory struct {
	fs  afero.Fs
	dir string
}

func NewDirectory(fs afero.Fs, dir string) *Directory {
	return &Directory{fs: fs, dir: dir}
}

// Check verifies that the directory exists, is a directory and can be listed.
func (d *Directory) Check() error {
	_, err := d.list()
	return err
}

func (d *Directory) list() ([]string, error) {
	info, err := d.fs.Stat(d.dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceAccess, "cannot access %s", d.dir).
			WithDetail("path", d.dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceAccess, "%s is not a directory", d.dir).
			WithDetail("path", d.dir)
	}

	// afero.ReadDir sorts entries by name.
	entries, err := afero.ReadDir(d.fs, d.dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceAccess, "cannot read %s", d.dir).
			WithDetail("path", d.dir)
	}

	var names []string
	for _, e := range entries {
		if e.Mode().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Jobs lists the directory, then reads and parses each file. Any unreadable
// or unparsable file fails the whole batch.
func (d *Directory) Jobs(ctx context.Context) ([]Job, error) {
	names, err := d.list()
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(d.dir, name)
		data, err := afero.ReadFile(d.fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSourceAccess, "cannot read %s", path).
				WithDetail("path", path)
		}
		job, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
