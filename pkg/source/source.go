// Package source loads Jenkins object definitions to lint.
//
// A Source yields the complete batch up front: rules such as
// check_job_references need every object name before the first document is
// linted.
package source

import (
	"context"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/beevik/etree"
)

// Job is one named, parsed Jenkins object definition.
type Job struct {
	Name     string
	Document *etree.Document
}

// Source produces a batch of jobs.
type Source interface {
	Jobs(ctx context.Context) ([]Job, error)
}

// Names returns the job names in batch order.
func Names(jobs []Job) []string {
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name
	}
	return names
}

// Parse reads a job definition. Malformed XML and documents without a root
// element are rejected.
func Parse(name string, data []byte) (Job, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Job{}, errors.Wrapf(err, errors.ErrDocumentParse, "cannot parse %s", name).
			WithDetail("job", name)
	}
	if doc.Root() == nil {
		return Job{}, errors.Newf(errors.ErrDocumentParse, "cannot parse %s: no root element", name).
			WithDetail("job", name)
	}
	return Job{Name: name, Document: doc}, nil
}
