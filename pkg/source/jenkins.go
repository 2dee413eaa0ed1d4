package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/arthur-debert/jenkins-job-linter/pkg/config"
	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/arthur-debert/jenkins-job-linter/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency bounds the number of config.xml downloads in flight.
	DefaultConcurrency = 4

	defaultTimeout = 30 * time.Second
)

// Jenkins reads job definitions from a running Jenkins server.
type Jenkins struct {
	base        *url.URL
	settings    config.JenkinsSettings
	client      *http.Client
	concurrency int
	logger      zerolog.Logger
}

// JenkinsOption configures a Jenkins source.
type JenkinsOption func(*Jenkins)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) JenkinsOption {
	return func(j *Jenkins) {
		if c != nil {
			j.client = c
		}
	}
}

// WithConcurrency sets how many job definitions are fetched at once.
func WithConcurrency(n int) JenkinsOption {
	return func(j *Jenkins) {
		if n > 0 {
			j.concurrency = n
		}
	}
}

// NewJenkins validates the server settings and returns a source for them.
func NewJenkins(settings config.JenkinsSettings, opts ...JenkinsOption) (*Jenkins, error) {
	if settings.URL == "" {
		return nil, errors.New(errors.ErrInvalidInput, "jenkins URL is required")
	}
	base, err := url.Parse(settings.URL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid jenkins URL %q", settings.URL).
			WithDetail("url", settings.URL)
	}

	j := &Jenkins{
		base:        base,
		settings:    settings,
		client:      &http.Client{Timeout: defaultTimeout},
		concurrency: DefaultConcurrency,
		logger:      logging.GetLogger("source.jenkins"),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j, nil
}

type jobList struct {
	Jobs []struct {
		Name string `json:"name"`
	} `json:"jobs"`
}

// Jobs lists the server's top-level jobs and downloads each config.xml.
// Downloads run concurrently; the result keeps the server's order.
func (j *Jenkins) Jobs(ctx context.Context) ([]Job, error) {
	names, err := j.listJobs(ctx)
	if err != nil {
		return nil, err
	}
	j.logger.Info().Int("jobs", len(names)).Str("url", j.base.Redacted()).Msg("Listed Jenkins jobs")

	jobs := make([]Job, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)
	for i, name := range names {
		g.Go(func() error {
			data, err := j.get(gctx, j.base.JoinPath("job", name, "config.xml"))
			if err != nil {
				return err
			}
			job, err := Parse(name, data)
			if err != nil {
				return err
			}
			jobs[i] = job
			j.logger.Debug().Str("job", name).Int("bytes", len(data)).Msg("Fetched job config")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (j *Jenkins) listJobs(ctx context.Context) ([]string, error) {
	u := j.base.JoinPath("api", "json")
	q := u.Query()
	q.Set("tree", "jobs[name]")
	u.RawQuery = q.Encode()

	data, err := j.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var list jobList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceFetch, "invalid job list from jenkins")
	}
	names := make([]string, 0, len(list.Jobs))
	for _, job := range list.Jobs {
		names = append(names, job.Name)
	}
	return names, nil
}

func (j *Jenkins) get(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceFetch, "cannot build request")
	}
	if j.settings.Username != "" {
		req.SetBasicAuth(j.settings.Username, j.settings.Password)
	}

	resp, err := j.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceFetch, "GET %s failed", u.Redacted()).
			WithDetail("url", u.Redacted())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf(errors.ErrSourceFetch, "GET %s: %s", u.Redacted(), resp.Status).
			WithDetail("url", u.Redacted()).
			WithDetail("status", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceFetch, fmt.Sprintf("reading %s", u.Redacted()))
	}
	return data, nil
}
