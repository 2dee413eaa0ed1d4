package lint_test

import (
	"testing"

	"github.com/arthur-debert/jenkins-job-linter/pkg/lint"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRule struct {
	tags   []string
	result lint.Result
	calls  int
}

func (s *stubRule) Name() string                          { return "stub" }
func (s *stubRule) Description() string                   { return "stub rule" }
func (s *stubRule) RootTags() []string                    { return s.tags }
func (s *stubRule) DefaultConfig() map[string]interface{} { return nil }
func (s *stubRule) Check(*lint.Context) lint.Result {
	s.calls++
	return s.result
}

func parse(t *testing.T, xml string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	return doc
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome lint.Outcome
		str     string
		failure bool
	}{
		{lint.Pass, "PASS", false},
		{lint.Fail, "FAIL", true},
		{lint.Skip, "SKIP", false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.outcome.String())
			assert.Equal(t, tt.failure, tt.outcome.IsFailure())
		})
	}
}

func TestResultConstructors(t *testing.T) {
	assert.Equal(t, lint.Result{Outcome: lint.Pass}, lint.Passed())
	assert.Equal(t, lint.Result{Outcome: lint.Skip}, lint.Skipped())
	assert.False(t, lint.Failed("").HasDetail())

	r := lint.Failedf("Reference to missing object %s", "job-b")
	assert.Equal(t, lint.Fail, r.Outcome)
	assert.True(t, r.HasDetail())
	assert.Equal(t, "FAIL: Reference to missing object job-b", r.String())
	assert.Equal(t, "PASS", lint.Passed().String())
}

func TestEvaluateRootTagGate(t *testing.T) {
	tests := []struct {
		name      string
		xml       string
		want      lint.Outcome
		wantCalls int
	}{
		{"matching root", "<project/>", lint.Fail, 1},
		{"second declared root", "<matrix-project/>", lint.Fail, 1},
		{"other root", "<hudson.model.ListView/>", lint.Skip, 0},
		{"no root", "", lint.Skip, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &stubRule{tags: lint.JobRootTags, result: lint.Failed("boom")}
			ctx := &lint.Context{Document: parse(t, tt.xml)}

			got := lint.Evaluate(rule, ctx)
			assert.Equal(t, tt.want, got.Outcome)
			assert.Equal(t, tt.wantCalls, rule.calls)
			if tt.want == lint.Skip {
				assert.False(t, got.HasDetail())
			}
		})
	}
}

func TestEvaluateWithoutDocument(t *testing.T) {
	rule := &stubRule{tags: lint.JobRootTags, result: lint.Passed()}
	assert.Equal(t, lint.Skipped(), lint.Evaluate(rule, &lint.Context{}))
	assert.Zero(t, rule.calls)
}

func TestRunContext(t *testing.T) {
	names := []string{"job-a", "job-b"}
	rc := lint.NewRunContext(names)

	assert.True(t, rc.Has("job-a"))
	assert.True(t, rc.Has("job-b"))
	assert.False(t, rc.Has("job"))
	assert.False(t, rc.Has(""))

	// Neither the input nor the returned slice alias internal state.
	names[0] = "changed"
	got := rc.Names()
	assert.Equal(t, []string{"job-a", "job-b"}, got)
	got[1] = "changed"
	assert.Equal(t, []string{"job-a", "job-b"}, rc.Names())

	var empty *lint.RunContext
	assert.False(t, empty.Has("job-a"))
	assert.Empty(t, lint.NewRunContext(nil).Names())
}
