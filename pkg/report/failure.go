// Package report writes rule failures for people and machines.
//
// Only failures are reported. Text output is streamed one line per failure;
// JSON and YAML output are buffered and written as a single document when the
// reporter is flushed.
package report

// Failure is one rule failing on one job.
type Failure struct {
	Job         string `json:"job" yaml:"job"`
	Rule        string `json:"rule" yaml:"rule"`
	Description string `json:"description" yaml:"description"`
	Detail      string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// String renders the failure as "<job>: <description>: FAIL" followed by
// ": <detail>" when a detail is present.
func (f Failure) String() string {
	return f.line("FAIL")
}

func (f Failure) line(token string) string {
	s := f.Job + ": " + f.Description + ": " + token
	if f.Detail != "" {
		s += ": " + f.Detail
	}
	return s
}
