package lint

import "fmt"

// Outcome is the tri-state verdict of a single rule check.
type Outcome int

const (
	// Pass means the document satisfies the rule.
	Pass Outcome = iota
	// Fail means the document violates the rule.
	Fail
	// Skip means the rule did not apply.
	Skip
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// IsFailure reports whether the outcome counts against a job. Skip never does.
func (o Outcome) IsFailure() bool {
	return o == Fail
}

// Result pairs an outcome with an optional human-readable detail.
type Result struct {
	Outcome Outcome
	Detail  string
}

func Passed() Result  { return Result{Outcome: Pass} }
func Skipped() Result { return Result{Outcome: Skip} }

// Failed returns a failing result. detail may be empty.
func Failed(detail string) Result {
	return Result{Outcome: Fail, Detail: detail}
}

func Failedf(format string, args ...interface{}) Result {
	return Failed(fmt.Sprintf(format, args...))
}

// HasDetail reports whether the result carries a detail message.
func (r Result) HasDetail() bool {
	return r.Detail != ""
}

func (r Result) String() string {
	if r.HasDetail() {
		return r.Outcome.String() + ": " + r.Detail
	}
	return r.Outcome.String()
}
