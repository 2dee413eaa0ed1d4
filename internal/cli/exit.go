package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

var errorColor = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}

// HandleError writes err for the user to w and returns the process exit
// status. Lint failures are already on stdout, so they only set the status.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	code := errors.GetErrorCode(err)
	if code == errors.ErrLintFailed {
		return 1
	}

	style := lipgloss.NewRenderer(w).NewStyle().Foreground(errorColor).Bold(true)
	_, _ = fmt.Fprintln(w, style.Render(fmt.Sprintf("Error: %v", err)))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, MsgErrDetailFormat, k, details[k])
	}

	if code == errors.ErrUnknown {
		// Flag and argument errors come from cobra without a code.
		_, _ = fmt.Fprintln(w, MsgUsageHint)
	}
	return 1
}
