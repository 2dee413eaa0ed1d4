package report

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/jenkins-job-linter/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how failures are written.
type Format int

const (
	// FormatText writes one human-readable line per failure.
	FormatText Format = iota
	// FormatJSON writes a {"failures": [...]} document.
	FormatJSON
	// FormatYAML writes a failures: [...] document.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Formats lists the names ParseFormat accepts.
func Formats() []string {
	return []string{FormatText.String(), FormatJSON.String(), FormatYAML.String()}
}

// ParseFormat parses a format name. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// useColor reports whether w is a terminal that can show colors. NO_COLOR
// disables color everywhere.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}
