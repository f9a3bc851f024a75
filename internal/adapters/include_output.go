package adapters

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mofprune/internal/ports"
)

// IncludeOutputAdapter writes rendered include lines to a file, or to
// Stdout when no path is given.
type IncludeOutputAdapter struct {
	Stdout io.Writer
}

func NewIncludeOutputAdapter() IncludeOutputAdapter {
	return IncludeOutputAdapter{Stdout: os.Stdout}
}

func (a IncludeOutputAdapter) WriteLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if strings.TrimSpace(path) == "" {
		out := a.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := io.WriteString(out, content); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write include directives").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write include file").
			WithCause(err)
	}
	return nil
}

var _ ports.IncludeOutputPort = IncludeOutputAdapter{}
