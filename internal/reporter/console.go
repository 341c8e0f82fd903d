package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/opsdiff/opsdiff/internal/models"
)

// ConsoleReporter renders a DiffResult as a plain-text change report.
// The engine never formats its own output; rendering stays out here.
type ConsoleReporter struct {
	writer io.Writer
}

// NewConsoleReporter creates a reporter writing to the given writer.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{writer: w}
}

// Render writes the change report. Added entities are prefixed with "+",
// removed with "-", modified with "~" plus their confidence and the
// changed lines from the alignment.
func (r *ConsoleReporter) Render(result *models.DiffResult) error {
	if !result.HasChanges() {
		_, err := fmt.Fprintf(r.writer, "No state changes detected (%d unchanged entities).\n", result.UnchangedCount)
		return err
	}

	var b strings.Builder
	for _, id := range result.Added {
		fmt.Fprintf(&b, "+ %s\n", id)
	}
	for _, id := range result.Removed {
		fmt.Fprintf(&b, "- %s\n", id)
	}
	for _, entry := range result.Modified {
		fmt.Fprintf(&b, "~ %s (confidence: %s)\n", entry.Identity, entry.Confidence)
		renderOpcodes(&b, entry.Opcodes)
	}
	fmt.Fprintf(&b, "\n%d added, %d removed, %d modified, %d unchanged\n",
		len(result.Added), len(result.Removed), len(result.Modified), result.UnchangedCount)

	_, err := io.WriteString(r.writer, b.String())
	return err
}

func renderOpcodes(b *strings.Builder, ops []models.LineOpcode) {
	for _, op := range ops {
		switch op.Op {
		case models.OpInsert:
			for _, line := range op.PostLines {
				fmt.Fprintf(b, "    + %s\n", line)
			}
		case models.OpDelete:
			for _, line := range op.PreLines {
				fmt.Fprintf(b, "    - %s\n", line)
			}
		case models.OpReplace:
			for i := range op.PreLines {
				fmt.Fprintf(b, "    - %s\n", op.PreLines[i])
				fmt.Fprintf(b, "    + %s\n", op.PostLines[i])
			}
		}
	}
}
