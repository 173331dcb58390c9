package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/tui"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// num formats v with the configured precision in the output language.
func (s *session) num(v float64) string {
	return s.printer.Float(v, config.GetOutputPrecision())
}

// styled disables lipgloss colours unless w is a colour-capable terminal.
func styled(w io.Writer) {
	if f, ok := w.(*os.File); ok && tui.ColorEnabled(f) {
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
