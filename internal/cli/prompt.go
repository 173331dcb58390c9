package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rshade/footprint/internal/tui"
)

// PromptResult is the outcome of a yes/no prompt.
type PromptResult struct {
	// Accepted is true if the user typed "y" or "yes".
	Accepted bool
	// Interactive is false when no prompt was shown because stdin is not a terminal.
	Interactive bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// Confirm asks a [y/N] question after printing warning. It returns without
// prompting when not attached to a terminal. Empty input declines.
func Confirm(writer io.Writer, reader io.Reader, warning string) PromptResult {
	if !tui.IsTTY() {
		return PromptResult{}
	}

	fmt.Fprintf(writer, "%s\n? Continue? [y/N] ", warning)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Interactive: true, Cancelled: true}
		}
		return PromptResult{Interactive: true}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true, Interactive: true}
	default:
		return PromptResult{Interactive: true}
	}
}
