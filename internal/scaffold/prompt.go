package scaffold

// ABOUTME: Context-aware interactive prompting for the create command's
// ABOUTME: interactive mode.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter reads interactive answers line by line from a single input
// stream. One Prompter must own the stream for its whole lifetime; creating
// a second scanner over the same reader would lose buffered input.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter wraps an input stream and an output writer for prompting.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// readLine reads a single line, returning early if ctx is cancelled. On EOF
// returns ("", nil) so callers can treat it as accepting the default. The
// reading goroutine may outlive the call on cancellation; this is acceptable
// for a CLI that is about to exit.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	ch := make(chan string, 1)
	go func() {
		if p.scanner.Scan() {
			ch <- p.scanner.Text()
		} else {
			ch <- ""
		}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line := <-ch:
		return line, nil
	}
}

// Prompt prints a prompt and reads one trimmed line. An empty answer yields
// the provided default.
func (p *Prompter) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	fmt.Fprint(p.out, prompt) //nolint:errcheck // best-effort output
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm prints a prompt and reads y/N.
// Returns true if the user answered "y" or "yes" (case-insensitive).
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	line, err := p.Prompt(ctx, prompt, "")
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(line)
	return answer == "y" || answer == "yes", nil
}
