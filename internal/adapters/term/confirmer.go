// Package term implements interactive prompts on the controlling
// terminal.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/flowtaskapp/flowtask/internal/ports"
)

// Confirmer prompts for confirmations and text input on stdin/stdout.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a confirmer reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Ensure Confirmer implements ports.Confirmer.
var _ ports.Confirmer = (*Confirmer)(nil)

// Confirm asks a yes/no question and reports the answer. Anything
// other than y/yes declines, including a read error.
func (c *Confirmer) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", message)

	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// PromptText asks for a line of text, pre-filled with a default shown
// in the prompt. An empty answer keeps the default; a read error
// cancels.
func (c *Confirmer) PromptText(message, defaultValue string) (string, bool) {
	if defaultValue != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", message, defaultValue)
	} else {
		fmt.Fprintf(c.out, "%s: ", message)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", false
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return defaultValue, true
	}
	return answer, true
}

// Notify prints a one-line message.
func (c *Confirmer) Notify(message string) {
	fmt.Fprintln(c.out, message)
}
