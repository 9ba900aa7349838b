// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/intronix/buildroot-imx/internal/core/domain"
	"github.com/intronix/buildroot-imx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Prompter = (*Confirmer)(nil)

// Confirmer reads answers from in and writes questions to out.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer creates a Confirmer over the given streams.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints question followed by a [y/N] hint and reads one line.
// Only "y" or "yes", in any case, count as affirmative. EOF is a no.
func (c *Confirmer) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", question); err != nil {
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}
	if errors.Is(err, io.EOF) && line == "" {
		// Keep the shell prompt on its own line.
		_, _ = fmt.Fprintln(c.out)
	}

	return IsAffirmative(line), nil
}

// IsAffirmative reports whether answer is an explicit yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
