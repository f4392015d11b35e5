package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter asks for one line of input at a time.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	if r == nil {
		r = strings.NewReader("")
	}
	return &prompter{r: bufio.NewReader(r), w: w}
}

// ask prints label and returns the trimmed answer. End of input counts as
// an empty answer so the caller's validation reports it.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// field returns args[i] when present, otherwise prompts with label.
func (p *prompter) field(args []string, i int, label string) (string, error) {
	if i < len(args) {
		return strings.TrimSpace(args[i]), nil
	}
	return p.ask(label)
}
