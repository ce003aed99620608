// Package selection asks the player to pick one option from a list
package selection

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=selectionmock github.com/KirkDiggler/dice-companion/internal/selection Provider

// Provider presents a list of options and returns the one chosen
type Provider interface {
	// Choose returns the chosen option. ok is false when the player cancels.
	Choose(ctx context.Context, title string, options []string) (choice string, ok bool, err error)
}

// Prompt is a terminal Provider. It prints a numbered list and accepts the
// number or the option text. An empty line, "q" or end of input cancels.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt creates a prompt reading from in and writing to out
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Choose implements Provider
func (p *Prompt) Choose(ctx context.Context, title string, options []string) (string, bool, error) {
	if len(options) == 0 {
		return "", false, errors.InvalidArgument("no options to choose from")
	}

	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}

		fmt.Fprint(p.out, "> ")
		line, err := p.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", false, errors.Wrap(err, "failed to read selection")
		}

		answer := strings.TrimSpace(line)
		if answer == "" || strings.EqualFold(answer, "q") {
			return "", false, nil
		}

		if choice, found := match(answer, options); found {
			return choice, true, nil
		}

		if err == io.EOF {
			return "", false, nil
		}
		fmt.Fprintf(p.out, "Invalid choice %q, enter 1-%d or q to cancel\n", answer, len(options))
	}
}

func match(answer string, options []string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}

	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return opt, true
		}
	}
	return "", false
}
