// Package prompt is the line-oriented terminal I/O shared by the console handlers.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type line struct {
	text string
	err  error
}

// IO reads operator input one line at a time and writes prompts and results.
// Reads honour context cancellation so an interrupt never leaves a prompt hanging.
type IO struct {
	lines   <-chan line
	done    chan struct{}
	once    sync.Once
	out     io.Writer
	printer *message.Printer
}

// New starts reading r in the background and writes to w. Call Close to
// stop the reader once no more input is wanted.
func New(r io.Reader, w io.Writer) *IO {
	ch := make(chan line)
	done := make(chan struct{})
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- line{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-done:
			}
		}
	}()
	return &IO{
		lines:   ch,
		done:    done,
		out:     w,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Close releases the background reader. A read already blocked inside r
// returns only when r does.
func (p *IO) Close() error {
	p.once.Do(func() { close(p.done) })
	return nil
}

// Ask writes label and waits for the next line. It returns io.EOF once input
// is exhausted and ctx.Err() when the context is cancelled first.
func (p *IO) Ask(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.out, label)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}

// Say writes one formatted line.
func (p *IO) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Dollars renders a whole-dollar amount with digit grouping.
func (p *IO) Dollars(amount int) string {
	return p.printer.Sprintf("$%d", amount)
}

// DollarsCents renders a fractional amount with two decimals.
func (p *IO) DollarsCents(amount float64) string {
	return p.printer.Sprintf("$%.2f", amount)
}
