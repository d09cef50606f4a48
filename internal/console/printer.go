// Package console serializes terminal output from the interactive loop and
// the reminder poller.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes whole lines under a lock so replies and asynchronous
// notifications never interleave mid-line.
type Printer struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool
}

// New returns a Printer. When styled is false, lines are written verbatim.
func New(out io.Writer, styled bool) *Printer {
	return &Printer{out: out, styled: styled}
}

// SetOutput swaps the destination, e.g. to a readline writer that redraws
// the prompt after each line.
func (p *Printer) SetOutput(out io.Writer) {
	p.mu.Lock()
	p.out = out
	p.mu.Unlock()
}

func (p *Printer) Banner(lines ...string) {
	for i, l := range lines {
		if i == 0 {
			p.line(BannerStyle, l)
			continue
		}
		p.line(HelpStyle, l)
	}
}

func (p *Printer) Reply(msg string)  { p.line(ReplyStyle, msg) }
func (p *Printer) Notify(msg string) { p.line(NotifyStyle, "\n"+msg) }

func (p *Printer) Error(err error) {
	p.line(ErrorStyle, fmt.Sprintf("Error: %v", err))
}

func (p *Printer) line(style lipgloss.Style, msg string) {
	if p.styled {
		msg = style.Render(msg)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, msg)
}
