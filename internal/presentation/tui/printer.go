package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
)

// Printer writes colored operation progress lines to stdout. Colors are
// disabled automatically when stdout is not a terminal, so piped output
// stays clean.
type Printer struct {
	profile termenv.Profile
}

// NewPrinter detects the terminal capabilities of stdout.
func NewPrinter() *Printer {
	profile := termenv.Ascii
	if term.IsTerminal(int(os.Stdout.Fd())) {
		profile = termenv.ColorProfile()
	}
	return &Printer{profile: profile}
}

// Partial prints one streamed partial result line.
func (p *Printer) Partial(owner string, payload any, final bool) {
	marker := "..."
	color := "#a78bfa"
	if final {
		marker = "=> "
		color = "#818cf8"
	}
	line := termenv.String(fmt.Sprintf(" %s [%s] %v", marker, owner, payload)).
		Foreground(p.profile.Color(color))
	fmt.Println(line)
}

// Outcome prints the terminal status of a finished operation.
func (p *Printer) Outcome(owner string, outcome domain.Outcome, status domain.OperationResult) {
	color := "#34d399"
	if outcome == domain.OutcomeFailure {
		color = "#f87171"
	}
	label := termenv.String(outcome.String()).Foreground(p.profile.Color(color)).Bold()
	if status.OK() {
		fmt.Printf(" %s  %s\n", label, owner)
		return
	}
	fmt.Printf(" %s  %s: %s (%s)\n", label, owner, status.Message, status.Code)
}

// Info prints a dim informational line.
func (p *Printer) Info(msg string) {
	fmt.Println(termenv.String(" " + msg).Foreground(p.profile.Color("#9ca3af")).Faint())
}
