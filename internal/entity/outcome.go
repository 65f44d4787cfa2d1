package entity

import "fmt"

type Outcome uint8

const (
	OutcomeNonTerminal Outcome = iota
	OutcomeDraw
	OutcomeWinX
	OutcomeWinO
)

// TerminalOutcomes lists the outcomes that end a game, in export order.
var TerminalOutcomes = []Outcome{OutcomeDraw, OutcomeWinX, OutcomeWinO}

func (that Outcome) String() string {
	switch that {
	case OutcomeNonTerminal:
		return "non_terminal"
	case OutcomeDraw:
		return "draw"
	case OutcomeWinX:
		return "win_x"
	case OutcomeWinO:
		return "win_o"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(that))
	}
}

// IsTerminal reports whether the game is over.
func (that Outcome) IsTerminal() bool {
	return that != OutcomeNonTerminal
}
