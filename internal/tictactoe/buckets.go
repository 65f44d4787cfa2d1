package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
)

// Counts is the number of records per outcome.
type Counts struct {
	NonTerminal int
	Draw        int
	WinX        int
	WinO        int
}

// Terminal is the number of finished games.
func (that Counts) Terminal() int {
	return that.Draw + that.WinX + that.WinO
}

// Buckets holds the finished games of a walk, split by outcome.
type Buckets struct {
	Draw []entity.GameRecord
	WinX []entity.GameRecord
	WinO []entity.GameRecord
}

// Bucket returns the records classified as outcome. Non-terminal records are
// never kept, so asking for them is a lookup miss.
func (that *Buckets) Bucket(outcome entity.Outcome) ([]entity.GameRecord, error) {
	switch outcome {
	case entity.OutcomeDraw:
		return that.Draw, nil
	case entity.OutcomeWinX:
		return that.WinX, nil
	case entity.OutcomeWinO:
		return that.WinO, nil
	case entity.OutcomeNonTerminal:
		return nil, fmt.Errorf("%w: %s is not kept", apperror.ErrLookupMiss, outcome)
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrLookupMiss, outcome)
	}
}

// Counts returns the size of every bucket.
func (that *Buckets) Counts() Counts {
	return Counts{
		Draw: len(that.Draw),
		WinX: len(that.WinX),
		WinO: len(that.WinO),
	}
}

func (that *Buckets) add(outcome entity.Outcome, records ...entity.GameRecord) error {
	switch outcome {
	case entity.OutcomeDraw:
		that.Draw = append(that.Draw, records...)
	case entity.OutcomeWinX:
		that.WinX = append(that.WinX, records...)
	case entity.OutcomeWinO:
		that.WinO = append(that.WinO, records...)
	case entity.OutcomeNonTerminal:
		return fmt.Errorf("%w: %s cannot be bucketed", apperror.ErrLookupMiss, outcome)
	default:
		return fmt.Errorf("%w: %s", apperror.ErrLookupMiss, outcome)
	}

	return nil
}

func (that *Buckets) merge(other *Buckets) {
	that.Draw = append(that.Draw, other.Draw...)
	that.WinX = append(that.WinX, other.WinX...)
	that.WinO = append(that.WinO, other.WinO...)
}
