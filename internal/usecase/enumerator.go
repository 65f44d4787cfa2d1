package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/reducer"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/tictactoe"
)

type walker interface {
	Walk(ctx context.Context) (*tictactoe.WalkResult, error)
}

// Exporter persists the reduced classes of one outcome.
type Exporter interface {
	Export(ctx context.Context, outcome entity.Outcome, classes []reducer.EncodedClass) error
}

// OutcomeSummary describes the reduced form of one outcome bucket.
type OutcomeSummary struct {
	Outcome entity.Outcome
	Records int
	Classes []reducer.EncodedClass
}

// Summary is everything a run computed.
type Summary struct {
	Plies    []tictactoe.PlyStats
	Totals   tictactoe.Counts
	Outcomes []OutcomeSummary
}

// ClassCount is the total number of equivalence classes over all outcomes.
func (that *Summary) ClassCount() int {
	count := 0
	for _, outcome := range that.Outcomes {
		count += len(outcome.Classes)
	}

	return count
}

type Enumerator struct {
	logger    *slog.Logger
	walker    walker
	exporters []Exporter
}

func NewEnumerator(logger *slog.Logger, walker walker, exporters ...Exporter) *Enumerator {
	return &Enumerator{
		logger: logger,

		walker:    walker,
		exporters: exporters,
	}
}

// Run walks the game tree, reduces every terminal bucket and hands the
// classes to each exporter.
func (that *Enumerator) Run(ctx context.Context) (*Summary, error) {
	log := that.logger.With("method", "Run")

	result, err := that.walker.Walk(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to walk game tree: %w", err)
	}

	for _, ply := range result.Plies {
		log.Info("ply expanded",
			"ply", ply.Ply,
			"mark", ply.Mark.String(),
			"frontier", ply.Frontier,
			"non_terminal", ply.Counts.NonTerminal,
			"draw", ply.Counts.Draw,
			"win_x", ply.Counts.WinX,
			"win_o", ply.Counts.WinO,
		)
	}

	log.Info("game tree walked",
		"draw", result.Totals.Draw,
		"win_x", result.Totals.WinX,
		"win_o", result.Totals.WinO,
		"total", result.Totals.Terminal(),
	)

	summary := &Summary{
		Plies:  result.Plies,
		Totals: result.Totals,
	}

	for _, outcome := range entity.TerminalOutcomes {
		outcomeSummary, err := that.reduceOutcome(ctx, &result.Buckets, outcome)
		if err != nil {
			return nil, err
		}

		summary.Outcomes = append(summary.Outcomes, *outcomeSummary)
	}

	return summary, nil
}

func (that *Enumerator) reduceOutcome(ctx context.Context, buckets *tictactoe.Buckets, outcome entity.Outcome) (*OutcomeSummary, error) {
	records, err := buckets.Bucket(outcome)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s bucket: %w", outcome, err)
	}

	classes, err := reducer.Reduce(records)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce %s: %w", outcome, err)
	}

	encoded, err := reducer.Encode(classes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", outcome, err)
	}

	for _, exp := range that.exporters {
		if err = exp.Export(ctx, outcome, encoded); err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", outcome, err)
		}
	}

	that.logger.Info("outcome reduced",
		"outcome", outcome.String(),
		"records", len(records),
		"classes", len(encoded),
	)

	return &OutcomeSummary{
		Outcome: outcome,
		Records: len(records),
		Classes: encoded,
	}, nil
}
