package export

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/reducer"
)

type classStore interface {
	Save(ctx context.Context, outcome entity.Outcome, classes []reducer.EncodedClass) error
}

// StoreExporter hands classes to a class repository.
type StoreExporter struct {
	store classStore
}

func NewStoreExporter(store classStore) *StoreExporter {
	return &StoreExporter{store: store}
}

func (that *StoreExporter) Export(ctx context.Context, outcome entity.Outcome, classes []reducer.EncodedClass) error {
	return that.store.Save(ctx, outcome, classes)
}
