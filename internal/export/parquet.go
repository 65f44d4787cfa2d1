package export

import (
	"context"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/reducer"
)

// ClassRow is one equivalence class in a parquet artifact.
type ClassRow struct {
	CanonicalKey   int64   `parquet:"canonical_key"`
	Representative int64   `parquet:"representative"`
	Synonyms       []int64 `parquet:"synonyms"`
}

type ParquetExporter struct {
	dir   string
	runID string
}

func NewParquetExporter(dir, runID string) *ParquetExporter {
	return &ParquetExporter{dir: dir, runID: runID}
}

func (that *ParquetExporter) Export(_ context.Context, outcome entity.Outcome, classes []reducer.EncodedClass) error {
	rows := make([]ClassRow, 0, len(classes))
	for _, class := range classes {
		synonyms := make([]int64, 0, len(class.Synonyms))
		for _, synonym := range class.Synonyms {
			synonyms = append(synonyms, int64(synonym))
		}

		rows = append(rows, ClassRow{
			CanonicalKey:   int64(class.Key),
			Representative: int64(class.Representative),
			Synonyms:       synonyms,
		})
	}

	return writeAtomic(filepath.Join(that.dir, FileName(outcome, FormatParquet)), func(tmpPath string) error {
		return parquet.WriteFile(tmpPath, rows,
			parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
			parquet.KeyValueMetadata("outcome", outcome.String()),
			parquet.KeyValueMetadata("run_id", that.runID),
		)
	})
}
