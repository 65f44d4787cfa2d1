package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/reducer"
)

// JSONExporter writes `{"<canonical key>": {"representative": .., "synonyms": [..]}}`.
type JSONExporter struct {
	dir string
}

func NewJSONExporter(dir string) *JSONExporter {
	return &JSONExporter{dir: dir}
}

func (that *JSONExporter) Export(_ context.Context, outcome entity.Outcome, classes []reducer.EncodedClass) error {
	byKey := make(map[string]reducer.EncodedClass, len(classes))
	for _, class := range classes {
		byKey[strconv.Itoa(class.Key)] = class
	}

	// encoding/json sorts map keys; all keys have nine digits so this is numeric order
	payload, err := json.MarshalIndent(byKey, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal classes: %w", err)
	}

	return writeAtomic(filepath.Join(that.dir, FileName(outcome, FormatJSON)), func(tmpPath string) error {
		return os.WriteFile(tmpPath, payload, 0o644)
	})
}

// writeAtomic writes through a temp file and renames it over outPath.
func writeAtomic(outPath string, write func(tmpPath string) error) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := write(tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", filepath.Base(outPath), err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(outPath), err)
	}

	return nil
}
