// Package export writes reduced classes to one artifact per outcome.
package export

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(name))); format {
	case FormatJSON, FormatParquet:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownFormat, name)
	}
}

// FileName names the artifact of an outcome, e.g. "win_x.json".
func FileName(outcome entity.Outcome, format Format) string {
	return outcome.String() + "." + string(format)
}
