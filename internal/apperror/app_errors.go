package apperror

import "errors"

var (
	ErrInvalidMark          = errors.New("invalid mark")
	ErrInvalidCell          = errors.New("invalid cell index")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrPathEncodingOverflow = errors.New("path cannot be encoded")
	ErrLookupMiss           = errors.New("outcome bucket not found")
	ErrUnknownFormat        = errors.New("unknown export format")
)
