package heatmap

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidOptions indicates the heatmap options cannot be applied.
var ErrInvalidOptions = errors.New("invalid heatmap options")

// ErrSheetNotFound indicates a requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ApplyError represents an error while coloring a sheet.
type ApplyError struct {
	SheetName string
	Stage     string // "area", "rows", "style", "save"
	Err       error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("heatmap error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// NewApplyError creates a new ApplyError.
func NewApplyError(sheetName, stage string, err error) *ApplyError {
	return &ApplyError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
