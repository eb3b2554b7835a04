package gridview

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates an Options value the engine cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrFileNotFound indicates the workbook file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the workbook file is not a valid xlsx file.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a sheet name that is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidRange indicates a range reference that cannot be resolved.
var ErrInvalidRange = errors.New("invalid range")

// ConfigError reports which option failed validation.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError wrapping ErrInvalidConfig.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)),
	}
}

// ImportError represents a failure to import part of a sheet.
type ImportError struct {
	SheetName string
	Component string // "layout", "cells", "data_range"
	Err       error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(sheetName, component string, err error) *ImportError {
	return &ImportError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// InvariantError is the panic value raised when the engine detects that its
// own geometry is inconsistent. It is never returned to callers.
type InvariantError struct {
	Check  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("geometry invariant %q violated: %s", e.Check, e.Detail)
}

func invariant(ok bool, check, format string, args ...any) {
	if !ok {
		panic(&InvariantError{Check: check, Detail: fmt.Sprintf(format, args...)})
	}
}
