package domain

import "errors"

// ErrSheetFormat is returned when an uploaded spreadsheet is missing the
// required column set. Nothing is written in that case.
var ErrSheetFormat = errors.New("invalid file format, please use the template")

// ErrImportFailed wraps any row-level processing failure during a bulk
// import. Rows inserted before the failing one stay committed.
var ErrImportFailed = errors.New("error importing file")
