package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	OpenLogFileError

	// Sheet errors
	SheetReadError
	SheetHeaderNotFoundError
	SheetUnsupportedFormatError

	// Engine errors
	NoDataError
	NoAuthorsError
	MergeOverlapError
	MergeInvalidError
	MergeNotFoundError
	DatasetNotFoundError
	EmptyEmailError

	// Merges file errors
	MergesFileReadError
	MergesFileWriteError

	// Store errors
	StoreOpenError
	StoreLoadError
	StoreSaveError
	StoreUnknownBackendError

	// Report errors
	ReportUnknownKindError
	ReportUnknownFormatError
	ReportWriteError
)
