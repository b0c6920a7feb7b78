package bulkimporterrors

import (
	"net/http"

	"opsdash/internal/shared/apperror"
)

var (
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeUnsupportedFormat,
		"Unsupported file format. Please upload a CSV or JSON file",
		http.StatusBadRequest,
	)
	ErrParseFailed = apperror.New(
		apperror.CodeParseFailed,
		"Could not parse the uploaded file",
		http.StatusBadRequest,
	)
	ErrEmptyFile = apperror.New(
		apperror.CodeParseFailed,
		"The uploaded file contains no records",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"File exceeds the 10MB upload limit",
		http.StatusRequestEntityTooLarge,
	)
)
