package employeeerrors

import (
	"net/http"

	"opsdash/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrValidationFailed = apperror.New(
		apperror.CodeValidationFailed,
		"Validation failed",
		http.StatusBadRequest,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeNoFieldsToUpdate,
		"No valid fields to update",
		http.StatusBadRequest,
	)
	ErrInvalidFilterField = apperror.New(
		apperror.CodeNotFound,
		"Invalid field for unique values",
		http.StatusNotFound,
	)
	ErrStorage = apperror.New(
		apperror.CodeStorageError,
		"Employee storage operation failed",
		http.StatusInternalServerError,
	)
)
