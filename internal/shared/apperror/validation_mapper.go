package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts gin binding failures into an AppError with a
// per-field detail list.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make([]map[string]string, 0, len(errs))
		for _, e := range errs {
			field := formatFieldName(e.Field())
			msg := field + " is invalid"
			if e.Tag() == "required" {
				msg = field + " is required"
			}
			details = append(details, map[string]string{
				"field":   e.Field(),
				"message": msg,
			})
		}
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest).WithDetails(details)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
