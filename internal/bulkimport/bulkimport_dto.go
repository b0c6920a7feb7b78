package bulkimport

import "opsdash/internal/employee"

const (
	RowErrorValidation = "validation"
	RowErrorDatabase   = "database"
)

// RowError records a single failed row. Rows are numbered from 1 in file
// order, excluding the CSV header line.
type RowError struct {
	Row     int                   `json:"row"`
	Type    string                `json:"type"`
	Message string                `json:"message,omitempty"`
	Errors  []employee.FieldError `json:"errors,omitempty"`
}

type CreatedEmployee struct {
	Row        int    `json:"row"`
	ID         string `json:"id"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// Report summarizes a completed import. Partial success is the normal case:
// failed rows never abort the remaining ones.
type Report struct {
	Total            int               `json:"total"`
	Successful       int               `json:"successful"`
	Failed           int               `json:"failed"`
	Errors           []RowError        `json:"errors"`
	CreatedEmployees []CreatedEmployee `json:"createdEmployees"`
}

// PreviewRow echoes one inspected row together with its validation outcome.
type PreviewRow struct {
	Row    int                   `json:"row"`
	Data   employee.Input        `json:"data"`
	Valid  bool                  `json:"valid"`
	Errors []employee.FieldError `json:"errors,omitempty"`
}

// PreviewReport is the dry-run result. Only the first few rows are inspected
// and counted as valid or invalid; rows past the sample contribute to Total
// but are left untouched until a real import.
type PreviewReport struct {
	Total   int          `json:"total"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
	Errors  []RowError   `json:"errors"`
	Preview []PreviewRow `json:"preview"`
}
