package bulkimport

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	bulkimporterrors "opsdash/internal/bulkimport/errors"
	"opsdash/internal/employee"

	"opsdash/internal/shared/apperror"
)

// Parse dispatches on the upload's file extension and returns normalized
// employee inputs in file order.
func Parse(filename string, data []byte) ([]employee.Input, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, bulkimporterrors.ErrUnsupportedFormat
	}
}

// ParseCSV reads a header row plus one record per line. Header names are
// matched case-insensitively and accept both camelCase and snake_case.
func ParseCSV(data []byte) ([]employee.Input, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, bulkimporterrors.ErrEmptyFile
		}
		return nil, wrapParseError(err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = normalizeHeader(name)
	}

	var inputs []employee.Input
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapParseError(err)
		}

		var in employee.Input
		for i, value := range record {
			if i >= len(columns) {
				break
			}
			assignField(&in, columns[i], strings.TrimSpace(value))
		}
		inputs = append(inputs, in)
	}

	if len(inputs) == 0 {
		return nil, bulkimporterrors.ErrEmptyFile
	}
	return inputs, nil
}

// ParseJSON accepts either a bare array of records or an object with an
// "employees" array.
func ParseJSON(data []byte) ([]employee.Input, error) {
	var inputs []employee.Input
	if err := json.Unmarshal(data, &inputs); err == nil {
		if len(inputs) == 0 {
			return nil, bulkimporterrors.ErrEmptyFile
		}
		return inputs, nil
	}

	var wrapped struct {
		Employees *[]employee.Input `json:"employees"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		if !json.Valid(data) {
			return nil, wrapParseError(err)
		}
		// Well-formed JSON, but neither an array nor an employees object.
		return nil, bulkimporterrors.ErrUnsupportedFormat
	}
	if wrapped.Employees == nil {
		return nil, bulkimporterrors.ErrUnsupportedFormat
	}
	if len(*wrapped.Employees) == 0 {
		return nil, bulkimporterrors.ErrEmptyFile
	}
	return *wrapped.Employees, nil
}

func wrapParseError(err error) error {
	return apperror.Wrap(err,
		bulkimporterrors.ErrParseFailed.Code,
		bulkimporterrors.ErrParseFailed.Message,
		bulkimporterrors.ErrParseFailed.HTTPStatus,
	)
}

// normalizeHeader lowercases and strips spaces, dashes and underscores so
// "Cost Center", "cost_center" and "costCenter" all resolve to the same key.
func normalizeHeader(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}

func assignField(in *employee.Input, column, value string) {
	switch column {
	case "department":
		in.Department = value
	case "costcenter":
		in.CostCenter = value
	case "role":
		in.Role = value
	case "employeetype":
		in.EmployeeType = value
	case "location":
		in.Location = value
	case "billingstatus":
		in.BillingStatus = value
	case "hourlyrate":
		if rate, err := strconv.ParseFloat(value, 64); err == nil {
			in.HourlyRate = &rate
		}
	case "utilizationtarget":
		if target, err := strconv.Atoi(value); err == nil {
			in.UtilizationTarget = &target
		}
	case "startdate":
		in.StartDate = value
	case "enddate":
		in.EndDate = value
	case "skills":
		in.Skills = splitSkills(value)
	}
}

// splitSkills accepts comma, semicolon, or pipe separated lists.
func splitSkills(value string) employee.SkillList {
	if value == "" {
		return employee.SkillList{}
	}

	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})

	skills := make(employee.SkillList, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}
