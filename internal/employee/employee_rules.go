package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FieldError is a single schema violation, tagged with the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ruleKind int

const (
	kindText ruleKind = iota
	kindEnum
	kindRate
	kindPercent
	kindDate
	kindSkills
)

// fieldRule is one row of the declarative schema. The whole employee schema
// lives in the rules table below; Validate interprets it, so the create path
// and the import pipeline cannot drift apart.
type fieldRule struct {
	field    string
	kind     ruleKind
	required bool
	minLen   int
	maxLen   int
	enum     []string
	max      float64
	after    string // cross-field: must be strictly after this date field
}

var employeeRules = []fieldRule{
	{field: "department", kind: kindText, required: true, minLen: 2, maxLen: 100},
	{field: "costCenter", kind: kindText, maxLen: 50},
	{field: "role", kind: kindText, required: true, minLen: 2, maxLen: 100},
	{field: "employeeType", kind: kindEnum, required: true, enum: EmployeeTypes},
	{field: "location", kind: kindText, required: true, minLen: 2, maxLen: 100},
	{field: "billingStatus", kind: kindEnum, required: true, enum: BillingStatuses},
	{field: "hourlyRate", kind: kindRate, max: 1000},
	{field: "utilizationTarget", kind: kindPercent, max: 100},
	{field: "startDate", kind: kindDate, required: true},
	{field: "endDate", kind: kindDate, after: "startDate"},
	{field: "skills", kind: kindSkills, minLen: 1, maxLen: 50, max: 20},
}

func fieldLabel(field string) string {
	switch field {
	case "employeeType":
		return "Employee type"
	case "billingStatus":
		return "Billing status"
	case "hourlyRate":
		return "Hourly rate"
	case "utilizationTarget":
		return "Utilization target"
	case "startDate":
		return "Start date"
	case "endDate":
		return "End date"
	case "costCenter":
		return "Cost center"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// Validate checks the input against every rule and collects all violations
// instead of stopping at the first one.
func Validate(in Input) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	text := func(field string) string {
		switch field {
		case "department":
			return in.Department
		case "costCenter":
			return in.CostCenter
		case "role":
			return in.Role
		case "employeeType":
			return in.EmployeeType
		case "location":
			return in.Location
		case "billingStatus":
			return in.BillingStatus
		case "startDate":
			return in.StartDate
		case "endDate":
			return in.EndDate
		}
		return ""
	}

	for _, r := range employeeRules {
		label := fieldLabel(r.field)

		switch r.kind {
		case kindText:
			v := text(r.field)
			if v == "" {
				if r.required {
					add(r.field, label+" is required")
				}
				continue
			}
			if r.minLen > 0 && len(v) < r.minLen {
				add(r.field, fmt.Sprintf("%s must be at least %d characters long", label, r.minLen))
			}
			if r.maxLen > 0 && len(v) > r.maxLen {
				add(r.field, fmt.Sprintf("%s cannot exceed %d characters", label, r.maxLen))
			}

		case kindEnum:
			v := text(r.field)
			if v == "" {
				add(r.field, label+" is required")
				continue
			}
			if !contains(r.enum, v) {
				add(r.field, fmt.Sprintf("%s must be one of: %s", label, strings.Join(r.enum, ", ")))
			}

		case kindRate:
			if in.HourlyRate == nil {
				continue
			}
			v := *in.HourlyRate
			if v <= 0 {
				add(r.field, label+" must be a positive number")
			}
			if v > r.max {
				add(r.field, fmt.Sprintf("%s cannot exceed $%.0f", label, r.max))
			}
			d := decimal.NewFromFloat(v)
			if !d.Round(2).Equal(d) {
				add(r.field, label+" cannot have more than 2 decimal places")
			}

		case kindPercent:
			if in.UtilizationTarget == nil {
				continue
			}
			v := *in.UtilizationTarget
			if v < 0 {
				add(r.field, label+" cannot be less than 0%")
			}
			if float64(v) > r.max {
				add(r.field, fmt.Sprintf("%s cannot exceed %.0f%%", label, r.max))
			}

		case kindDate:
			v := text(r.field)
			if v == "" {
				if r.required {
					add(r.field, label+" is required")
				}
				continue
			}
			parsed, err := time.Parse(dateLayout, v)
			if err != nil {
				add(r.field, label+" must be in ISO format (YYYY-MM-DD)")
				continue
			}
			if r.after != "" {
				base, baseErr := time.Parse(dateLayout, text(r.after))
				if baseErr == nil && !parsed.After(base) {
					add(r.field, fmt.Sprintf("%s must be after %s", label, strings.ToLower(fieldLabel(r.after))))
				}
			}

		case kindSkills:
			if len(in.Skills) > int(r.max) {
				add(r.field, fmt.Sprintf("Cannot have more than %.0f skills", r.max))
			}
			for _, skill := range in.Skills {
				if len(skill) < r.minLen {
					add(r.field, fmt.Sprintf("Each skill must be at least %d character long", r.minLen))
					break
				}
			}
			for _, skill := range in.Skills {
				if len(skill) > r.maxLen {
					add(r.field, fmt.Sprintf("Each skill cannot exceed %d characters", r.maxLen))
					break
				}
			}
		}
	}

	return errs
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
