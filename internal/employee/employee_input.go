package employee

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SkillList accepts either a native JSON array or a comma-separated string,
// which the dashboard form submits for the skills field.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = SkillList{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// Input is a normalized employee record before validation. Both the direct
// create path and the bulk import pipeline produce this shape, so the same
// rule table applies to both.
type Input struct {
	Department        string    `json:"department"`
	CostCenter        string    `json:"costCenter"`
	Role              string    `json:"role"`
	EmployeeType      string    `json:"employeeType"`
	Location          string    `json:"location"`
	BillingStatus     string    `json:"billingStatus"`
	HourlyRate        *float64  `json:"hourlyRate,omitempty"`
	UtilizationTarget *int      `json:"utilizationTarget,omitempty"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate,omitempty"`
	Skills            SkillList `json:"skills"`
}

const dateLayout = "2006-01-02"

// ToEntity converts a validated Input into a new Employee. Call only after
// Validate returned no errors; date parsing is assumed to succeed here.
func (in Input) ToEntity() *Employee {
	e := &Employee{
		ID:                uuid.New(),
		Department:        in.Department,
		CostCenter:        in.CostCenter,
		Role:              in.Role,
		EmployeeType:      in.EmployeeType,
		Location:          in.Location,
		BillingStatus:     in.BillingStatus,
		UtilizationTarget: DefaultUtilizationTarget,
		Skills:            pq.StringArray(in.Skills),
		Status:            StatusActive,
	}

	if in.UtilizationTarget != nil {
		e.UtilizationTarget = *in.UtilizationTarget
	}
	if in.HourlyRate != nil {
		rate := decimal.NewFromFloat(*in.HourlyRate)
		e.HourlyRate = &rate
	}
	if start, err := time.Parse(dateLayout, in.StartDate); err == nil {
		e.StartDate = start
	}
	if in.EndDate != "" {
		if end, err := time.Parse(dateLayout, in.EndDate); err == nil {
			e.EndDate = &end
		}
	}
	if e.Skills == nil {
		e.Skills = pq.StringArray{}
	}

	return e
}

// toInput projects a stored record back into the validatable input shape,
// used to re-run the rule table against partially updated records.
func (e Employee) toInput() Input {
	target := e.UtilizationTarget
	in := Input{
		Department:        e.Department,
		CostCenter:        e.CostCenter,
		Role:              e.Role,
		EmployeeType:      e.EmployeeType,
		Location:          e.Location,
		BillingStatus:     e.BillingStatus,
		UtilizationTarget: &target,
		StartDate:         e.StartDate.Format(dateLayout),
		Skills:            SkillList(e.Skills),
	}
	if e.HourlyRate != nil {
		rate := e.HourlyRate.InexactFloat64()
		in.HourlyRate = &rate
	}
	if e.EndDate != nil {
		in.EndDate = e.EndDate.Format(dateLayout)
	}
	return in
}
