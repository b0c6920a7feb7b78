package employee

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// UpdateEmployeeRequest carries a partial update. Only fields present in the
// request body are applied; unknown fields are discarded by binding.
type UpdateEmployeeRequest struct {
	Department        *string   `json:"department"`
	CostCenter        *string   `json:"costCenter"`
	Role              *string   `json:"role"`
	EmployeeType      *string   `json:"employeeType"`
	Location          *string   `json:"location"`
	BillingStatus     *string   `json:"billingStatus"`
	HourlyRate        *float64  `json:"hourlyRate"`
	UtilizationTarget *int      `json:"utilizationTarget"`
	StartDate         *string   `json:"startDate"`
	EndDate           *string   `json:"endDate"`
	Skills            *[]string `json:"skills"`
}

// columns maps the request onto the fixed updatable column set.
func (r UpdateEmployeeRequest) columns() map[string]any {
	fields := map[string]any{}

	setStr := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setStr("department", r.Department)
	setStr("cost_center", r.CostCenter)
	setStr("role", r.Role)
	setStr("employee_type", r.EmployeeType)
	setStr("location", r.Location)
	setStr("billing_status", r.BillingStatus)

	if r.HourlyRate != nil {
		fields["hourly_rate"] = decimal.NewFromFloat(*r.HourlyRate)
	}
	if r.UtilizationTarget != nil {
		fields["utilization_target"] = *r.UtilizationTarget
	}
	if r.StartDate != nil {
		if start, err := time.Parse(dateLayout, *r.StartDate); err == nil {
			fields["start_date"] = start
		}
	}
	if r.EndDate != nil {
		if *r.EndDate == "" {
			fields["end_date"] = nil
		} else if end, err := time.Parse(dateLayout, *r.EndDate); err == nil {
			fields["end_date"] = end
		}
	}
	if r.Skills != nil {
		fields["skills"] = pq.StringArray(*r.Skills)
	}

	return fields
}

// merge overlays the requested fields onto the current record's input shape
// so the full rule table can run against the post-update state.
func (r UpdateEmployeeRequest) merge(in Input) Input {
	if r.Department != nil {
		in.Department = *r.Department
	}
	if r.CostCenter != nil {
		in.CostCenter = *r.CostCenter
	}
	if r.Role != nil {
		in.Role = *r.Role
	}
	if r.EmployeeType != nil {
		in.EmployeeType = *r.EmployeeType
	}
	if r.Location != nil {
		in.Location = *r.Location
	}
	if r.BillingStatus != nil {
		in.BillingStatus = *r.BillingStatus
	}
	if r.HourlyRate != nil {
		in.HourlyRate = r.HourlyRate
	}
	if r.UtilizationTarget != nil {
		in.UtilizationTarget = r.UtilizationTarget
	}
	if r.StartDate != nil {
		in.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		in.EndDate = *r.EndDate
	}
	if r.Skills != nil {
		in.Skills = SkillList(*r.Skills)
	}
	return in
}

type EmployeeResponse struct {
	ID                string    `json:"id"`
	Department        string    `json:"department"`
	CostCenter        string    `json:"costCenter,omitempty"`
	Role              string    `json:"role"`
	EmployeeType      string    `json:"employeeType"`
	Location          string    `json:"location"`
	BillingStatus     string    `json:"billingStatus"`
	HourlyRate        *float64  `json:"hourlyRate,omitempty"`
	UtilizationTarget int       `json:"utilizationTarget"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate,omitempty"`
	Skills            []string  `json:"skills"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                empl.ID.String(),
		Department:        empl.Department,
		CostCenter:        empl.CostCenter,
		Role:              empl.Role,
		EmployeeType:      empl.EmployeeType,
		Location:          empl.Location,
		BillingStatus:     empl.BillingStatus,
		UtilizationTarget: empl.UtilizationTarget,
		StartDate:         empl.StartDate.Format(dateLayout),
		Skills:            []string(empl.Skills),
		Status:            empl.Status,
		CreatedAt:         empl.CreatedAt,
		UpdatedAt:         empl.UpdatedAt,
	}
	if empl.HourlyRate != nil {
		rate := empl.HourlyRate.InexactFloat64()
		resp.HourlyRate = &rate
	}
	if empl.EndDate != nil {
		resp.EndDate = empl.EndDate.Format(dateLayout)
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
