package employee_test

import (
	"testing"

	"opsdash/internal/employee"

	"github.com/stretchr/testify/assert"
)

func validInput() employee.Input {
	rate := 85.50
	target := 80
	return employee.Input{
		Department:        "Engineering",
		CostCenter:        "CC-ENG-001",
		Role:              "Software Engineer",
		EmployeeType:      "Full-time",
		Location:          "New York",
		BillingStatus:     "Billable",
		HourlyRate:        &rate,
		UtilizationTarget: &target,
		StartDate:         "2024-01-15",
		Skills:            employee.SkillList{"Go", "PostgreSQL"},
	}
}

func messagesByField(errs []employee.FieldError) map[string][]string {
	out := map[string][]string{}
	for _, e := range errs {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

func TestValidate(t *testing.T) {
	t.Run("valid input has no violations", func(t *testing.T) {
		assert.Empty(t, employee.Validate(validInput()))
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		in := validInput()
		in.CostCenter = ""
		in.HourlyRate = nil
		in.UtilizationTarget = nil
		in.Skills = nil

		assert.Empty(t, employee.Validate(in))
	})

	t.Run("collects every violation at once", func(t *testing.T) {
		errs := employee.Validate(employee.Input{})

		fields := messagesByField(errs)
		assert.Contains(t, fields["department"], "Department is required")
		assert.Contains(t, fields["role"], "Role is required")
		assert.Contains(t, fields["employeeType"], "Employee type is required")
		assert.Contains(t, fields["location"], "Location is required")
		assert.Contains(t, fields["billingStatus"], "Billing status is required")
		assert.Contains(t, fields["startDate"], "Start date is required")
	})

	t.Run("short department", func(t *testing.T) {
		in := validInput()
		in.Department = "E"

		errs := employee.Validate(in)

		assert.Len(t, errs, 1)
		assert.Equal(t, "Department must be at least 2 characters long", errs[0].Message)
	})

	t.Run("invalid employee type lists the choices", func(t *testing.T) {
		in := validInput()
		in.EmployeeType = "Freelance"

		errs := employee.Validate(in)

		assert.Len(t, errs, 1)
		assert.Equal(t, "Employee type must be one of: Full-time, Part-time, Contract, Intern", errs[0].Message)
	})

	t.Run("invalid billing status", func(t *testing.T) {
		in := validInput()
		in.BillingStatus = "Pending"

		errs := employee.Validate(in)

		assert.Len(t, errs, 1)
		assert.Equal(t, "Billing status must be one of: Billable, Non-billable, Overhead", errs[0].Message)
	})

	t.Run("hourly rate bounds", func(t *testing.T) {
		in := validInput()
		tooHigh := 1200.0
		in.HourlyRate = &tooHigh

		errs := employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Hourly rate cannot exceed $1000", errs[0].Message)

		negative := -5.0
		in.HourlyRate = &negative
		errs = employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Hourly rate must be a positive number", errs[0].Message)

		precise := 85.505
		in.HourlyRate = &precise
		errs = employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Hourly rate cannot have more than 2 decimal places", errs[0].Message)
	})

	t.Run("utilization target bounds", func(t *testing.T) {
		in := validInput()
		over := 150
		in.UtilizationTarget = &over

		errs := employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Utilization target cannot exceed 100%", errs[0].Message)

		under := -1
		in.UtilizationTarget = &under
		errs = employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Utilization target cannot be less than 0%", errs[0].Message)
	})

	t.Run("dates", func(t *testing.T) {
		in := validInput()
		in.StartDate = "15-01-2024"

		errs := employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Start date must be in ISO format (YYYY-MM-DD)", errs[0].Message)

		in = validInput()
		in.EndDate = "2023-12-31"
		errs = employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "End date must be after start date", errs[0].Message)

		in = validInput()
		in.EndDate = "2024-06-30"
		assert.Empty(t, employee.Validate(in))
	})

	t.Run("skills limits", func(t *testing.T) {
		in := validInput()
		in.Skills = make(employee.SkillList, 21)
		for i := range in.Skills {
			in.Skills[i] = "Skill"
		}

		errs := employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Cannot have more than 20 skills", errs[0].Message)

		in.Skills = employee.SkillList{""}
		errs = employee.Validate(in)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Each skill must be at least 1 character long", errs[0].Message)
	})
}

func TestInput_ToEntity(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		in := validInput()
		in.UtilizationTarget = nil
		in.HourlyRate = nil
		in.Skills = nil

		e := in.ToEntity()

		assert.Equal(t, employee.DefaultUtilizationTarget, e.UtilizationTarget)
		assert.Nil(t, e.HourlyRate)
		assert.NotNil(t, e.Skills)
		assert.Empty(t, e.Skills)
		assert.Equal(t, employee.StatusActive, e.Status)
		assert.NotEqual(t, "", e.ID.String())
	})

	t.Run("values carried over", func(t *testing.T) {
		in := validInput()
		e := in.ToEntity()

		assert.Equal(t, "Engineering", e.Department)
		assert.Equal(t, 80, e.UtilizationTarget)
		assert.NotNil(t, e.HourlyRate)
		assert.Equal(t, "85.5", e.HourlyRate.String())
		assert.Equal(t, "2024-01-15", e.StartDate.Format("2006-01-02"))
		assert.Nil(t, e.EndDate)
	})
}
