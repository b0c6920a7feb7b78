package analytics

import "time"

type KPICount struct {
	Count       int    `json:"count"`
	Active      int    `json:"active,omitempty"`
	Description string `json:"description"`
}

type AvgUtilizationKPI struct {
	Current     float64 `json:"current"`
	Target      int     `json:"target"`
	Description string  `json:"description"`
}

// Overview is the dashboard KPI block.
type Overview struct {
	TotalEmployees    KPICount          `json:"totalEmployees"`
	FullTimeEmployees KPICount          `json:"fullTimeEmployees"`
	Consultants       KPICount          `json:"consultants"`
	BillableEmployees KPICount          `json:"billableEmployees"`
	BenchEmployees    KPICount          `json:"benchEmployees"`
	AvgUtilization    AvgUtilizationKPI `json:"avgUtilization"`
}

type DepartmentAnalytics struct {
	Department    string  `json:"department"`
	EmployeeCount int     `json:"employeeCount"`
	BillableCount int     `json:"billableCount"`
	AvgUtilization float64 `json:"avgUtilization"`
	AvgHourlyRate  float64 `json:"avgHourlyRate"`
}

type UtilizationSummary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

type UtilizationDetail struct {
	Utilization   int    `json:"utilization"`
	EmployeeCount int    `json:"employeeCount"`
	Category      string `json:"category"`
}

type UtilizationMetrics struct {
	Summary UtilizationSummary  `json:"summary"`
	Details []UtilizationDetail `json:"details"`
	Period  string              `json:"period"`
}

type DepartmentBreakdown struct {
	Department        string  `json:"department"`
	TotalEmployees    int     `json:"totalEmployees"`
	BillableEmployees int     `json:"billableEmployees"`
	BenchEmployees    int     `json:"benchEmployees"`
	AvgUtilization    float64 `json:"avgUtilization"`
	AvgHourlyRate     float64 `json:"avgHourlyRate"`
	UtilizationRate   int     `json:"utilizationRate"`
}

type SkillDistribution struct {
	Skill         string  `json:"skill"`
	EmployeeCount int     `json:"employeeCount"`
	Percentage    float64 `json:"percentage"`
}

type RecentActivity struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	EmployeeType string    `json:"employeeType"`
	ActivityType string    `json:"activityType"`
	Timestamp    time.Time `json:"timestamp"`
	Description  string    `json:"description"`
}

type LocationDistribution struct {
	Location        string  `json:"location"`
	EmployeeCount   int     `json:"employeeCount"`
	BillableCount   int     `json:"billableCount"`
	AvgUtilization  float64 `json:"avgUtilization"`
	UtilizationRate int     `json:"utilizationRate"`
}

type BillingOverview struct {
	BillingStatus    string  `json:"billingStatus"`
	EmployeeCount    int     `json:"employeeCount"`
	AvgHourlyRate    float64 `json:"avgHourlyRate"`
	TotalHourlyValue float64 `json:"totalHourlyValue"`
}

type EmployeeTypeDistribution struct {
	EmployeeType   string  `json:"employeeType"`
	EmployeeCount  int     `json:"employeeCount"`
	AvgUtilization float64 `json:"avgUtilization"`
	BillableCount  int     `json:"billableCount"`
	BillableRate   int     `json:"billableRate"`
}

type BenchEmployee struct {
	ID                string   `json:"id"`
	Role              string   `json:"role"`
	Department        string   `json:"department"`
	Location          string   `json:"location"`
	Skills            []string `json:"skills"`
	UtilizationTarget int      `json:"utilizationTarget"`
	DaysSinceStart    int      `json:"daysSinceStart"`
	BenchDuration     int      `json:"benchDuration"`
}

type BenchSummary struct {
	TotalBenchEmployees int `json:"totalBenchEmployees"`
	AvgBenchDuration    int `json:"avgBenchDuration"`
	LongTermBench       int `json:"longTermBench"`
	RecentBench         int `json:"recentBench"`
}

type BenchAnalysis struct {
	Summary   BenchSummary    `json:"summary"`
	Employees []BenchEmployee `json:"employees"`
}
