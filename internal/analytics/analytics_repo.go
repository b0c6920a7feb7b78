package analytics

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Row types mirror the aggregate projections; derived rates and
// classifications are computed in the service layer.

type OverviewRow struct {
	TotalEmployees    int64
	FullTimeEmployees int64
	Consultants       int64
	BillableEmployees int64
	BenchEmployees    int64
	AvgUtilization    float64
}

type DepartmentRow struct {
	Department     string
	EmployeeCount  int64
	BillableCount  int64
	BenchCount     int64
	AvgUtilization float64
	AvgHourlyRate  decimal.Decimal
}

type UtilizationRow struct {
	UtilizationTarget int
	EmployeeCount     int64
}

type SkillRow struct {
	Skill         string
	EmployeeCount int64
}

type ActivityRow struct {
	ID           string
	Role         string
	Department   string
	EmployeeType string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LocationRow struct {
	Location       string
	EmployeeCount  int64
	BillableCount  int64
	AvgUtilization float64
}

type BillingRow struct {
	BillingStatus    string
	EmployeeCount    int64
	AvgHourlyRate    decimal.Decimal
	TotalHourlyValue decimal.Decimal
}

type TypeRow struct {
	EmployeeType   string
	EmployeeCount  int64
	BillableCount  int64
	AvgUtilization float64
}

type BenchRow struct {
	ID                string
	Role              string
	Department        string
	Location          string
	Skills            pq.StringArray `gorm:"type:text[]"`
	UtilizationTarget int
	StartDate         time.Time
}

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	Overview(ctx context.Context) (OverviewRow, error)
	DepartmentStats(ctx context.Context) ([]DepartmentRow, error)
	UtilizationStats(ctx context.Context) ([]UtilizationRow, error)
	SkillStats(ctx context.Context, limit int) ([]SkillRow, error)
	ActiveCount(ctx context.Context) (int64, error)
	RecentActivityStats(ctx context.Context, limit int) ([]ActivityRow, error)
	LocationStats(ctx context.Context) ([]LocationRow, error)
	BillingStats(ctx context.Context) ([]BillingRow, error)
	TypeStats(ctx context.Context) ([]TypeRow, error)
	BenchStats(ctx context.Context) ([]BenchRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Overview(ctx context.Context) (OverviewRow, error) {
	var row OverviewRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	COUNT(*) AS total_employees,
	COUNT(*) FILTER (WHERE employee_type = 'Full-time') AS full_time_employees,
	COUNT(*) FILTER (WHERE employee_type = 'Contract') AS consultants,
	COUNT(*) FILTER (WHERE billing_status = 'Billable') AS billable_employees,
	COUNT(*) FILTER (WHERE billing_status = 'Non-billable') AS bench_employees,
	COALESCE(ROUND(AVG(CASE WHEN utilization_target > 0 THEN utilization_target END), 1), 0) AS avg_utilization
FROM employees
WHERE status = 'active'
`).Scan(&row).Error

	return row, err
}

func (r *repository) DepartmentStats(ctx context.Context) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	department,
	COUNT(*) AS employee_count,
	COUNT(*) FILTER (WHERE billing_status = 'Billable') AS billable_count,
	COUNT(*) FILTER (WHERE billing_status = 'Non-billable') AS bench_count,
	COALESCE(ROUND(AVG(utilization_target), 1), 0) AS avg_utilization,
	COALESCE(ROUND(AVG(hourly_rate), 2), 0) AS avg_hourly_rate
FROM employees
WHERE status = 'active'
GROUP BY department
ORDER BY employee_count DESC
`).Scan(&rows).Error

	return rows, err
}

func (r *repository) UtilizationStats(ctx context.Context) ([]UtilizationRow, error) {
	var rows []UtilizationRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	utilization_target,
	COUNT(*) AS employee_count
FROM employees
WHERE status = 'active' AND utilization_target > 0
GROUP BY utilization_target
ORDER BY utilization_target DESC
`).Scan(&rows).Error

	return rows, err
}

func (r *repository) SkillStats(ctx context.Context, limit int) ([]SkillRow, error) {
	var rows []SkillRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	skill,
	COUNT(*) AS employee_count
FROM employees, unnest(skills) AS skill
WHERE status = 'active'
GROUP BY skill
ORDER BY employee_count DESC, skill ASC
LIMIT ?
`, limit).Scan(&rows).Error

	return rows, err
}

func (r *repository) ActiveCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
SELECT COUNT(*) FROM employees WHERE status = 'active'
`).Scan(&count).Error

	return count, err
}

func (r *repository) RecentActivityStats(ctx context.Context, limit int) ([]ActivityRow, error) {
	var rows []ActivityRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	id::text,
	role,
	department,
	employee_type,
	created_at,
	updated_at
FROM employees
WHERE status = 'active'
ORDER BY GREATEST(created_at, updated_at) DESC
LIMIT ?
`, limit).Scan(&rows).Error

	return rows, err
}

func (r *repository) LocationStats(ctx context.Context) ([]LocationRow, error) {
	var rows []LocationRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	location,
	COUNT(*) AS employee_count,
	COUNT(*) FILTER (WHERE billing_status = 'Billable') AS billable_count,
	COALESCE(ROUND(AVG(utilization_target), 1), 0) AS avg_utilization
FROM employees
WHERE status = 'active'
GROUP BY location
ORDER BY employee_count DESC
`).Scan(&rows).Error

	return rows, err
}

func (r *repository) BillingStats(ctx context.Context) ([]BillingRow, error) {
	var rows []BillingRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	billing_status,
	COUNT(*) AS employee_count,
	COALESCE(ROUND(AVG(hourly_rate), 2), 0) AS avg_hourly_rate,
	COALESCE(ROUND(SUM(hourly_rate), 2), 0) AS total_hourly_value
FROM employees
WHERE status = 'active' AND hourly_rate > 0
GROUP BY billing_status
ORDER BY employee_count DESC
`).Scan(&rows).Error

	return rows, err
}

func (r *repository) TypeStats(ctx context.Context) ([]TypeRow, error) {
	var rows []TypeRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	employee_type,
	COUNT(*) AS employee_count,
	COUNT(*) FILTER (WHERE billing_status = 'Billable') AS billable_count,
	COALESCE(ROUND(AVG(utilization_target), 1), 0) AS avg_utilization
FROM employees
WHERE status = 'active'
GROUP BY employee_type
ORDER BY employee_count DESC
`).Scan(&rows).Error

	return rows, err
}

func (r *repository) BenchStats(ctx context.Context) ([]BenchRow, error) {
	var rows []BenchRow
	err := r.db.WithContext(ctx).Raw(`
SELECT
	id::text,
	role,
	department,
	location,
	skills,
	utilization_target,
	start_date
FROM employees
WHERE status = 'active' AND billing_status = 'Non-billable'
ORDER BY start_date ASC
`).Scan(&rows).Error

	return rows, err
}
