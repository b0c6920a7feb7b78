package analytics

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"opsdash/internal/shared/apperror"

	"go.uber.org/zap"
)

const (
	utilizationHighFloor   = 80
	utilizationMediumFloor = 60

	longTermBenchDays = 90
	recentBenchDays   = 30
)

type Service interface {
	Overview(ctx context.Context) (Overview, error)
	DepartmentAnalytics(ctx context.Context) ([]DepartmentAnalytics, error)
	UtilizationMetrics(ctx context.Context, period string) (UtilizationMetrics, error)
	DepartmentBreakdown(ctx context.Context) ([]DepartmentBreakdown, error)
	SkillsDistribution(ctx context.Context, limit int) ([]SkillDistribution, error)
	RecentActivities(ctx context.Context, limit int) ([]RecentActivity, error)
	LocationDistribution(ctx context.Context) ([]LocationDistribution, error)
	BillingOverview(ctx context.Context) ([]BillingOverview, error)
	EmployeeTypeDistribution(ctx context.Context) ([]EmployeeTypeDistribution, error)
	BenchAnalysis(ctx context.Context) (BenchAnalysis, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, loggers ...*zap.Logger) Service {
	return NewServiceWithClock(repo, time.Now, loggers...)
}

// NewServiceWithClock injects the clock used for bench duration math.
func NewServiceWithClock(repo Repository, now func() time.Time, loggers ...*zap.Logger) Service {
	logger := zap.L()
	if len(loggers) > 0 && loggers[0] != nil {
		logger = loggers[0]
	}

	return &service{
		repo:   repo,
		logger: logger.Named("analytics.service"),
		now:    now,
	}
}

func (s *service) Overview(ctx context.Context) (Overview, error) {
	row, err := s.repo.Overview(ctx)
	if err != nil {
		s.logger.Error("overview query failed", zap.Error(err))
		return Overview{}, storageError(err)
	}

	return Overview{
		TotalEmployees: KPICount{
			Count:       int(row.TotalEmployees),
			Active:      int(row.TotalEmployees),
			Description: "Active workforce",
		},
		FullTimeEmployees: KPICount{
			Count:       int(row.FullTimeEmployees),
			Description: "Full-time staff",
		},
		Consultants: KPICount{
			Count:       int(row.Consultants),
			Description: "Contract workers",
		},
		BillableEmployees: KPICount{
			Count:       int(row.BillableEmployees),
			Description: "Revenue generating",
		},
		BenchEmployees: KPICount{
			Count:       int(row.BenchEmployees),
			Description: "Available for projects",
		},
		AvgUtilization: AvgUtilizationKPI{
			Current:     row.AvgUtilization,
			Target:      80,
			Description: "Target utilization",
		},
	}, nil
}

func (s *service) DepartmentAnalytics(ctx context.Context) ([]DepartmentAnalytics, error) {
	rows, err := s.repo.DepartmentStats(ctx)
	if err != nil {
		s.logger.Error("department stats query failed", zap.Error(err))
		return nil, storageError(err)
	}

	out := make([]DepartmentAnalytics, 0, len(rows))
	for _, row := range rows {
		out = append(out, DepartmentAnalytics{
			Department:     row.Department,
			EmployeeCount:  int(row.EmployeeCount),
			BillableCount:  int(row.BillableCount),
			AvgUtilization: row.AvgUtilization,
			AvgHourlyRate:  row.AvgHourlyRate.InexactFloat64(),
		})
	}

	return out, nil
}

func (s *service) UtilizationMetrics(ctx context.Context, period string) (UtilizationMetrics, error) {
	rows, err := s.repo.UtilizationStats(ctx)
	if err != nil {
		s.logger.Error("utilization stats query failed", zap.Error(err))
		return UtilizationMetrics{}, storageError(err)
	}

	metrics := UtilizationMetrics{
		Details: make([]UtilizationDetail, 0, len(rows)),
		Period:  fmt.Sprintf("%s days", period),
	}

	for _, row := range rows {
		category := utilizationCategory(row.UtilizationTarget)
		count := int(row.EmployeeCount)

		switch category {
		case "High":
			metrics.Summary.High += count
		case "Medium":
			metrics.Summary.Medium += count
		default:
			metrics.Summary.Low += count
		}
		metrics.Summary.Total += count

		metrics.Details = append(metrics.Details, UtilizationDetail{
			Utilization:   row.UtilizationTarget,
			EmployeeCount: count,
			Category:      category,
		})
	}

	return metrics, nil
}

func (s *service) DepartmentBreakdown(ctx context.Context) ([]DepartmentBreakdown, error) {
	rows, err := s.repo.DepartmentStats(ctx)
	if err != nil {
		s.logger.Error("department stats query failed", zap.Error(err))
		return nil, storageError(err)
	}

	out := make([]DepartmentBreakdown, 0, len(rows))
	for _, row := range rows {
		out = append(out, DepartmentBreakdown{
			Department:        row.Department,
			TotalEmployees:    int(row.EmployeeCount),
			BillableEmployees: int(row.BillableCount),
			BenchEmployees:    int(row.BenchCount),
			AvgUtilization:    row.AvgUtilization,
			AvgHourlyRate:     row.AvgHourlyRate.InexactFloat64(),
			UtilizationRate:   percentOf(row.BillableCount, row.EmployeeCount),
		})
	}

	return out, nil
}

func (s *service) SkillsDistribution(ctx context.Context, limit int) ([]SkillDistribution, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.repo.SkillStats(ctx, limit)
	if err != nil {
		s.logger.Error("skill stats query failed", zap.Error(err))
		return nil, storageError(err)
	}

	total, err := s.repo.ActiveCount(ctx)
	if err != nil {
		s.logger.Error("active count query failed", zap.Error(err))
		return nil, storageError(err)
	}

	out := make([]SkillDistribution, 0, len(rows))
	for _, row := range rows {
		var pct float64
		if total > 0 {
			pct = round1(float64(row.EmployeeCount) / float64(total) * 100)
		}
		out = append(out, SkillDistribution{
			Skill:         row.Skill,
			EmployeeCount: int(row.EmployeeCount),
			Percentage:    pct,
		})
	}

	return out, nil
}

func (s *service) RecentActivities(ctx context.Context, limit int) ([]RecentActivity, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.repo.RecentActivityStats(ctx, limit)
	if err != nil {
		s.logger.Error("recent activity query failed", zap.Error(err))
		return nil, storageError(err)
	}

	out := make([]RecentActivity, 0, len(rows))
	for _, row := range rows {
		activity := RecentActivity{
			ID:           row.ID,
			Role:         row.Role,
			Department:   row.Department,
			EmployeeType: row.EmployeeType,
		}

		if row.UpdatedAt.After(row.CreatedAt) {
			activity.ActivityType = "updated"
			activity.Timestamp = row.UpdatedAt
			activity.Description = fmt.Sprintf("%s in %s updated", row.Role, row.Department)
		} else {
			activity.ActivityType = "created"
			activity.Timestamp = row.CreatedAt
			activity.Description = fmt.Sprintf("New %s added to %s", row.Role, row.Department)
		}

		out = append(out, activity)
	}

	return out, nil
}

func (s *service) LocationDistribution(ctx context.Context) ([]LocationDistribution, error) {
	rows, err := s.repo.LocationStats(ctx)
	if err != nil {
		s.logger.Error("location stats query failed", zap.Error(err))
		return nil, storageError(err)
	}

	out := make([]LocationDistribution, 0, len(rows))
	for _, row := range rows {
		out = append(out, LocationDistribution{
			Location:        row.Location,
			EmployeeCount:   int(row.EmployeeCount),
			BillableCount:   int(row.BillableCount),
			AvgUtilization:  row.AvgUtilization,
			UtilizationRate: percentOf(row.BillableCount, row.EmployeeCount),
		})
	}

	return out, nil
}

func (s *service) BillingOverview(ctx context.Context) ([]BillingOverview, error) {
	rows, err := s.repo.BillingStats(ctx)
	if err != nil {
		s.logger.Error("billing stats query failed", zap.Error(err))
		return nil, storageError(err)
	}

	out := make([]BillingOverview, 0, len(rows))
	for _, row := range rows {
		out = append(out, BillingOverview{
			BillingStatus:    row.BillingStatus,
			EmployeeCount:    int(row.EmployeeCount),
			AvgHourlyRate:    row.AvgHourlyRate.InexactFloat64(),
			TotalHourlyValue: row.TotalHourlyValue.InexactFloat64(),
		})
	}

	return out, nil
}

func (s *service) EmployeeTypeDistribution(ctx context.Context) ([]EmployeeTypeDistribution, error) {
	rows, err := s.repo.TypeStats(ctx)
	if err != nil {
		s.logger.Error("type stats query failed", zap.Error(err))
		return nil, storageError(err)
	}

	out := make([]EmployeeTypeDistribution, 0, len(rows))
	for _, row := range rows {
		out = append(out, EmployeeTypeDistribution{
			EmployeeType:   row.EmployeeType,
			EmployeeCount:  int(row.EmployeeCount),
			AvgUtilization: row.AvgUtilization,
			BillableCount:  int(row.BillableCount),
			BillableRate:   percentOf(row.BillableCount, row.EmployeeCount),
		})
	}

	return out, nil
}

func (s *service) BenchAnalysis(ctx context.Context) (BenchAnalysis, error) {
	rows, err := s.repo.BenchStats(ctx)
	if err != nil {
		s.logger.Error("bench stats query failed", zap.Error(err))
		return BenchAnalysis{}, storageError(err)
	}

	analysis := BenchAnalysis{
		Employees: make([]BenchEmployee, 0, len(rows)),
	}

	now := s.now()
	var totalDays int
	for _, row := range rows {
		days := daysBetween(row.StartDate, now)

		analysis.Employees = append(analysis.Employees, BenchEmployee{
			ID:                row.ID,
			Role:              row.Role,
			Department:        row.Department,
			Location:          row.Location,
			Skills:            row.Skills,
			UtilizationTarget: row.UtilizationTarget,
			DaysSinceStart:    days,
			BenchDuration:     days,
		})

		totalDays += days
		if days > longTermBenchDays {
			analysis.Summary.LongTermBench++
		}
		if days <= recentBenchDays {
			analysis.Summary.RecentBench++
		}
	}

	analysis.Summary.TotalBenchEmployees = len(rows)
	if len(rows) > 0 {
		analysis.Summary.AvgBenchDuration = int(math.Round(float64(totalDays) / float64(len(rows))))
	}

	return analysis, nil
}

func storageError(err error) error {
	return apperror.Wrap(err, apperror.CodeStorageError,
		"Analytics query failed", http.StatusInternalServerError)
}

func utilizationCategory(target int) string {
	switch {
	case target >= utilizationHighFloor:
		return "High"
	case target >= utilizationMediumFloor:
		return "Medium"
	default:
		return "Low"
	}
}

func percentOf(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// daysBetween counts whole calendar days from start to now.
func daysBetween(start, now time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(nowDay.Sub(startDay).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
