package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"opsdash/internal/analytics"
	"opsdash/internal/shared/apperror"

	"go.uber.org/zap"
)

const (
	TypeComprehensive = "comprehensive"
	TypeUtilization   = "utilization"
	TypeDepartment    = "department"
	TypeBench         = "bench"
	TypeSkills        = "skills"
	TypeBilling       = "billing"
)

var ErrUnknownReportType = apperror.New(
	apperror.CodeInvalidInput,
	"Unknown report type",
	http.StatusBadRequest,
)

var ErrUnknownReportFormat = apperror.New(
	apperror.CodeInvalidInput,
	"Unknown report format. Use pdf or excel",
	http.StatusBadRequest,
)

// Document is a rendered report ready to stream as an attachment.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service interface {
	Generate(ctx context.Context, reportType, format string) (Document, error)
}

type service struct {
	analytics analytics.Service
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(analyticsSvc analytics.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{analytics: analyticsSvc, logger: l, now: time.Now}
}

func (s *service) Generate(ctx context.Context, reportType, format string) (Document, error) {
	var renderer Renderer
	switch format {
	case "pdf", "":
		renderer = PDFRenderer{}
	case "excel":
		renderer = ExcelRenderer{}
	default:
		return Document{}, ErrUnknownReportFormat
	}

	title, lines, err := s.collect(ctx, reportType)
	if err != nil {
		return Document{}, err
	}

	data, err := renderer.Render(title, lines)
	if err != nil {
		s.logger.Error("render report failed",
			zap.String("type", reportType),
			zap.String("format", format),
			zap.Error(err),
		)
		return Document{}, apperror.Wrap(err, apperror.CodeInternalError,
			"Report rendering failed", http.StatusInternalServerError)
	}

	s.logger.Info("report generated",
		zap.String("type", reportType),
		zap.String("format", format),
		zap.Int("bytes", len(data)),
	)

	return Document{
		Filename:    fmt.Sprintf("%s_report_%s.%s", reportType, s.now().Format("2006-01-02"), renderer.Ext()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

func (s *service) collect(ctx context.Context, reportType string) (string, []string, error) {
	switch reportType {
	case TypeComprehensive:
		return s.comprehensive(ctx)
	case TypeUtilization:
		return s.utilization(ctx)
	case TypeDepartment:
		return s.department(ctx)
	case TypeBench:
		return s.bench(ctx)
	case TypeSkills:
		return s.skills(ctx)
	case TypeBilling:
		return s.billing(ctx)
	default:
		return "", nil, ErrUnknownReportType
	}
}

func (s *service) comprehensive(ctx context.Context) (string, []string, error) {
	overview, err := s.analytics.Overview(ctx)
	if err != nil {
		return "", nil, err
	}

	lines := []string{
		fmt.Sprintf("Total Employees: %d", overview.TotalEmployees.Count),
		fmt.Sprintf("Full-time Employees: %d", overview.FullTimeEmployees.Count),
		fmt.Sprintf("Consultants: %d", overview.Consultants.Count),
		fmt.Sprintf("Billable Employees: %d", overview.BillableEmployees.Count),
		fmt.Sprintf("Bench Employees: %d", overview.BenchEmployees.Count),
		fmt.Sprintf("Average Utilization: %.1f%%", overview.AvgUtilization.Current),
	}

	if deptTitle, deptLines, err := s.department(ctx); err == nil {
		lines = append(lines, "", deptTitle)
		lines = append(lines, deptLines...)
	}

	return "Comprehensive Workforce Report", lines, nil
}

func (s *service) utilization(ctx context.Context) (string, []string, error) {
	metrics, err := s.analytics.UtilizationMetrics(ctx, "30")
	if err != nil {
		return "", nil, err
	}

	lines := []string{
		fmt.Sprintf("High Utilization (>=80%%): %d", metrics.Summary.High),
		fmt.Sprintf("Medium Utilization (60-79%%): %d", metrics.Summary.Medium),
		fmt.Sprintf("Low Utilization (<60%%): %d", metrics.Summary.Low),
		fmt.Sprintf("Total Employees: %d", metrics.Summary.Total),
	}
	return "Utilization Report", lines, nil
}

func (s *service) department(ctx context.Context) (string, []string, error) {
	breakdown, err := s.analytics.DepartmentBreakdown(ctx)
	if err != nil {
		return "", nil, err
	}

	lines := make([]string, 0, len(breakdown))
	for _, d := range breakdown {
		lines = append(lines, fmt.Sprintf(
			"%s: %d employees, %d billable, %d%% utilization rate, $%.2f avg rate",
			d.Department, d.TotalEmployees, d.BillableEmployees, d.UtilizationRate, d.AvgHourlyRate,
		))
	}
	return "Department Report", lines, nil
}

func (s *service) bench(ctx context.Context) (string, []string, error) {
	analysis, err := s.analytics.BenchAnalysis(ctx)
	if err != nil {
		return "", nil, err
	}

	lines := []string{
		fmt.Sprintf("Total Bench Employees: %d", analysis.Summary.TotalBenchEmployees),
		fmt.Sprintf("Average Bench Duration: %d days", analysis.Summary.AvgBenchDuration),
		fmt.Sprintf("Long-term Bench (>90 days): %d", analysis.Summary.LongTermBench),
		fmt.Sprintf("Recent Bench (<=30 days): %d", analysis.Summary.RecentBench),
		"",
	}
	for _, e := range analysis.Employees {
		lines = append(lines, fmt.Sprintf(
			"%s - %s (%s): %d days on bench", e.Role, e.Department, e.Location, e.BenchDuration,
		))
	}
	return "Bench Report", lines, nil
}

func (s *service) skills(ctx context.Context) (string, []string, error) {
	skills, err := s.analytics.SkillsDistribution(ctx, 50)
	if err != nil {
		return "", nil, err
	}

	lines := make([]string, 0, len(skills))
	for _, sk := range skills {
		lines = append(lines, fmt.Sprintf("%s: %d employees (%.1f%%)", sk.Skill, sk.EmployeeCount, sk.Percentage))
	}
	return "Skills Report", lines, nil
}

func (s *service) billing(ctx context.Context) (string, []string, error) {
	billing, err := s.analytics.BillingOverview(ctx)
	if err != nil {
		return "", nil, err
	}

	lines := make([]string, 0, len(billing))
	for _, b := range billing {
		lines = append(lines, fmt.Sprintf(
			"%s: %d employees, $%.2f avg rate, $%.2f total hourly value",
			b.BillingStatus, b.EmployeeCount, b.AvgHourlyRate, b.TotalHourlyValue,
		))
	}
	return "Billing Report", lines, nil
}
