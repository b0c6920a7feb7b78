package report_test

import (
	"context"
	"strings"
	"testing"

	"opsdash/internal/analytics"
	"opsdash/internal/report"

	"github.com/stretchr/testify/assert"
)

// fakeAnalytics returns canned figures for report collection.
type fakeAnalytics struct {
	analytics.Service
}

func (fakeAnalytics) Overview(ctx context.Context) (analytics.Overview, error) {
	return analytics.Overview{
		TotalEmployees:    analytics.KPICount{Count: 12, Active: 12},
		FullTimeEmployees: analytics.KPICount{Count: 8},
		Consultants:       analytics.KPICount{Count: 2},
		BillableEmployees: analytics.KPICount{Count: 9},
		BenchEmployees:    analytics.KPICount{Count: 3},
		AvgUtilization:    analytics.AvgUtilizationKPI{Current: 77.5, Target: 80},
	}, nil
}

func (fakeAnalytics) DepartmentBreakdown(ctx context.Context) ([]analytics.DepartmentBreakdown, error) {
	return []analytics.DepartmentBreakdown{
		{
			Department:        "Engineering",
			TotalEmployees:    6,
			BillableEmployees: 5,
			UtilizationRate:   83,
			AvgHourlyRate:     92.5,
		},
	}, nil
}

func (fakeAnalytics) BenchAnalysis(ctx context.Context) (analytics.BenchAnalysis, error) {
	return analytics.BenchAnalysis{
		Summary: analytics.BenchSummary{
			TotalBenchEmployees: 3,
			AvgBenchDuration:    45,
			LongTermBench:       1,
			RecentBench:         1,
		},
		Employees: []analytics.BenchEmployee{
			{Role: "Consultant", Department: "Advisory", Location: "Remote", BenchDuration: 120},
		},
	}, nil
}

func (fakeAnalytics) UtilizationMetrics(ctx context.Context, period string) (analytics.UtilizationMetrics, error) {
	return analytics.UtilizationMetrics{
		Summary: analytics.UtilizationSummary{High: 4, Medium: 5, Low: 3, Total: 12},
		Period:  period + " days",
	}, nil
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()
	svc := report.NewService(fakeAnalytics{})

	t.Run("comprehensive pdf", func(t *testing.T) {
		doc, err := svc.Generate(ctx, report.TypeComprehensive, "pdf")

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", doc.ContentType)
		assert.True(t, strings.HasPrefix(doc.Filename, "comprehensive_report_"))
		assert.True(t, strings.HasSuffix(doc.Filename, ".pdf"))

		body := string(doc.Data)
		assert.True(t, strings.HasPrefix(body, "%PDF-1.4"))
		assert.True(t, strings.HasSuffix(body, "%%EOF"))
		assert.Contains(t, body, "Comprehensive Workforce Report")
		assert.Contains(t, body, "Total Employees: 12")
		assert.Contains(t, body, "Engineering")
	})

	t.Run("bench excel", func(t *testing.T) {
		doc, err := svc.Generate(ctx, report.TypeBench, "excel")

		assert.NoError(t, err)
		assert.Equal(t, "application/vnd.ms-excel", doc.ContentType)
		assert.True(t, strings.HasSuffix(doc.Filename, ".xls"))
		assert.Contains(t, string(doc.Data), "Bench Report")
		assert.Contains(t, string(doc.Data), "Consultant - Advisory (Remote)")
	})

	t.Run("default format is pdf", func(t *testing.T) {
		doc, err := svc.Generate(ctx, report.TypeUtilization, "")

		assert.NoError(t, err)
		assert.Equal(t, "application/pdf", doc.ContentType)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Generate(ctx, "payroll", "pdf")
		assert.ErrorIs(t, err, report.ErrUnknownReportType)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := svc.Generate(ctx, report.TypeBilling, "docx")
		assert.ErrorIs(t, err, report.ErrUnknownReportFormat)
	})
}

func TestPDFRenderer_EscapesDelimiters(t *testing.T) {
	data, err := report.PDFRenderer{}.Render("Title (v2)", []string{"50% (approx)"})

	assert.NoError(t, err)
	assert.Contains(t, string(data), `Title \(v2\)`)
	assert.Contains(t, string(data), `50% \(approx\)`)
}
