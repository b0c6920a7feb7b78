package exporter_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"opsdash/internal/exporter"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []exporter.Record {
	rate := 85.5
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return []exporter.Record{
		{
			ID:                "e1",
			Department:        "Engineering",
			CostCenter:        "CC-001",
			Role:              "Software Engineer",
			EmployeeType:      "Full-time",
			Location:          "New York",
			BillingStatus:     "Billable",
			HourlyRate:        &rate,
			UtilizationTarget: 80,
			StartDate:         "2024-01-15",
			Skills:            []string{"Go", "PostgreSQL"},
			Status:            "active",
			CreatedAt:         created,
			UpdatedAt:         created,
		},
		{
			ID:            "e2",
			Department:    "Design",
			Role:          "Designer",
			EmployeeType:  "Contract",
			Location:      "Remote",
			BillingStatus: "Non-billable",
			StartDate:     "2024-03-01",
			Status:        "active",
			CreatedAt:     created,
			UpdatedAt:     created,
		},
	}
}

func TestToCSV(t *testing.T) {
	t.Run("round trips through a csv reader", func(t *testing.T) {
		out := exporter.ToCSV(sampleRecords())

		rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, rows, 3)

		assert.Equal(t, "ID", rows[0][0])
		assert.Equal(t, "Cost Center", rows[0][2])

		assert.Equal(t, "e1", rows[1][0])
		assert.Equal(t, "85.50", rows[1][7])
		assert.Equal(t, "Go; PostgreSQL", rows[1][11])

		// Missing optionals render as empty cells.
		assert.Equal(t, "", rows[2][7])
		assert.Equal(t, "", rows[2][11])
	})

	t.Run("empty set yields empty string", func(t *testing.T) {
		assert.Equal(t, "", exporter.ToCSV(nil))
	})
}

func TestToJSON(t *testing.T) {
	out := exporter.ToJSON(sampleRecords())

	var doc map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, string(doc["totalRecords"]), "2")

	var employees []map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(doc["employees"], &employees))
	assert.Len(t, employees, 2)
	assert.Contains(t, string(employees[0]["organizationalInfo"]), `"Engineering"`)
	assert.Contains(t, string(employees[0]["professionalDetails"]), `"utilizationTarget": 80`)

	// nil skills serialize as an empty array, not null.
	assert.Contains(t, string(employees[1]["additionalInfo"]), `"skills": []`)
}

func TestGetStats(t *testing.T) {
	stats := exporter.GetStats(sampleRecords())

	assert.Equal(t, 2, stats.TotalEmployees)
	assert.Equal(t, []string{"Design", "Engineering"}, stats.Departments)
	assert.Equal(t, []string{"Contract", "Full-time"}, stats.EmployeeTypes)
	assert.Equal(t, []string{"New York", "Remote"}, stats.Locations)

	empty := exporter.GetStats(nil)
	assert.Equal(t, 0, empty.TotalEmployees)
	assert.Empty(t, empty.Departments)
}
