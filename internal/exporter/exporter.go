// Package exporter serializes employee record sets to CSV and JSON text for
// download endpoints.
package exporter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Record is the flat, storage-independent shape the exporter understands.
type Record struct {
	ID                string
	Department        string
	CostCenter        string
	Role              string
	EmployeeType      string
	Location          string
	BillingStatus     string
	HourlyRate        *float64
	UtilizationTarget int
	StartDate         string
	EndDate           string
	Skills            []string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

var csvHeaders = []string{
	"ID", "Department", "Cost Center", "Role", "Employee Type", "Location",
	"Billing Status", "Hourly Rate", "Utilization Target", "Start Date",
	"End Date", "Skills", "Status", "Created At", "Updated At",
}

// ToCSV renders the records as CSV text. An empty set yields an empty string.
func ToCSV(records []Record) string {
	if len(records) == 0 {
		return ""
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(csvHeaders)
	for _, r := range records {
		rate := ""
		if r.HourlyRate != nil {
			rate = strconv.FormatFloat(*r.HourlyRate, 'f', 2, 64)
		}
		_ = w.Write([]string{
			r.ID,
			r.Department,
			r.CostCenter,
			r.Role,
			r.EmployeeType,
			r.Location,
			r.BillingStatus,
			rate,
			strconv.Itoa(r.UtilizationTarget),
			r.StartDate,
			r.EndDate,
			strings.Join(r.Skills, "; "),
			r.Status,
			r.CreatedAt.Format(time.RFC3339),
			r.UpdatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()

	return buf.String()
}

type exportDocument struct {
	ExportDate   string           `json:"exportDate"`
	TotalRecords int              `json:"totalRecords"`
	Employees    []exportEmployee `json:"employees"`
}

type exportEmployee struct {
	ID                 string             `json:"id"`
	OrganizationalInfo organizationalInfo `json:"organizationalInfo"`
	Professional       professionalInfo   `json:"professionalDetails"`
	Additional         additionalInfo     `json:"additionalInfo"`
	Timestamps         timestamps         `json:"timestamps"`
}

type organizationalInfo struct {
	Department    string `json:"department"`
	CostCenter    string `json:"costCenter,omitempty"`
	Role          string `json:"role"`
	EmployeeType  string `json:"employeeType"`
	Location      string `json:"location"`
	BillingStatus string `json:"billingStatus"`
}

type professionalInfo struct {
	HourlyRate        *float64 `json:"hourlyRate,omitempty"`
	UtilizationTarget int      `json:"utilizationTarget"`
	StartDate         string   `json:"startDate"`
	EndDate           string   `json:"endDate,omitempty"`
}

type additionalInfo struct {
	Skills []string `json:"skills"`
	Status string   `json:"status"`
}

type timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToJSON renders the records as a grouped export document.
func ToJSON(records []Record) string {
	doc := exportDocument{
		ExportDate:   time.Now().UTC().Format(time.RFC3339),
		TotalRecords: len(records),
		Employees:    make([]exportEmployee, 0, len(records)),
	}

	for _, r := range records {
		skills := r.Skills
		if skills == nil {
			skills = []string{}
		}
		doc.Employees = append(doc.Employees, exportEmployee{
			ID: r.ID,
			OrganizationalInfo: organizationalInfo{
				Department:    r.Department,
				CostCenter:    r.CostCenter,
				Role:          r.Role,
				EmployeeType:  r.EmployeeType,
				Location:      r.Location,
				BillingStatus: r.BillingStatus,
			},
			Professional: professionalInfo{
				HourlyRate:        r.HourlyRate,
				UtilizationTarget: r.UtilizationTarget,
				StartDate:         r.StartDate,
				EndDate:           r.EndDate,
			},
			Additional: additionalInfo{Skills: skills, Status: r.Status},
			Timestamps: timestamps{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt},
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}

// Stats summarizes an export set for audit logging.
type Stats struct {
	TotalEmployees int      `json:"totalEmployees"`
	Departments    []string `json:"departments"`
	EmployeeTypes  []string `json:"employeeTypes"`
	Locations      []string `json:"locations"`
}

func GetStats(records []Record) Stats {
	stats := Stats{
		Departments:   []string{},
		EmployeeTypes: []string{},
		Locations:     []string{},
	}
	if len(records) == 0 {
		return stats
	}

	stats.TotalEmployees = len(records)
	stats.Departments = distinct(records, func(r Record) string { return r.Department })
	stats.EmployeeTypes = distinct(records, func(r Record) string { return r.EmployeeType })
	stats.Locations = distinct(records, func(r Record) string { return r.Location })
	return stats
}

func distinct(records []Record, key func(Record) string) []string {
	seen := map[string]struct{}{}
	values := []string{}
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}
