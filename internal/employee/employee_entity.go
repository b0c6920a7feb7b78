package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Employee type and billing status enums, shared with the validation rules.
var (
	EmployeeTypes   = []string{"Full-time", "Part-time", "Contract", "Intern"}
	BillingStatuses = []string{"Billable", "Non-billable", "Overhead"}
)

const DefaultUtilizationTarget = 80

type Employee struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Department        string           `gorm:"size:100;not null"`
	CostCenter        string           `gorm:"size:50"`
	Role              string           `gorm:"size:100;not null"`
	EmployeeType      string           `gorm:"size:20;not null"`
	Location          string           `gorm:"size:100;not null"`
	BillingStatus     string           `gorm:"size:20;not null"`
	HourlyRate        *decimal.Decimal `gorm:"type:numeric(10,2)"`
	UtilizationTarget int              `gorm:"not null;default:80"`
	StartDate         time.Time        `gorm:"type:date;not null"`
	EndDate           *time.Time       `gorm:"type:date"`
	Skills            pq.StringArray   `gorm:"type:text[]"`
	Status            string           `gorm:"size:10;not null;default:active"`
	CreatedAt         time.Time        `gorm:"autoCreateTime"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime"`
}
