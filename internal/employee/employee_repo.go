package employee

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Filter enumerates every allowed list/count filter. Substring fields match
// case-insensitively; Skill is an exact membership test against the skills
// array. Field names never reach SQL from caller input.
type Filter struct {
	Department    string
	Role          string
	Location      string
	CostCenter    string
	EmployeeType  string
	BillingStatus string
	Skill         string
}

// UniqueField enumerates the columns uniqueValues may read.
type UniqueField string

const (
	UniqueDepartments     UniqueField = "departments"
	UniqueLocations       UniqueField = "locations"
	UniqueEmployeeTypes   UniqueField = "employeeTypes"
	UniqueBillingStatuses UniqueField = "billingStatuses"
)

func (f UniqueField) column() string {
	switch f {
	case UniqueDepartments:
		return "department"
	case UniqueLocations:
		return "location"
	case UniqueEmployeeTypes:
		return "employee_type"
	case UniqueBillingStatuses:
		return "billing_status"
	}
	return ""
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	List(ctx context.Context, filter Filter, page, pageSize int) ([]Employee, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Employee, error)
	SoftDelete(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, term string, limit int) ([]Employee, error)
	UniqueValues(ctx context.Context, field UniqueField) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func activeScope(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", StatusActive)
}

func applyFilter(db *gorm.DB, f Filter) *gorm.DB {
	like := func(column, v string) {
		if v != "" {
			db = db.Where("LOWER("+column+") LIKE LOWER(?)", "%"+v+"%")
		}
	}
	like("department", f.Department)
	like("role", f.Role)
	like("location", f.Location)
	like("cost_center", f.CostCenter)
	like("employee_type", f.EmployeeType)
	like("billing_status", f.BillingStatus)
	if f.Skill != "" {
		db = db.Where("? = ANY(skills)", f.Skill)
	}
	return db
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) List(ctx context.Context, filter Filter, page, pageSize int) ([]Employee, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	var empls []Employee
	db := applyFilter(r.db.WithContext(ctx).Scopes(activeScope), filter)
	err := db.
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&empls).Error
	return empls, err
}

func (r *repository) Count(ctx context.Context, filter Filter) (int64, error) {
	var count int64
	db := applyFilter(r.db.WithContext(ctx).Model(&Employee{}).Scopes(activeScope), filter)
	err := db.Count(&count).Error
	return count, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(activeScope).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// Update applies the already-whitelisted column set and returns the fresh
// record. A zero rows-affected result means the record is absent or deleted.
func (r *repository) Update(ctx context.Context, id string, fields map[string]any) (*Employee, error) {
	fields["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND status = ?", id, StatusActive).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *repository) SoftDelete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND status = ?", id, StatusActive).
		Updates(map[string]any{"status": StatusDeleted, "updated_at": time.Now()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) Search(ctx context.Context, term string, limit int) ([]Employee, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + term + "%"

	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(activeScope).
		Where(`LOWER(role) LIKE LOWER(@p)
			OR LOWER(department) LIKE LOWER(@p)
			OR LOWER(location) LIKE LOWER(@p)
			OR EXISTS (
				SELECT 1 FROM unnest(skills) AS skill
				WHERE LOWER(skill) LIKE LOWER(@p)
			)`, map[string]any{"p": pattern}).
		Order("created_at DESC").
		Limit(limit).
		Find(&empls).Error
	return empls, err
}

func (r *repository) UniqueValues(ctx context.Context, field UniqueField) ([]string, error) {
	column := field.column()
	if column == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var values []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Distinct(column).
		Scopes(activeScope).
		Where(column + " IS NOT NULL").
		Order(column + " ASC").
		Pluck(column, &values).Error
	return values, err
}
