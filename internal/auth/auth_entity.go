package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email       string         `gorm:"size:255;uniqueIndex;not null"`
	Password    string         `gorm:"size:255;not null"`
	Name        string         `gorm:"size:255;not null"`
	Role        string         `gorm:"size:100;not null"`
	Permissions pq.StringArray `gorm:"type:text[]"`
	Status      string         `gorm:"size:20;default:active"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}
