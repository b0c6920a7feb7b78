package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// Permission areas mirroring the user directory's permission lists.
const (
	PermDashboard = "dashboard"
	PermResources = "resources"
	PermReports   = "reports"
	PermEmployees = "employees"
	PermFinance   = "finance"
	PermAnalytics = "analytics"
	PermSettings  = "settings"
	PermUsers     = "users"
	PermProjects  = "projects"
	PermBilling   = "billing"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Grant(userID string, permissions []string) error
	Enforce(userID, permission string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

// Grant replaces the user's policy rows with the given permission list.
func (s *service) Grant(userID string, permissions []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.enforcer.RemoveFilteredPolicy(0, userID); err != nil {
		return err
	}
	for _, perm := range permissions {
		if _, err := s.enforcer.AddPolicy(userID, perm); err != nil {
			return err
		}
	}

	zap.L().Named("rbac").Debug("policies granted",
		zap.String("user_id", userID),
		zap.Int("permissions", len(permissions)),
	)
	return nil
}

func (s *service) Enforce(userID, permission string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(userID, permission)
}
