package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "opsdash/internal/employee/errors"
	"opsdash/internal/events"
	"opsdash/internal/messaging/kafka"
	"opsdash/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const FilterOptionsKeyPrefix = "employees:options:"

func GetFilterOptionsKey(field UniqueField) string {
	return FilterOptionsKeyPrefix + string(field)
}

var allUniqueFields = []UniqueField{
	UniqueDepartments, UniqueLocations, UniqueEmployeeTypes, UniqueBillingStatuses,
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, in Input) (EmployeeResponse, error)
	List(ctx context.Context, filter Filter, page, pageSize int) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string, limit int) ([]EmployeeResponse, error)
	FilterOptions(ctx context.Context, field UniqueField) ([]string, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, in Input) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("department", in.Department),
		zap.String("role", in.Role),
	)

	if fieldErrs := Validate(in); len(fieldErrs) > 0 {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Int("violations", len(fieldErrs)),
		)
		return EmployeeResponse{}, employeeerrors.ErrValidationFailed.WithDetails(fieldErrs)
	}

	empl := in.ToEntity()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, empl); err != nil {
			return err
		}

		if s.outbox == nil {
			return nil
		}

		event := events.EmployeeCreatedEvent{
			EventType:  events.EmployeeCreatedType,
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			Department: empl.Department,
			Role:       empl.Role,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateFilterOptions(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, filter Filter, page, pageSize int) ([]EmployeeResponse, int64, error) {
	empls, err := s.repo.List(ctx, filter, page, pageSize)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(empls), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	fields := req.columns()
	if len(fields) == 0 {
		s.logger.Warn("update employee with no recognized fields",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
		)
		return EmployeeResponse{}, employeeerrors.ErrNoFieldsToUpdate
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// The whole rule table runs against the record as it would look after
	// the update, so partial requests cannot sneak past the schema.
	if fieldErrs := Validate(req.merge(current.toInput())); len(fieldErrs) > 0 {
		s.logger.Warn("update employee validation failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Int("violations", len(fieldErrs)),
		)
		return EmployeeResponse{}, employeeerrors.ErrValidationFailed.WithDetails(fieldErrs)
	}

	empl, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Error("update employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateFilterOptions(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if !deleted {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.invalidateFilterOptions(ctx)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) Search(ctx context.Context, term string, limit int) ([]EmployeeResponse, error) {
	empls, err := s.repo.Search(ctx, term, limit)
	if err != nil {
		s.logger.Error("search employees failed", zap.String("term", term), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

// FilterOptions serves dropdown values from Redis, falling back to the store
// behind a singleflight gate so bursts hit the database once.
func (s *service) FilterOptions(ctx context.Context, field UniqueField) ([]string, error) {
	if field.column() == "" {
		return nil, employeeerrors.ErrInvalidFilterField
	}

	cacheKey := GetFilterOptionsKey(field)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var values []string
			if json.Unmarshal([]byte(cached), &values) == nil {
				return values, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		values, err := s.repo.UniqueValues(ctx, field)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		if values == nil {
			values = []string{}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(values); err == nil {
				s.rdb.Set(ctx, cacheKey, data, 1*time.Hour)
			}
		}
		return values, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

func (s *service) invalidateFilterOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	keys := make([]string, 0, len(allUniqueFields))
	for _, f := range allUniqueFields {
		keys = append(keys, GetFilterOptionsKey(f))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate filter options cache", zap.Error(err))
	}
}
