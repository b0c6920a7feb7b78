package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"opsdash/internal/employee"
	employeeerrors "opsdash/internal/employee/errors"
	employeeMock "opsdash/internal/employee/mock"
	"opsdash/internal/events"
	"opsdash/internal/messaging/kafka"
	kafkaMock "opsdash/internal/messaging/kafka/mock"
	"opsdash/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(gormDB, repo, outbox, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outbox,
		redisMock: redisMock,
	}
}

func allOptionKeys() []string {
	return []string{
		employee.FilterOptionsKeyPrefix + "departments",
		employee.FilterOptionsKeyPrefix + "locations",
		employee.FilterOptionsKeyPrefix + "employeeTypes",
		employee.FilterOptionsKeyPrefix + "billingStatuses",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success writes employee and outbox event in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeCreatedTopic, event.Topic)
				assert.Equal(t, "employee", event.AggregateType)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)

				var payload events.EmployeeCreatedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, "Engineering", payload.Department)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(allOptionKeys()...).SetVal(4)

		resp, err := deps.service.Create(ctx, validInput())

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Department)
		assert.Equal(t, "active", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation failure carries field details", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		in := validInput()
		in.EmployeeType = "Freelance"

		_, err := deps.service.Create(ctx, in)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)
		assert.NotEmpty(t, appErr.Details)
	})

	t.Run("repository failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, validInput())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("no recognized fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, "some-id", employee.UpdateEmployeeRequest{})

		assert.ErrorIs(t, err, employeeerrors.ErrNoFieldsToUpdate)
	})

	t.Run("not found maps to employee error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := "Design"
		deps.repo.EXPECT().FindByID(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, "missing", employee.UpdateEmployeeRequest{Department: &dept})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("rejects partial updates that break the schema", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		target := 500
		empType := "Wizard"
		deps.repo.EXPECT().FindByID(ctx, "emp-1").Return(validInput().ToEntity(), nil)

		_, err := deps.service.Update(ctx, "emp-1", employee.UpdateEmployeeRequest{
			UtilizationTarget: &target,
			EmployeeType:      &empType,
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)

		details, ok := appErr.Details.([]employee.FieldError)
		assert.True(t, ok)
		fields := make([]string, 0, len(details))
		for _, d := range details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "utilizationTarget")
		assert.Contains(t, fields, "employeeType")
	})

	t.Run("cross-field dates validate against the stored record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		// Stored start date is 2024-01-15; an earlier end date must fail
		// even though the request itself never mentions startDate.
		end := "2024-01-01"
		deps.repo.EXPECT().FindByID(ctx, "emp-1").Return(validInput().ToEntity(), nil)

		_, err := deps.service.Update(ctx, "emp-1", employee.UpdateEmployeeRequest{EndDate: &end})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidationFailed, appErr.Code)
	})

	t.Run("valid partial update is applied", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		dept := "Platform"
		updated := validInput().ToEntity()
		updated.Department = dept

		deps.repo.EXPECT().FindByID(ctx, "emp-1").Return(validInput().ToEntity(), nil)
		deps.repo.EXPECT().Update(ctx, "emp-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, fields map[string]any) (*employee.Employee, error) {
				assert.Equal(t, dept, fields["department"])
				return updated, nil
			})
		deps.redisMock.ExpectDel(allOptionKeys()...).SetVal(4)

		resp, err := deps.service.Update(ctx, "emp-1", employee.UpdateEmployeeRequest{Department: &dept})

		assert.NoError(t, err)
		assert.Equal(t, dept, resp.Department)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("soft delete hit invalidates options cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().SoftDelete(ctx, "emp-1").Return(true, nil)
		deps.redisMock.ExpectDel(allOptionKeys()...).SetVal(4)

		assert.NoError(t, deps.service.Delete(ctx, "emp-1"))
	})

	t.Run("already deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().SoftDelete(ctx, "emp-1").Return(false, nil)

		err := deps.service.Delete(ctx, "emp-1")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_FilterOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		key := employee.GetFilterOptionsKey(employee.UniqueDepartments)
		deps.redisMock.ExpectGet(key).SetVal(`["Engineering","HR"]`)

		values, err := deps.service.FilterOptions(ctx, employee.UniqueDepartments)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Engineering", "HR"}, values)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss reads store and backfills", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		key := employee.GetFilterOptionsKey(employee.UniqueLocations)
		deps.redisMock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().UniqueValues(gomock.Any(), employee.UniqueLocations).
			Return([]string{"New York", "Remote"}, nil)
		deps.redisMock.Regexp().ExpectSet(key, `.*`, time.Hour).SetVal("OK")

		values, err := deps.service.FilterOptions(ctx, employee.UniqueLocations)

		assert.NoError(t, err)
		assert.Equal(t, []string{"New York", "Remote"}, values)
	})

	t.Run("invalid field", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.FilterOptions(ctx, employee.UniqueField("salaries"))

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidFilterField)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	filter := employee.Filter{Department: "Eng"}
	deps.repo.EXPECT().List(ctx, filter, 2, 10).Return([]employee.Employee{*validInput().ToEntity()}, nil)
	deps.repo.EXPECT().Count(ctx, filter).Return(int64(11), nil)

	resp, total, err := deps.service.List(ctx, filter, 2, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), total)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Engineering", resp[0].Department)
}
