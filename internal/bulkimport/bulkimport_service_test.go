package bulkimport_test

import (
	"context"
	"errors"
	"testing"

	"opsdash/internal/bulkimport"
	employeeMock "opsdash/internal/employee/mock"
	"opsdash/internal/events"
	"opsdash/internal/messaging/kafka"
	kafkaMock "opsdash/internal/messaging/kafka/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const sampleCSV = `department,role,employeeType,location,billingStatus,startDate
Engineering,Software Engineer,Full-time,New York,Billable,2024-01-15
Design,Designer,Freelance,Remote,Non-billable,2024-02-01
HR,Recruiter,Full-time,London,Overhead,2024-03-10
`

func setupImportTest(t *testing.T) (*employeeMock.MockRepository, *kafkaMock.MockOutboxRepository, bulkimport.Service) {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	svc := bulkimport.NewService(repo, outbox)
	return repo, outbox, svc
}

func TestBulkImportService_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("partial success keeps importing after a bad row", func(t *testing.T) {
		repo, outbox, svc := setupImportTest(t)

		// Row 2 has an invalid employee type, so only rows 1 and 3 insert.
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
		outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.ImportCompletedTopic, event.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)
				return nil
			})

		report, err := svc.Import(ctx, "employees.csv", []byte(sampleCSV))

		assert.NoError(t, err)
		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 2, report.Successful)
		assert.Equal(t, 1, report.Failed)

		assert.Len(t, report.Errors, 1)
		assert.Equal(t, 2, report.Errors[0].Row)
		assert.Equal(t, bulkimport.RowErrorValidation, report.Errors[0].Type)
		assert.Equal(t, "employeeType", report.Errors[0].Errors[0].Field)

		assert.Len(t, report.CreatedEmployees, 2)
		assert.Equal(t, 1, report.CreatedEmployees[0].Row)
		assert.Equal(t, "Engineering", report.CreatedEmployees[0].Department)
		assert.Equal(t, 3, report.CreatedEmployees[1].Row)
	})

	t.Run("database failure is reported per row", func(t *testing.T) {
		repo, outbox, svc := setupImportTest(t)

		gomock.InOrder(
			repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("duplicate key")),
			repo.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		)
		outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		csv := `department,role,employeeType,location,billingStatus,startDate
Engineering,Dev,Full-time,NYC,Billable,2024-01-15
Design,Designer,Contract,Remote,Billable,2024-02-01
`
		report, err := svc.Import(ctx, "employees.csv", []byte(csv))

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Successful)
		assert.Equal(t, 1, report.Failed)
		assert.Equal(t, bulkimport.RowErrorDatabase, report.Errors[0].Type)
		assert.Contains(t, report.Errors[0].Message, "duplicate key")
	})

	t.Run("outbox failure does not fail the import", func(t *testing.T) {
		repo, outbox, svc := setupImportTest(t)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox down"))

		csv := `department,role,employeeType,location,billingStatus,startDate
Engineering,Dev,Full-time,NYC,Billable,2024-01-15
`
		report, err := svc.Import(ctx, "employees.csv", []byte(csv))

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Successful)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, _, svc := setupImportTest(t)

		_, err := svc.Import(ctx, "employees.pdf", []byte("binary"))

		assert.Error(t, err)
	})
}

func TestBulkImportService_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("validates without writing", func(t *testing.T) {
		_, _, svc := setupImportTest(t)

		report, err := svc.Preview(ctx, "employees.csv", []byte(sampleCSV))

		assert.NoError(t, err)
		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 2, report.Valid)
		assert.Equal(t, 1, report.Invalid)
		assert.Len(t, report.Errors, 1)
		assert.Equal(t, 2, report.Errors[0].Row)

		assert.Len(t, report.Preview, 3)
		assert.True(t, report.Preview[0].Valid)
		assert.False(t, report.Preview[1].Valid)
		assert.Equal(t, "employeeType", report.Preview[1].Errors[0].Field)
		assert.Equal(t, "Design", report.Preview[1].Data.Department)
	})

	t.Run("only the first five rows are inspected", func(t *testing.T) {
		_, _, svc := setupImportTest(t)

		data := []byte(`[
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-01"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-02"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-03"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-04"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-05"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-06"}
		]`)

		report, err := svc.Preview(ctx, "employees.json", data)

		assert.NoError(t, err)
		assert.Equal(t, 6, report.Total)
		assert.Equal(t, 5, report.Valid)
		assert.Equal(t, 0, report.Invalid)
		assert.Len(t, report.Preview, 5)
	})

	t.Run("a bad row past the sample does not show up", func(t *testing.T) {
		_, _, svc := setupImportTest(t)

		// Row 7 has an invalid employee type, but previewing stops at row 5.
		data := []byte(`[
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-01"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-02"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-03"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-04"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-05"},
			{"department":"Eng","role":"Dev","employeeType":"Full-time","location":"NYC","billingStatus":"Billable","startDate":"2024-01-06"},
			{"department":"Eng","role":"Dev","employeeType":"Freelance","location":"NYC","billingStatus":"Billable","startDate":"2024-01-07"}
		]`)

		report, err := svc.Preview(ctx, "employees.json", data)

		assert.NoError(t, err)
		assert.Equal(t, 7, report.Total)
		assert.Equal(t, 5, report.Valid)
		assert.Equal(t, 0, report.Invalid)
		assert.Empty(t, report.Errors)
		assert.Len(t, report.Preview, 5)
		for _, row := range report.Preview {
			assert.True(t, row.Valid)
		}
	})
}
