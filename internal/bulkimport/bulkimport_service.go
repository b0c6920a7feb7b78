package bulkimport

import (
	"context"
	"encoding/json"
	"time"

	"opsdash/internal/bootstrap"
	"opsdash/internal/employee"
	"opsdash/internal/events"
	"opsdash/internal/messaging/kafka"
	"opsdash/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const previewRowLimit = 5

type Service interface {
	Import(ctx context.Context, filename string, data []byte) (Report, error)
	Preview(ctx context.Context, filename string, data []byte) (PreviewReport, error)
}

type service struct {
	repo   employee.Repository
	outbox kafka.OutboxRepository
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func NewService(repo employee.Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	return NewServiceWithAudit(repo, outboxRepo, nil, logger...)
}

// NewServiceWithAudit additionally records an audit entry per finished batch.
func NewServiceWithAudit(repo employee.Repository, outboxRepo kafka.OutboxRepository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("bulkimport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkimport.service")
	}
	return &service{repo: repo, outbox: outboxRepo, audit: audit, logger: l}
}

// Import parses the upload and inserts rows one by one. A row that fails
// validation or insertion is reported and skipped; the rest continue.
func (s *service) Import(ctx context.Context, filename string, data []byte) (Report, error) {
	rid := contextutil.GetRequestID(ctx)

	inputs, err := Parse(filename, data)
	if err != nil {
		s.logger.Warn("import parse failed",
			zap.String("request_id", rid),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return Report{}, err
	}

	report := Report{
		Total:            len(inputs),
		Errors:           []RowError{},
		CreatedEmployees: []CreatedEmployee{},
	}

	for i, in := range inputs {
		row := i + 1

		if fieldErrs := employee.Validate(in); len(fieldErrs) > 0 {
			report.Failed++
			report.Errors = append(report.Errors, RowError{
				Row:    row,
				Type:   RowErrorValidation,
				Errors: fieldErrs,
			})
			continue
		}

		empl := in.ToEntity()
		if err := s.repo.Create(ctx, empl); err != nil {
			s.logger.Error("import row insert failed",
				zap.String("request_id", rid),
				zap.Int("row", row),
				zap.Error(err),
			)
			report.Failed++
			report.Errors = append(report.Errors, RowError{
				Row:     row,
				Type:    RowErrorDatabase,
				Message: err.Error(),
			})
			continue
		}

		report.Successful++
		report.CreatedEmployees = append(report.CreatedEmployees, CreatedEmployee{
			Row:        row,
			ID:         empl.ID.String(),
			Department: empl.Department,
			Role:       empl.Role,
		})
	}

	s.publishCompleted(ctx, rid, report)

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "EMPLOYEE_IMPORT",
			Message: "Employee batch import finished",
			UserID:  contextutil.GetUserID(ctx),
			Meta: map[string]any{
				"filename":   filename,
				"total":      report.Total,
				"successful": report.Successful,
				"failed":     report.Failed,
			},
		})
	}

	s.logger.Info("import completed",
		zap.String("request_id", rid),
		zap.String("filename", filename),
		zap.Int("total", report.Total),
		zap.Int("successful", report.Successful),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// Preview validates a sample of the upload without writing anything. Only
// the first previewRowLimit rows are inspected; the rest just count toward
// Total and are validated for real when the batch is imported.
func (s *service) Preview(ctx context.Context, filename string, data []byte) (PreviewReport, error) {
	inputs, err := Parse(filename, data)
	if err != nil {
		return PreviewReport{}, err
	}

	report := PreviewReport{
		Total:   len(inputs),
		Errors:  []RowError{},
		Preview: []PreviewRow{},
	}

	n := len(inputs)
	if n > previewRowLimit {
		n = previewRowLimit
	}

	for i, in := range inputs[:n] {
		row := PreviewRow{Row: i + 1, Data: in, Valid: true}
		if fieldErrs := employee.Validate(in); len(fieldErrs) > 0 {
			row.Valid = false
			row.Errors = fieldErrs
			report.Invalid++
			report.Errors = append(report.Errors, RowError{
				Row:    i + 1,
				Type:   RowErrorValidation,
				Errors: fieldErrs,
			})
		} else {
			report.Valid++
		}
		report.Preview = append(report.Preview, row)
	}

	return report, nil
}

// publishCompleted enqueues the completion event; the import result is not
// affected if the outbox write fails.
func (s *service) publishCompleted(ctx context.Context, rid string, report Report) {
	if s.outbox == nil {
		return
	}

	batchID := uuid.NewString()
	event := events.ImportCompletedEvent{
		EventType:  events.ImportCompletedType,
		RequestID:  rid,
		BatchID:    batchID,
		Total:      report.Total,
		Successful: report.Successful,
		Failed:     report.Failed,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal import event failed", zap.Error(err))
		return
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "import_batch",
		AggregateID:   batchID,
		EventType:     event.EventType,
		Topic:         events.ImportCompletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Error("enqueue import event failed", zap.Error(err))
	}
}
