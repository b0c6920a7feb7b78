package employee

import (
	"errors"

	employeeerrors "opsdash/internal/employee/errors"
	"opsdash/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Wrap(err, apperror.CodeStorageError,
			"Employee storage operation failed", employeeerrors.ErrStorage.HTTPStatus)
	}

	return err
}
