package services

import (
	"context"

	apperrors "lawlinks/server/errors"
)

// ValidateContext проверяет, что context не nil и не отменен
func ValidateContext(ctx context.Context) error {
	if ctx == nil {
		return apperrors.NewValidationError("context не может быть nil", nil)
	}

	select {
	case <-ctx.Done():
		return apperrors.NewServiceUnavailableError("контекст отменен", ctx.Err())
	default:
		return nil
	}
}
