package grpcsvc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// codeFromError сопоставляет доменную категорию ошибки с кодом gRPC.
// Категория домена проверяется раньше ошибок контекста.
func codeFromError(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case domain.IsInvalidArgument(err), errors.Is(err, domain.ErrUnsupported):
		return codes.InvalidArgument
	case domain.IsNotFound(err):
		return codes.NotFound
	case errors.Is(err, domain.ErrExhaustedAttempts):
		return codes.Unavailable
	case errors.Is(err, domain.ErrProcessorFailure):
		return codes.Aborted
	case domain.IsConflict(err):
		return codes.AlreadyExists
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
