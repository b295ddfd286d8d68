package handlers

import (
	"errors"
	"net/http"

	"github.com/bookshelf/bookshelf-api/internal/domain"
	"github.com/bookshelf/bookshelf-api/internal/http/response"
	"github.com/bookshelf/bookshelf-api/internal/service"
	"github.com/bookshelf/bookshelf-api/internal/session"
	"github.com/bookshelf/bookshelf-api/pkg/token"
)

type Handlers struct {
	authService service.AuthService
	bookService service.BookService
	sessions    *session.Manager
	tokens      *token.Service
}

func New(
	authService service.AuthService,
	bookService service.BookService,
	sessions *session.Manager,
	tokens *token.Service,
) *Handlers {
	return &Handlers{
		authService: authService,
		bookService: bookService,
		sessions:    sessions,
		tokens:      tokens,
	}
}

// Welcome handles GET /
func (h *Handlers) Welcome(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "Welcome to book application", nil)
}

// writeServiceError converts a service error into the envelope. Validation
// failures keep the failing rule as detail under the given message; known
// domain errors map to their semantic status; everything else is a store
// error.
func writeServiceError(w http.ResponseWriter, err error, invalidMsg string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Invalid(w, invalidMsg, ve)
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrUsernameExists),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEmailNotVerified),
		errors.Is(err, domain.ErrPasswordMismatch):
		response.BadRequest(w, err.Error())
	case errors.Is(err, token.ErrInvalidToken):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, domain.ErrBookNotFound):
		response.NotFound(w, err.Error())
	default:
		response.StoreError(w, err)
	}
}
