package handlers

import (
	mw "github.com/bookshelf/bookshelf-api/internal/http/middleware"
	"github.com/bookshelf/bookshelf-api/internal/session"
	"github.com/go-chi/chi/v5"
)

// Router wires the application routes. Requests flow session middleware →
// rate limiter → auth gate → handler for the protected book operations.
func Router(h *Handlers, sessions *session.Manager, limiter *mw.RateLimiter) chi.Router {
	r := chi.NewRouter()
	r.Use(sessions.Middleware)

	r.Get("/", h.Welcome)
	r.Get("/registration", h.RegisterPage)
	r.Post("/registration", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/forgot-password/{token}", h.ForgotPasswordPage)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password", h.ResetPassword)
	r.Post("/resend-verification", h.ResendVerification)
	r.Get("/api/{token}", h.VerifyEmail)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)
		r.Get("/dashboard", h.DashboardPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(limiter.Limit)
		r.Use(mw.RequireAuth)
		r.Post("/create-item", h.CreateBook)
		r.Post("/edit-item/{id}", h.EditBook)
		r.Get("/get-book/{id}", h.GetBook)
		r.Post("/delete-item", h.DeleteBook)
		r.Get("/dashboarddata", h.DashboardData)
	})

	return r
}
