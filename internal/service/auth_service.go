package service

import (
	"context"
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/bookshelf/bookshelf-api/internal/domain"
	"github.com/bookshelf/bookshelf-api/internal/notify"
	"github.com/bookshelf/bookshelf-api/internal/repository"
	"github.com/bookshelf/bookshelf-api/pkg/config"
	"github.com/bookshelf/bookshelf-api/pkg/token"
)

type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, error)
	VerifyEmail(ctx context.Context, tok string) error
	ResendVerification(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, loginID string) error
	ResetPassword(ctx context.Context, loginID, password string) error
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     *token.Service
	dispatcher notify.Dispatcher
	config     *config.Config
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens *token.Service,
	dispatcher notify.Dispatcher,
	config *config.Config,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		dispatcher: dispatcher,
		config:     config,
	}
}

func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Email is checked before username.
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	existing, err = s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameExists
	}

	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req, passwordHash)
	if err != nil {
		return nil, err
	}

	verifyToken, err := s.tokens.Issue(user.Email, s.config.Auth.VerificationTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create verification token: %w", err)
	}
	s.dispatcher.SendVerification(ctx, user.Email, verifyToken)

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.findByLoginID(ctx, req.LoginID)
	if err != nil {
		return nil, err
	}

	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	match, err := argon2id.ComparePasswordAndHash(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return nil, domain.ErrPasswordMismatch
	}

	return user, nil
}

func (s *authService) VerifyEmail(ctx context.Context, tok string) error {
	email, err := s.tokens.Verify(tok)
	if err != nil {
		return err
	}

	return s.userRepo.MarkVerified(ctx, email)
}

func (s *authService) ResendVerification(ctx context.Context, email string) error {
	if email == "" {
		return domain.NewValidationError("Missing Credentials")
	}
	if !domain.IsEmail(email) {
		return domain.NewValidationError("email format invalid")
	}

	verifyToken, err := s.tokens.Issue(email, s.config.Auth.VerificationTTL)
	if err != nil {
		return fmt.Errorf("failed to create verification token: %w", err)
	}
	s.dispatcher.SendVerification(ctx, email, verifyToken)

	return nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, loginID string) error {
	user, err := s.findByLoginID(ctx, loginID)
	if err != nil {
		return err
	}

	if !user.EmailVerified {
		return domain.ErrEmailNotVerified
	}

	resetToken, err := s.tokens.Issue(user.Email, s.config.Auth.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	s.dispatcher.SendPasswordReset(ctx, user.Email, resetToken)

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, loginID, password string) error {
	user, err := s.findByLoginID(ctx, loginID)
	if err != nil {
		return err
	}

	if !user.EmailVerified {
		return domain.ErrEmailNotVerified
	}

	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, passwordHash)
}

// findByLoginID resolves loginId as an email or a username, whichever it
// looks like.
func (s *authService) findByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	var (
		user *domain.User
		err  error
	)
	if domain.IsEmail(loginID) {
		user, err = s.userRepo.FindByEmail(ctx, loginID)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, loginID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
