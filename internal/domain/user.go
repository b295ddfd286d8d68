package domain

import (
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PasswordHash  string    `json:"-"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
}

// UserInfo is the client-facing view of a User
type UserInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	EmailVerified bool   `json:"email_verified"`
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[\+]?[\d\s\-\(\)]+$`)
)

// Validate applies the registration rules in a fixed order and stops at the
// first failing rule.
func (r *RegisterRequest) Validate() error {
	if r.Name == "" || r.Username == "" || r.Email == "" || r.Phone == "" || r.Password == "" {
		return NewValidationError("Missing Credentials")
	}
	if len(r.Password) <= 2 || len(r.Password) > 25 {
		return NewValidationError("password length should be 3-25")
	}
	if len(r.Username) <= 2 || len(r.Username) > 50 {
		return NewValidationError("username length should be 3-50")
	}
	if !IsEmail(r.Email) {
		return NewValidationError("email format invalid")
	}
	if !isValidPhone(r.Phone) {
		return NewValidationError("Invalid phone number")
	}
	return nil
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *LoginRequest) Validate() error {
	if r.LoginID == "" || r.Password == "" {
		return NewValidationError("missing credentials")
	}
	return nil
}

func (r *LoginRequest) Normalize() {
	r.LoginID = strings.TrimSpace(r.LoginID)
}

// IsEmail reports whether s looks like an email address. Login and password
// reset use it to decide whether loginId is an email or a username.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone) && len(phone) >= 7
}

func (u *User) ToUserInfo() *UserInfo {
	return &UserInfo{
		ID:            u.ID,
		Name:          u.Name,
		Username:      u.Username,
		Email:         u.Email,
		Phone:         u.Phone,
		EmailVerified: u.EmailVerified,
	}
}
