package mailer

import (
	"github.com/bookshelf/bookshelf-api/pkg/logger"
)

// DevMailer prints mail to the logs instead of sending it.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendVerificationEmail(toEmail, verifyURL, token string) error {
	logger.Info("[DEV MAIL] Verification Email",
		"to", toEmail,
		"verify_url", verifyURL,
		"token", token,
	)
	return nil
}

func (d *DevMailer) SendPasswordResetEmail(toEmail, resetURL, token string) error {
	logger.Info("[DEV MAIL] Password Reset Email",
		"to", toEmail,
		"reset_url", resetURL,
		"token", token,
	)
	return nil
}
