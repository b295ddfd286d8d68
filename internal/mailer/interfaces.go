package mailer

type Service interface {
	SendVerificationEmail(toEmail, verifyURL, token string) error
	SendPasswordResetEmail(toEmail, resetURL, token string) error
}
