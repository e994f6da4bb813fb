package facades

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/abertanha/movie-diary/internal/logger"
)

// MessageSender is the outbound mail transport. *gomail.Dialer satisfies it.
type MessageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer delivers the email-verification message over SMTP.
type Mailer struct {
	sender      MessageSender
	from        string
	frontendURL string
}

// NewMailer creates a mailer with a "from" identity and the frontend base URL
// used to build verification links.
func NewMailer(sender MessageSender, from, frontendURL string) *Mailer {
	return &Mailer{
		sender:      sender,
		from:        from,
		frontendURL: frontendURL,
	}
}

// SendConfirmation sends the welcome mail carrying the verification link.
func (m *Mailer) SendConfirmation(ctx context.Context, email, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", m.frontendURL, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to the Movies Diary, please confirm your email!")
	msg.SetBody("text/html", fmt.Sprintf(`<html><body>
<h1>🎬 Welcome %s to Movie Diary!</h1>
<p>Thank you for joining Movie Diary - your personal film journey starts now!</p>
<p>To get started, please verify your email address:</p>
<p><a href="%s">VERIFY YOUR EMAIL</a></p>
<p>If you didn't create an account with Movie Diary, please ignore this email.</p>
<p>Lights, camera, action! 🎥<br><b>The Movie Diary Team</b></p>
</body></html>`, email, verifyURL))

	if err := m.sender.DialAndSend(msg); err != nil {
		logger.Log.Errorw("confirmation mail delivery failed", "email", email, "error", err)
		return err
	}

	logger.Log.Infow("confirmation mail sent", "email", email)
	return nil
}
