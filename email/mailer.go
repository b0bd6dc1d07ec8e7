package email

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/jacintha05/ElectoVote/config"
)

// Mailer sends the vote notification to a candidate. Delivery is best
// effort; callers dispatch it outside the vote transaction and only log a
// failure.
type Mailer interface {
	SendVoteNotification(candidateName, candidateEmail, voterName string) error
}

// NewFromConfig returns an SMTP mailer, or a disabled one when no SMTP host
// is configured.
func NewFromConfig(cfg config.Config) Mailer {
	if cfg.SMTPHost == "" {
		log.Warn().Msg("SMTP_HOST not set, vote notifications disabled")
		return disabledMailer{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.EmailFrom,
	}
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) SendVoteNotification(candidateName, candidateEmail, voterName string) error {
	now := time.Now().Format("1/2/2006, 3:04:05 PM")

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", candidateEmail)
	msg.SetHeader("Subject", "New Vote Received - ElectVote Platform")
	msg.SetBody("text/plain", notificationText(candidateName, voterName, now))
	msg.AddAlternative("text/html", notificationHTML(candidateName, voterName, now))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send vote notification to %s: %w", candidateEmail, err)
	}
	log.Info().Str("to", candidateEmail).Msg("vote notification sent")
	return nil
}

type disabledMailer struct{}

func (disabledMailer) SendVoteNotification(candidateName, candidateEmail, voterName string) error {
	log.Info().
		Str("candidate", candidateName).
		Str("to", candidateEmail).
		Msg("mailer disabled, skipping vote notification")
	return nil
}

func notificationText(candidateName, voterName, timestamp string) string {
	return fmt.Sprintf(`ElectVote Platform - New Vote Received

Congratulations! You've received a new vote.

Vote Details:
- Candidate: %s
- Voter: %s
- Time: %s

A voter has successfully cast their vote for you in the General Election 2024.
You can view your updated statistics by logging into your candidate portal.

This is an automated notification from the ElectVote platform.
`, candidateName, voterName, timestamp)
}

func notificationHTML(candidateName, voterName, timestamp string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(to right, #1565C0, #0D47A1); color: white; padding: 20px; border-radius: 8px; text-align: center; }
    .content { background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0; }
    .vote-info { background: white; padding: 15px; border-radius: 6px; border-left: 4px solid #2E7D32; }
    .footer { text-align: center; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>&#x1F5F3;&#xFE0F; ElectVote Platform</h1>
      <p>Secure Digital Voting</p>
    </div>
    <div class="content">
      <h2>Congratulations! You've received a new vote</h2>
      <div class="vote-info">
        <h3>Vote Details:</h3>
        <p><strong>Candidate:</strong> %s</p>
        <p><strong>Voter:</strong> %s</p>
        <p><strong>Time:</strong> %s</p>
      </div>
      <p>A voter has successfully cast their vote for you in the General Election 2024. This notification confirms that your vote count has been updated in real-time.</p>
      <p>You can view your updated statistics and vote count by logging into your candidate portal.</p>
    </div>
    <div class="footer">
      <p>This is an automated notification from the ElectVote platform.</p>
    </div>
  </div>
</body>
</html>`, candidateName, voterName, timestamp)
}
