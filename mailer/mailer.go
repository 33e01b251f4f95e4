// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/gomail.v2"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/auth"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/cliparse"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/models"
)

// Sender delivers a single email. Handlers depend on this interface so tests
// can record sends without an SMTP server.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through the configured SMTP relay and records every
// attempt in the email log, delivered or not.
type SMTPMailer struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSMTPMailer(db *sql.DB, cfg cliparse.Config) *SMTPMailer {
	return &SMTPMailer{db: db, cfg: cfg}
}

// Send delivers a plain-text email to a single recipient.
func (m *SMTPMailer) Send(to, subject, body string) error {
	status := models.EmailStatusSent
	var sendErr error

	// The log row is written on every exit path
	defer func() {
		logID, err := auth.GenerateID(16)
		if err != nil {
			slog.Error("failed to generate email log ID", "error", err)
			return
		}
		var errMsg *string
		if sendErr != nil {
			s := sendErr.Error()
			errMsg = &s
		}
		if _, err := m.db.Exec(`
			INSERT INTO email_log (id, recipient, subject, status, error, sent_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, logID, to, subject, status, errMsg, time.Now()); err != nil {
			slog.Error("failed to record email log", "error", err, "recipient", to)
		}
	}()

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromEmail)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		status = models.EmailStatusFailed
		sendErr = fmt.Errorf("failed to send email: %w", err)
		return sendErr
	}

	return nil
}

// InviteEmail builds the invitation carrying a student's unique response
// link. The copy varies by campaign type.
func InviteEmail(studentName string, c models.Campaign, link string, expiresAt time.Time) (subject, body string) {
	expiry := humanize.Time(expiresAt)
	if c.CampaignType == models.CampaignTypeQuiz {
		subject = fmt.Sprintf("Weekly Progress Quiz is Ready! (%s)", c.Title)
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"The weekly progress quiz is now available. Please use your unique link below to respond:\n\n"+
				"Link: %s\n\n"+
				"Complete the quiz for a chance to win an '%s'.\n\n"+
				"This link expires %s.\n\n"+
				"Good luck!\nYour Lecturer",
			studentName, link, c.Incentive, expiry)
		return subject, body
	}

	subject = "Your Feedback is Important - Anonymous Survey"
	body = fmt.Sprintf(
		"Hi %s,\n\n"+
			"Please take a moment to provide anonymous feedback on the module using the secure link below:\n\n"+
			"Link: %s\n\n"+
			"You'll be entered into a draw to win a '%s'.\n\n"+
			"This link expires %s.\n\n"+
			"Thank you,\nYour Lecturer",
		studentName, link, c.Incentive, expiry)
	return subject, body
}

// DecisionEmail builds the outcome notification for a special-consideration
// submission.
func DecisionEmail(studentName, assessmentName, status, reason string) (subject, body string) {
	subject = fmt.Sprintf("Update on your submission for %s", assessmentName)
	if status == models.ApologyStatusApproved {
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"Good news! Your special consideration request for '%s' has been approved.\n\n"+
				"Reason: %s\n\n"+
				"I will be in touch with you shortly regarding the arrangements for your supplementary assessment.\n\n"+
				"Best regards,\nYour Lecturer",
			studentName, assessmentName, reason)
		return subject, body
	}

	body = fmt.Sprintf(
		"Hi %s,\n\n"+
			"This email is to inform you that your special consideration request for '%s' has been rejected.\n\n"+
			"Reason: %s\n\n"+
			"If you would like to discuss this further, please do not hesitate to contact me.\n\n"+
			"Sincerely,\nYour Lecturer",
		studentName, assessmentName, reason)
	return subject, body
}

// WinnerEmail builds the congratulation notice for a picked winner. The
// voucher type is derived from the campaign incentive text.
func WinnerEmail(studentName string, c models.Campaign) (subject, body, voucherType string) {
	switch {
	case strings.Contains(c.Incentive, "Assignment Extension"):
		voucherType = "Assignment Extension"
		subject = "Congratulations! You've won an Assignment Extension Voucher!"
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"Great news! For completing the '%s', you've been randomly selected to receive an Assignment Extension Voucher.\n\n"+
				"This voucher grants you a 24-hour extension on a single assignment. To redeem it, please forward this email to your lecturer when you submit.\n\n"+
				"Well done and thank you for your participation!\nYour Lecturer",
			studentName, c.Title)
	case strings.Contains(c.Incentive, "WiFi Pass"):
		voucherType = "Staff WiFi Pass"
		subject = "Congratulations! You've won a Staff WiFi Pass!"
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"Great news! For completing the '%s', you've been randomly selected to receive a one-month DUT Staff WiFi Pass.\n\n"+
				"Please see your lecturer after the next class to collect your pass.\n\n"+
				"Thank you for your valuable feedback!\nYour Lecturer",
			studentName, c.Title)
	default:
		voucherType = "Generic Prize"
		subject = "Congratulations! You're a campaign winner!"
		body = fmt.Sprintf(
			"Hi %s,\n\n"+
				"You have won the prize for the '%s' campaign. Please see your lecturer to collect it.\n\n"+
				"Your Lecturer",
			studentName, c.Title)
	}
	return subject, body, voucherType
}
