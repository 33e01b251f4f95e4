// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/auth"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/models"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/testutil"
)

var _ Sender = (*SMTPMailer)(nil)

func TestInviteEmail(t *testing.T) {
	link := "http://127.0.0.1:8080/campaign/respond?token=abc123"
	expiresAt := time.Now().Add(auth.ResponseTokenTTL)

	t.Run("quiz invite", func(t *testing.T) {
		campaign := models.Campaign{
			CampaignType: models.CampaignTypeQuiz,
			Title:        "Weekly Quiz (Week of 18 Aug)",
			Incentive:    "Assignment Extension Voucher (x5 Winners)",
		}

		subject, body := InviteEmail("Thabo Mokoena", campaign, link, expiresAt)

		if subject != "Weekly Progress Quiz is Ready! (Weekly Quiz (Week of 18 Aug))" {
			t.Errorf("Unexpected subject: %s", subject)
		}
		for _, want := range []string{
			"Hi Thabo Mokoena,",
			"Link: " + link,
			"Assignment Extension Voucher (x5 Winners)",
			"This link expires",
			"days from now",
			"Your Lecturer",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("Expected body to contain %q.\nBody: %s", want, body)
			}
		}
	})

	t.Run("survey invite", func(t *testing.T) {
		campaign := models.Campaign{
			CampaignType: models.CampaignTypeSurvey,
			Title:        "Lecturer Feedback Survey",
			Incentive:    "1-Month Staff WiFi Pass (x1 Winner)",
		}

		subject, body := InviteEmail("Ayanda Dlamini", campaign, link, expiresAt)

		if subject != "Your Feedback is Important - Anonymous Survey" {
			t.Errorf("Unexpected subject: %s", subject)
		}
		for _, want := range []string{
			"Hi Ayanda Dlamini,",
			"anonymous feedback",
			"Link: " + link,
			"1-Month Staff WiFi Pass (x1 Winner)",
			"This link expires",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("Expected body to contain %q.\nBody: %s", want, body)
			}
		}
	})
}

func TestDecisionEmail(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		subject, body := DecisionEmail("Thabo Mokoena", "Theory Test 1", models.ApologyStatusApproved, "Medical certificate provided")

		if subject != "Update on your submission for Theory Test 1" {
			t.Errorf("Unexpected subject: %s", subject)
		}
		for _, want := range []string{
			"Hi Thabo Mokoena,",
			"has been approved",
			"Reason: Medical certificate provided",
			"supplementary assessment",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("Expected body to contain %q.\nBody: %s", want, body)
			}
		}
	})

	t.Run("rejected", func(t *testing.T) {
		subject, body := DecisionEmail("Thabo Mokoena", "Theory Test 1", models.ApologyStatusRejected, "No supporting documentation")

		if subject != "Update on your submission for Theory Test 1" {
			t.Errorf("Unexpected subject: %s", subject)
		}
		for _, want := range []string{
			"has been rejected",
			"Reason: No supporting documentation",
			"contact me",
		} {
			if !strings.Contains(body, want) {
				t.Errorf("Expected body to contain %q.\nBody: %s", want, body)
			}
		}
		if strings.Contains(body, "approved") {
			t.Error("Rejection email should not mention approval")
		}
	})
}

func TestWinnerEmail(t *testing.T) {
	testCases := []struct {
		name            string
		incentive       string
		wantVoucherType string
		wantSubject     string
	}{
		{
			name:            "assignment extension",
			incentive:       "Assignment Extension Voucher (x5 Winners)",
			wantVoucherType: "Assignment Extension",
			wantSubject:     "Congratulations! You've won an Assignment Extension Voucher!",
		},
		{
			name:            "wifi pass",
			incentive:       "1-Month Staff WiFi Pass (x1 Winner)",
			wantVoucherType: "Staff WiFi Pass",
			wantSubject:     "Congratulations! You've won a Staff WiFi Pass!",
		},
		{
			name:            "unrecognized incentive",
			incentive:       "Free Pizza (x3 Winners)",
			wantVoucherType: "Generic Prize",
			wantSubject:     "Congratulations! You're a campaign winner!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			campaign := models.Campaign{
				Title:     "Test Campaign",
				Incentive: tc.incentive,
			}

			subject, body, voucherType := WinnerEmail("Thabo Mokoena", campaign)

			if voucherType != tc.wantVoucherType {
				t.Errorf("Expected voucher type %q, got %q", tc.wantVoucherType, voucherType)
			}
			if subject != tc.wantSubject {
				t.Errorf("Expected subject %q, got %q", tc.wantSubject, subject)
			}
			if !strings.Contains(body, "Hi Thabo Mokoena,") {
				t.Errorf("Expected body to greet the winner.\nBody: %s", body)
			}
			if !strings.Contains(body, "Test Campaign") {
				t.Errorf("Expected body to name the campaign.\nBody: %s", body)
			}
		})
	}
}

func TestSMTPMailerLogsFailedSend(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	defer dbConn.Close()

	// Port 1 on localhost has no listener, so the dial fails fast
	cfg := testutil.GetTestConfig()
	cfg.SMTPHost = "127.0.0.1"
	cfg.SMTPPort = 1
	cfg.FromEmail = "lecturer@dut.ac.za"

	m := NewSMTPMailer(dbConn, cfg)

	err := m.Send("22012345@dut4life.ac.za", "Test Subject", "Test body")
	if err == nil {
		t.Fatal("Expected send to fail without an SMTP server")
	}

	var recipient, subject, status string
	var errMsg *string
	row := dbConn.QueryRow(`SELECT recipient, subject, status, error FROM email_log`)
	if err := row.Scan(&recipient, &subject, &status, &errMsg); err != nil {
		t.Fatalf("Expected an email_log row: %v", err)
	}

	if recipient != "22012345@dut4life.ac.za" {
		t.Errorf("Expected recipient to be logged, got %s", recipient)
	}
	if subject != "Test Subject" {
		t.Errorf("Expected subject to be logged, got %s", subject)
	}
	if status != models.EmailStatusFailed {
		t.Errorf("Expected status %q, got %q", models.EmailStatusFailed, status)
	}
	if errMsg == nil || *errMsg == "" {
		t.Error("Expected the failure message to be logged")
	}
}
