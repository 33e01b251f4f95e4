// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mailer sends the service's outbound email and composes its messages.

# Sending

SMTPMailer delivers plain-text mail through the configured relay:

	m := mailer.NewSMTPMailer(db, cfg)
	err := m.Send(to, subject, body)

Every attempt is recorded in the email_log table with status "sent" or
"failed". Handlers depend on the Sender interface, so tests can capture
sends without a relay.

# Composition

The email copy lives here as pure functions:

	subject, body := mailer.InviteEmail(name, campaign, link, expiresAt)
	subject, body := mailer.DecisionEmail(name, assessment, status, reason)
	subject, body, voucherType := mailer.WinnerEmail(name, campaign)

InviteEmail varies its copy by campaign type and includes a humanized link
expiry ("3 days from now"). WinnerEmail also derives the voucher type from
the campaign's incentive text.
*/
package mailer
