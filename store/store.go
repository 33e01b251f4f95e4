// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/models"
)

// ErrNotFound reports a lookup that matched no rows. Callers treat it as a
// normal outcome, not a failure.
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface the response ingestion path depends on.
// The pending-submissions badge shares it for its single read.
type Store interface {
	FindStudentByEmail(email string) (models.Student, error)
	InsertResponse(campaignID, studentID string) error
	CountPendingApologies() (int, error)
}

// SQLStore implements Store over database/sql.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// FindStudentByEmail looks up exactly one student by email address.
// Returns ErrNotFound when no student has that email.
func (s *SQLStore) FindStudentByEmail(email string) (models.Student, error) {
	var student models.Student
	var moduleCode sql.NullString
	err := s.db.QueryRow(`
		SELECT id, email, full_name, module_code, created_at
		FROM student
		WHERE email = $1
	`, email).Scan(&student.ID, &student.Email, &student.FullName, &moduleCode, &student.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		return models.Student{}, fmt.Errorf("failed to query student: %w", err)
	}

	student.ModuleCode = moduleCode.String
	return student, nil
}

// InsertResponse records a single campaign response for a resolved student.
func (s *SQLStore) InsertResponse(campaignID, studentID string) error {
	_, err := s.db.Exec(`
		INSERT INTO campaign_response (id, campaign_id, student_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), campaignID, studentID, time.Now())

	if err != nil {
		return fmt.Errorf("failed to insert campaign response: %w", err)
	}

	return nil
}

// CountPendingApologies counts special-consideration submissions still
// waiting on a decision.
func (s *SQLStore) CountPendingApologies() (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM apology_submission WHERE status = $1
	`, models.ApologyStatusPending).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count pending submissions: %w", err)
	}

	return count, nil
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported backend.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
