// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/db"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/testutil"
)

func TestFindStudentByEmail(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	defer dbConn.Close()

	st := NewSQLStore(dbConn)

	studentID := testutil.CreateTestStudent(t, dbConn, "22012345@dut4life.ac.za", "Thabo Mokoena")

	t.Run("existing student", func(t *testing.T) {
		student, err := st.FindStudentByEmail("22012345@dut4life.ac.za")
		if err != nil {
			t.Fatalf("FindStudentByEmail failed: %v", err)
		}

		if student.ID != studentID {
			t.Errorf("Expected ID %s, got %s", studentID, student.ID)
		}
		if student.Email != "22012345@dut4life.ac.za" {
			t.Errorf("Expected email to match, got %s", student.Email)
		}
		if student.FullName != "Thabo Mokoena" {
			t.Errorf("Expected full name to match, got %s", student.FullName)
		}
		if student.ModuleCode != "SODM401" {
			t.Errorf("Expected module code SODM401, got %s", student.ModuleCode)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := st.FindStudentByEmail("nobody@dut4life.ac.za")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestInsertResponse(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	defer dbConn.Close()

	st := NewSQLStore(dbConn)
	cfg := testutil.GetTestConfig()

	studentID := testutil.CreateTestStudent(t, dbConn, "22012345@dut4life.ac.za", "Thabo Mokoena")
	campaignID, _ := testutil.CreateTestCampaign(t, dbConn, cfg, "WEEKLY_QUIZ", "Sent")

	if err := st.InsertResponse(campaignID, studentID); err != nil {
		t.Fatalf("InsertResponse failed: %v", err)
	}

	var count int
	var gotCampaign, gotStudent string
	err := dbConn.QueryRow(`
		SELECT COUNT(*), MAX(campaign_id), MAX(student_id)
		FROM campaign_response
	`).Scan(&count, &gotCampaign, &gotStudent)
	if err != nil {
		t.Fatalf("Failed to query responses: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected 1 response row, got %d", count)
	}
	if gotCampaign != campaignID {
		t.Errorf("Expected campaign_id %s, got %s", campaignID, gotCampaign)
	}
	if gotStudent != studentID {
		t.Errorf("Expected student_id %s, got %s", studentID, gotStudent)
	}

	// Duplicates are allowed by default; a student may answer twice
	if err := st.InsertResponse(campaignID, studentID); err != nil {
		t.Fatalf("Second insert should succeed without the unique index: %v", err)
	}

	dbConn.QueryRow(`SELECT COUNT(*) FROM campaign_response`).Scan(&count)
	if count != 2 {
		t.Errorf("Expected 2 response rows, got %d", count)
	}
}

func TestInsertResponseWithUniqueIndex(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	defer dbConn.Close()

	if err := db.EnsureUniqueResponseIndex(dbConn); err != nil {
		t.Fatalf("Failed to create unique index: %v", err)
	}

	st := NewSQLStore(dbConn)
	cfg := testutil.GetTestConfig()

	studentID := testutil.CreateTestStudent(t, dbConn, "22012345@dut4life.ac.za", "Thabo Mokoena")
	campaignID, _ := testutil.CreateTestCampaign(t, dbConn, cfg, "WEEKLY_QUIZ", "Sent")

	if err := st.InsertResponse(campaignID, studentID); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := st.InsertResponse(campaignID, studentID)
	if err == nil {
		t.Fatal("Expected second insert to violate the unique index")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("Expected a unique violation, got %v", err)
	}

	var count int
	dbConn.QueryRow(`SELECT COUNT(*) FROM campaign_response`).Scan(&count)
	if count != 1 {
		t.Errorf("Expected 1 response row after rejected duplicate, got %d", count)
	}
}

func TestCountPendingApologies(t *testing.T) {
	dbConn := testutil.SetupTestDB(t)
	defer dbConn.Close()

	st := NewSQLStore(dbConn)

	count, err := st.CountPendingApologies()
	if err != nil {
		t.Fatalf("CountPendingApologies failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 pending on empty table, got %d", count)
	}

	studentID := testutil.CreateTestStudent(t, dbConn, "22012345@dut4life.ac.za", "Thabo Mokoena")
	testutil.CreateTestApology(t, dbConn, studentID, "Pending")
	testutil.CreateTestApology(t, dbConn, studentID, "Pending")
	testutil.CreateTestApology(t, dbConn, studentID, "Approved")

	count, err = st.CountPendingApologies()
	if err != nil {
		t.Fatalf("CountPendingApologies failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 pending, got %d", count)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "postgres unique violation",
			err:      errors.New(`pq: duplicate key value violates unique constraint "idx_campaign_response_unique"`),
			expected: true,
		},
		{
			name:     "sqlite unique violation",
			err:      errors.New("constraint failed: UNIQUE constraint failed: campaign_response.campaign_id, campaign_response.student_id"),
			expected: true,
		},
		{
			name:     "wrapped postgres violation",
			err:      fmt.Errorf("failed to insert campaign response: %w", errors.New(`pq: duplicate key value violates unique constraint "campaign_participant_pkey"`)),
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      errors.New("connection refused"),
			expected: false,
		},
		{
			name:     "foreign key violation",
			err:      errors.New(`pq: insert or update on table "campaign_response" violates foreign key constraint`),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err); got != tc.expected {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}
