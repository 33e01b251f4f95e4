// Copyright (c) 2025 Gubevu07.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the persistence interface for the response ingestion
path.

# The Store Interface

Store narrows database access to the three operations ingestion and the
dashboard badge need:

	FindStudentByEmail(email) (models.Student, error)
	InsertResponse(campaignID, studentID) error
	CountPendingApologies() (int, error)

SQLStore implements it over database/sql:

	st := store.NewSQLStore(db)

Handlers depend on the interface, so tests can substitute a fake store to
exercise failure paths without a database.

# Sentinel Errors

FindStudentByEmail returns ErrNotFound when no student has the given email.
Check it with errors.Is; it marks a normal outcome, not a failure.

# Uniqueness Violations

IsUniqueViolation recognizes uniqueness-constraint failures from both
PostgreSQL and SQLite, used when EnforceUniqueResponse maps a duplicate
insert to a conflict response.
*/
package store
