// Package repository defines the attendance store interface and errors.
package repository

import (
	"context"

	"presenca/internal/domain/absence"
	"presenca/internal/domain/types"
)

// Store provides read/write access to the attendance state.
type Store interface {
	// AbsencesByUser returns every absence recorded for a user.
	AbsencesByUser(ctx context.Context, userID string) ([]absence.Log, error)
	// AddAbsence records an absence. Returns false without error when a
	// record with the same id already exists.
	AddAbsence(ctx context.Context, l absence.Log) (bool, error)
	// RemoveAbsence deletes an absence by id. Unknown ids are a no-op.
	RemoveAbsence(ctx context.Context, id string) error

	// Ranking returns every known profile ordered by total presents desc,
	// ties broken by user id asc.
	Ranking(ctx context.Context) ([]types.RankingEntry, error)
	// UpsertProfile creates or replaces a user profile.
	UpsertProfile(ctx context.Context, p types.Profile) error

	// User returns the profile for a user id.
	// Returns ErrNotFound if the user is unknown.
	User(ctx context.Context, userID string) (types.Profile, error)
	// Register creates a bare profile named after the given id. Returns
	// false without error when the id is already taken.
	Register(ctx context.Context, userID string) (bool, error)

	// Counts returns the number of users and absences tracked.
	Counts(ctx context.Context) (users, absences int)
}
