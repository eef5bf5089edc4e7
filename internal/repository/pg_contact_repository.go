package repository

import (
	"context"
	"fmt"

	"github.com/shubhang/portfolio-api/internal/model"
)

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	db *DB
}

// NewPgContactRepository creates a PgContactRepository backed by the given handle.
func NewPgContactRepository(db *DB) *PgContactRepository {
	return &PgContactRepository{db: db}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID from the
// database RETURNING clause. ReceivedAt is expected to be stamped by the caller.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	pool, err := r.db.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, message, received_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		sub.Name, sub.Email, sub.Message, sub.ReceivedAt,
	).Scan(&sub.ID)
}
