package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/istvanv2/giwedding/internal/domain"
)

type RSVPRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRSVPRepo(db *dbpg.DB) *RSVPRepository {
	return &RSVPRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// InsertRecords writes all records of one submission in order, main respondent
// first. Each insert is attempted exactly once; the first failure aborts this
// destination's contribution and the prefix already written stays in place
// (the sheet copy is the backup, not a transaction partner).
func (r *RSVPRepository) InsertRecords(ctx context.Context, records []domain.Record) error {
	query := `INSERT INTO rsvp_responses (
				submitted_at, group_name, person_name, attending, menu,
				accommodation, accommodation_details, email, phone, message
			  ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	for _, rec := range records {
		_, err := r.db.Master.ExecContext(
			ctx, query,
			rec.SubmittedAt, rec.GroupName, rec.PersonName, rec.Attending, rec.Menu,
			rec.Accommodation, rec.AccommodationDetails, rec.Email, rec.Phone, rec.Message,
		)
		if err != nil {
			return fmt.Errorf("insert rsvp record: %w", err)
		}
	}

	return nil
}

func (r *RSVPRepository) List(ctx context.Context) ([]*domain.Record, error) {
	query := `SELECT id, submitted_at, group_name, person_name, attending, menu,
					 accommodation, accommodation_details, email, phone, message
			  FROM rsvp_responses
			  ORDER BY submitted_at DESC, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rsvp records: %w", err)
	}
	defer rows.Close()

	var res []*domain.Record
	for rows.Next() {
		var rec domain.Record
		if err = rows.Scan(
			&rec.ID, &rec.SubmittedAt, &rec.GroupName, &rec.PersonName, &rec.Attending,
			&rec.Menu, &rec.Accommodation, &rec.AccommodationDetails,
			&rec.Email, &rec.Phone, &rec.Message,
		); err != nil {
			return nil, fmt.Errorf("scan rsvp record: %w", err)
		}
		res = append(res, &rec)
	}

	return res, rows.Err()
}

// Update overwrites all mutable fields of one record. Last write wins; there
// is no optimistic concurrency check for the single-operator dashboard.
// The stored submission timestamp is read back into rec so callers echo the
// row, not whatever the payload carried.
func (r *RSVPRepository) Update(ctx context.Context, rec *domain.Record) error {
	query := `UPDATE rsvp_responses
			  SET group_name = $2, person_name = $3, attending = $4, menu = $5,
				  accommodation = $6, accommodation_details = $7,
				  email = $8, phone = $9, message = $10
			  WHERE id = $1
			  RETURNING submitted_at`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		rec.ID, rec.GroupName, rec.PersonName, rec.Attending, rec.Menu,
		rec.Accommodation, rec.AccommodationDetails, rec.Email, rec.Phone, rec.Message,
	).Scan(&rec.SubmittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("update rsvp record: %w", err)
	}

	return nil
}

func (r *RSVPRepository) Delete(ctx context.Context, ids []int64) (int64, error) {
	query := `DELETE FROM rsvp_responses WHERE id = ANY($1)`

	res, err := r.db.Master.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("delete rsvp records: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete rows affected: %w", err)
	}

	return rows, nil
}
