package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"trustscore/internal/domain"
	"trustscore/internal/domainerrors"
	"trustscore/internal/ports"
)

func (db *DB) CreateJob(ctx context.Context, trustID string) (string, error) {
	var jobID string
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO assessment_jobs (trust_id) VALUES ($1) RETURNING id::text
    `, trustID).Scan(&jobID)
	return jobID, err
}

func (db *DB) GetJob(ctx context.Context, jobID string) (domain.Job, error) {
	var j domain.Job
	var status string
	var assessmentID *string
	err := db.Pool.QueryRow(ctx, `
        SELECT id::text, trust_id, status, attempts, error, assessment_id, queued_at, finished_at
        FROM assessment_jobs
        WHERE id::text = $1
    `, jobID).Scan(&j.ID, &j.TrustID, &status, &j.Attempts, &j.Error, &assessmentID, &j.QueuedAt, &j.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return j, domainerrors.New(domainerrors.CodeNotFound, "job not found")
	}
	if err != nil {
		return j, err
	}
	j.Status = domain.JobStatus(status)
	if assessmentID != nil {
		j.AssessmentID = *assessmentID
	}
	return j, nil
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.AssessmentJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id::text, trust_id FROM assessment_jobs
        WHERE status = 'queued'
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.TrustID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}
	if _, err = tx.Exec(ctx, `
        UPDATE assessment_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id::text=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

// StartJob marks a specific queued job as running. A job that is already
// claimed or finished is a conflict.
func (db *DB) StartJob(ctx context.Context, jobID string) (job ports.AssessmentJob, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id::text, trust_id FROM assessment_jobs
        WHERE id::text = $1 AND status = 'queued'
        FOR UPDATE SKIP LOCKED
    `, jobID).Scan(&job.ID, &job.TrustID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, domainerrors.New(domainerrors.CodeConflict, "job is not queued")
	}
	if err != nil {
		return job, err
	}
	_, err = tx.Exec(ctx, `
        UPDATE assessment_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id::text=$1
    `, jobID)
	return job, err
}

func (db *DB) MarkCompleted(ctx context.Context, jobID, assessmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.finishJob(ctx, `
        UPDATE assessment_jobs SET status='completed', assessment_id=$2, error='', finished_at=now() WHERE id::text=$1
    `, jobID, assessmentID)
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.finishJob(ctx, `
        UPDATE assessment_jobs SET status='failed', error=$2, finished_at=now() WHERE id::text=$1
    `, jobID, reason)
}

func (db *DB) finishJob(ctx context.Context, query, jobID, value string) error {
	tag, err := db.Pool.Exec(ctx, query, jobID, value)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainerrors.New(domainerrors.CodeNotFound, "job not found")
	}
	return nil
}
