package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"trustscore/internal/domain"
	"trustscore/internal/domainerrors"
)

// SaveAssessment stores a under the trust's next version. The trust row is
// locked so concurrent runs for one trust get distinct versions.
func (db *DB) SaveAssessment(ctx context.Context, a domain.Assessment) (saved domain.Assessment, err error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return saved, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var locked string
	err = tx.QueryRow(ctx, `SELECT id FROM trusts WHERE id=$1 FOR UPDATE`, a.TrustID).Scan(&locked)
	if errors.Is(err, pgx.ErrNoRows) {
		return saved, domainerrors.New(domainerrors.CodeNotFound, "trust not found")
	}
	if err != nil {
		return saved, err
	}
	if err = tx.QueryRow(ctx, `
        SELECT COALESCE(MAX(version), 0) + 1 FROM assessments WHERE trust_id=$1
    `, a.TrustID).Scan(&a.Version); err != nil {
		return saved, err
	}
	if _, err = tx.Exec(ctx, `
        INSERT INTO assessments (id, trust_id, version, rule_set_version, inputs_hash, result, actions, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, a.ID, a.TrustID, a.Version, a.RuleSetVersion, a.InputsHash, a.Result, a.Actions, a.CreatedAt); err != nil {
		return saved, err
	}
	return a, nil
}

func (db *DB) LatestAssessment(ctx context.Context, trustID string) (domain.Assessment, error) {
	var a domain.Assessment
	err := db.Pool.QueryRow(ctx, `
        SELECT id, trust_id, version, rule_set_version, inputs_hash, result, actions, created_at
        FROM assessments
        WHERE trust_id = $1
        ORDER BY version DESC
        LIMIT 1
    `, trustID).Scan(&a.ID, &a.TrustID, &a.Version, &a.RuleSetVersion, &a.InputsHash, &a.Result, &a.Actions, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, domainerrors.New(domainerrors.CodeNotFound, "no assessment for trust")
	}
	if err != nil {
		return a, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}
