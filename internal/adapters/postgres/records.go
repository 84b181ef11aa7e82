package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"trustscore/internal/domain"
	"trustscore/internal/domainerrors"
)

// TrustRepository

func (db *DB) GetTrust(ctx context.Context, trustID string) (domain.TrustProfile, error) {
	var t domain.TrustProfile
	err := db.Pool.QueryRow(ctx, `
        SELECT id, name, jurisdiction, county,
               grantor_names, trustee_names, successor_trustee_names, beneficiary_names,
               revocable, joint
        FROM trusts
        WHERE id = $1
    `, trustID).Scan(&t.ID, &t.Name, &t.Jurisdiction, &t.County,
		&t.GrantorNames, &t.TrusteeNames, &t.SuccessorTrusteeNames, &t.BeneficiaryNames,
		&t.Revocable, &t.Joint)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, domainerrors.New(domainerrors.CodeNotFound, "trust not found")
	}
	return t, err
}

func (db *DB) ListAssets(ctx context.Context, trustID string) ([]domain.Asset, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, trust_id, name, type, estimated_value::float8, funding_status,
               beneficiary_designation, intended_beneficiary
        FROM assets
        WHERE trust_id = $1
        ORDER BY id
    `, trustID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Asset, error) {
		var a domain.Asset
		var typ, funding string
		err := row.Scan(&a.ID, &a.TrustID, &a.Name, &typ, &a.EstimatedValue, &funding,
			&a.BeneficiaryDesignation, &a.IntendedBeneficiary)
		a.Type = domain.AssetType(typ)
		a.FundingStatus = domain.FundingStatus(funding)
		return a, err
	})
}

func (db *DB) ListDocuments(ctx context.Context, trustID string) ([]domain.Document, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, trust_id, doc_type, status, linked_asset_id
        FROM documents
        WHERE trust_id = $1
        ORDER BY id
    `, trustID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Document, error) {
		var d domain.Document
		var docType, status string
		err := row.Scan(&d.ID, &d.TrustID, &docType, &status, &d.LinkedAssetID)
		d.DocType = domain.DocumentType(docType)
		d.Status = domain.DocumentStatus(status)
		return d, err
	})
}

func (db *DB) ListEvidence(ctx context.Context, trustID string) ([]domain.EvidenceItem, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, asset_id, document_id, verified
        FROM evidence_items
        WHERE trust_id = $1
        ORDER BY id
    `, trustID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EvidenceItem, error) {
		var e domain.EvidenceItem
		err := row.Scan(&e.ID, &e.AssetID, &e.DocumentID, &e.Verified)
		return e, err
	})
}
