package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/kiranadev/inventory-billing-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Get(ctx context.Context) (*model.StoreProfile, error) {
	var profile model.StoreProfile
	err := r.DB.GetContext(ctx, &profile, `SELECT * FROM store_profile LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *PGRepository) Upsert(ctx context.Context, profile *model.StoreProfile) error {
	query := `
        INSERT INTO store_profile (id, store_name, logo_url, address, terms, contacts, updated_at)
        VALUES (:id, :store_name, :logo_url, :address, :terms, :contacts, :updated_at)
        ON CONFLICT (id)
        DO UPDATE SET
            store_name = EXCLUDED.store_name,
            logo_url = EXCLUDED.logo_url,
            address = EXCLUDED.address,
            terms = EXCLUDED.terms,
            contacts = EXCLUDED.contacts,
            updated_at = EXCLUDED.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, profile)
	return err
}
