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

func (r *PGRepository) Create(ctx context.Context, receipt *model.StockReceipt) error {
	query := `
        INSERT INTO stock_receipts (
            id, product_id, dealer_name, buying_price, quantity,
            supplier_bill_number, lot_number, received_date, created_at, updated_at
        )
        VALUES (
            :id, :product_id, :dealer_name, :buying_price, :quantity,
            :supplier_bill_number, :lot_number, :received_date, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, receipt)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.StockReceipt, error) {
	var receipt model.StockReceipt
	err := r.DB.GetContext(ctx, &receipt, `SELECT * FROM stock_receipts WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.StockReceipt, error) {
	receipts := []model.StockReceipt{}
	err := r.DB.SelectContext(ctx, &receipts, `SELECT * FROM stock_receipts ORDER BY received_date DESC`)
	return receipts, err
}

func (r *PGRepository) Update(ctx context.Context, receipt *model.StockReceipt) error {
	query := `
        UPDATE stock_receipts
        SET product_id = :product_id,
            dealer_name = :dealer_name,
            buying_price = :buying_price,
            quantity = :quantity,
            supplier_bill_number = :supplier_bill_number,
            lot_number = :lot_number,
            received_date = :received_date,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, receipt)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM stock_receipts WHERE id = $1`, id)
	return err
}
