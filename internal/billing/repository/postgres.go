package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/kiranadev/inventory-billing-service/internal/apperr"
	"github.com/kiranadev/inventory-billing-service/internal/model"
)

const uniqueViolation = "23505"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, bill *model.Bill) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertBill := `
        INSERT INTO bills (id, bill_number, customer_name, address, mobile_number, payment_mode, created_at)
        VALUES (:id, :bill_number, :customer_name, :address, :mobile_number, :payment_mode, :created_at)
    `
	if _, err := tx.NamedExecContext(ctx, insertBill, bill); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperr.Wrap(apperr.ErrDuplicateBillNumber, "bill number %s", bill.BillNumber)
		}
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	insertItem := `
        INSERT INTO bill_items (id, bill_id, product_id, quantity)
        VALUES (:id, :bill_id, :product_id, :quantity)
    `
	for i := range bill.Items {
		if _, err := tx.NamedExecContext(ctx, insertItem, &bill.Items[i]); err != nil {
			return fmt.Errorf("failed to insert bill item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Bill, error) {
	var bill model.Bill
	err := r.DB.GetContext(ctx, &bill, `SELECT * FROM bills WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	err = r.DB.SelectContext(ctx, &bill.Items,
		`SELECT * FROM bill_items WHERE bill_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Bill, error) {
	bills := []model.Bill{}
	err := r.DB.SelectContext(ctx, &bills, `SELECT * FROM bills ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return bills, nil
	}

	ids := make([]string, len(bills))
	index := make(map[string]int, len(bills))
	for i, b := range bills {
		ids[i] = b.ID
		index[b.ID] = i
	}

	query, args, err := sqlx.In(`SELECT * FROM bill_items WHERE bill_id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	var items []model.BillItem
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	for _, item := range items {
		i := index[item.BillID]
		bills[i].Items = append(bills[i].Items, item)
	}
	return bills, nil
}

func (r *PGRepository) ListNumbersInRange(ctx context.Context, low, high string) ([]string, error) {
	numbers := []string{}
	err := r.DB.SelectContext(ctx, &numbers, `
        SELECT bill_number FROM bills
        WHERE bill_number >= $1 AND bill_number < $2
        ORDER BY bill_number DESC
    `, low, high)
	return numbers, err
}
