package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("record not found")

// Repository persists customers as one document per row, upserted wholesale.
// Writes are last-write-wins; there is no partial update.
type Repository interface {
	List(ctx context.Context, req ListCustomersRequest) ([]Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Save(ctx context.Context, customer Customer) error
	Delete(ctx context.Context, id string) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context, req ListCustomersRequest) ([]Customer, error) {
	query := `SELECT id, doc FROM customers`
	var args []interface{}
	if req.Search != "" {
		query += ` WHERE name ILIKE $1
			OR doc->>'address' ILIKE $1
			OR doc->>'contact' ILIKE $1
			OR doc->>'email' ILIKE $1`
		args = append(args, "%"+req.Search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, doc FROM customers WHERE id = $1`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Save(ctx context.Context, customer Customer) error {
	doc, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO customers (id, name, doc, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, doc = EXCLUDED.doc, updated_at = NOW()
	`, customer.ID, customer.Name, doc)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (Customer, error) {
	var id string
	var doc []byte
	if err := row.Scan(&id, &doc); err != nil {
		return Customer{}, err
	}
	var c Customer
	if err := json.Unmarshal(doc, &c); err != nil {
		return Customer{}, fmt.Errorf("unmarshal customer %s: %w", id, err)
	}
	c.ID = id
	return c, nil
}
