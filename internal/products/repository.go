package products

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

// Repository persists products as one document per row, upserted wholesale.
type Repository interface {
	List(ctx context.Context, req ListProductsRequest) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Save(ctx context.Context, product Product) error
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
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

func (r *repository) List(ctx context.Context, req ListProductsRequest) ([]Product, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	if req.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(doc->>'description' ILIKE $%d OR doc->>'category' ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+req.Search+"%")
		argPos++
	}
	if req.Category != "" {
		conditions = append(conditions, fmt.Sprintf("doc->>'category' = $%d", argPos))
		args = append(args, req.Category)
		argPos++
	}

	query := `SELECT id, doc FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + conditions[0]
		for i := 1; i < len(conditions); i++ {
			query += " AND " + conditions[i]
		}
	}
	query += ` ORDER BY doc->>'category', doc->>'description'`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, `SELECT id, doc FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Save(ctx context.Context, product Product) error {
	doc, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO products (id, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, product.ID, doc)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT doc->>'category' FROM products
		WHERE doc->>'category' <> '' ORDER BY 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanProduct(row pgx.Row) (Product, error) {
	var id string
	var doc []byte
	if err := row.Scan(&id, &doc); err != nil {
		return Product{}, err
	}
	var p Product
	if err := json.Unmarshal(doc, &p); err != nil {
		return Product{}, fmt.Errorf("unmarshal product %s: %w", id, err)
	}
	p.ID = id
	return p, nil
}
