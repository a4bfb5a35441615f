package quotations

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

const counterID = "quotation_counter"

// Repository persists quotations as one document per row, upserted
// wholesale, listed in descending date order. NextNumber allocates the
// sequential display number from the counter row.
type Repository interface {
	List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, error)
	Get(ctx context.Context, id string) (*Quotation, error)
	Save(ctx context.Context, quotation Quotation) error
	Delete(ctx context.Context, id string) error
	NextNumber(ctx context.Context) (string, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	seed int64
}

// NewRepository builds the quotation repository. seed is the first number
// handed out when the counter row does not exist yet; the business was
// already partway through a paper sequence.
func NewRepository(pool *pgxpool.Pool, seed int64) Repository {
	return &repository{db: pool, seed: seed}
}

func (r *repository) List(ctx context.Context, req ListQuotationsRequest) ([]Quotation, error) {
	query := `SELECT id, doc FROM quotations`
	var args []interface{}
	if req.Search != "" {
		query += ` WHERE number ILIKE $1
			OR customer_name ILIKE $1
			OR date ILIKE $1`
		args = append(args, "%"+req.Search+"%")
	}
	query += ` ORDER BY date DESC, number DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []Quotation
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, q)
	}
	return quotations, rows.Err()
}

func (r *repository) Get(ctx context.Context, id string) (*Quotation, error) {
	row := r.db.QueryRow(ctx, `SELECT id, doc FROM quotations WHERE id = $1`, id)
	q, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) Save(ctx context.Context, quotation Quotation) error {
	doc, err := json.Marshal(quotation)
	if err != nil {
		return fmt.Errorf("marshal quotation: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO quotations (id, number, date, customer_name, doc, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id)
		DO UPDATE SET number = EXCLUDED.number, date = EXCLUDED.date,
		              customer_name = EXCLUDED.customer_name,
		              doc = EXCLUDED.doc, updated_at = NOW()
	`, quotation.ID, quotation.Number, quotation.Date, quotation.Customer.Name, doc)
	return err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// NextNumber reads and advances the counter in a single statement, so two
// concurrent saves can never be handed the same number.
func (r *repository) NextNumber(ctx context.Context) (string, error) {
	var current int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO quotation_counter (id, next_number)
		VALUES ($1, $2 + 1)
		ON CONFLICT (id)
		DO UPDATE SET next_number = quotation_counter.next_number + 1
		RETURNING next_number - 1
	`, counterID, r.seed).Scan(&current)
	if err != nil {
		return "", fmt.Errorf("advance counter: %w", err)
	}
	return fmt.Sprintf("%04d", current), nil
}

func scanQuotation(row pgx.Row) (Quotation, error) {
	var id string
	var doc []byte
	if err := row.Scan(&id, &doc); err != nil {
		return Quotation{}, err
	}
	var q Quotation
	if err := json.Unmarshal(doc, &q); err != nil {
		return Quotation{}, fmt.Errorf("unmarshal quotation %s: %w", id, err)
	}
	q.ID = id
	return q, nil
}
