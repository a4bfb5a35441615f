package settings

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

const settingsID = "app_settings"

// Repository stores the single settings document. The quotation counter
// lives in its own row and is owned by the quotations repository; the two
// fixed documents never share a write.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings Settings) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT doc FROM settings WHERE id = $1`, settingsID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var s Settings
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &s, nil
}

func (r *repository) Save(ctx context.Context, settings Settings) error {
	doc, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO settings (id, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()
	`, settingsID, doc)
	return err
}
