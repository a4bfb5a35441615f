package legacy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/products"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
)

// Migrator re-saves every record of a legacy export through the live
// repositories. Each save is an upsert keyed by the record's original id, so
// running the migration twice is harmless.
type Migrator struct {
	logger     *slog.Logger
	quotations quotations.Repository
	customers  customers.Repository
	products   products.Repository
	settings   settings.Repository
}

func NewMigrator(logger *slog.Logger, q quotations.Repository, c customers.Repository, p products.Repository, s settings.Repository) *Migrator {
	return &Migrator{logger: logger, quotations: q, customers: c, products: p, settings: s}
}

// Run migrates the export. It stops at the first failing record; rerunning
// after fixing the cause resumes safely because completed upserts are
// idempotent.
func (m *Migrator) Run(ctx context.Context, store *Store) error {
	for _, q := range store.Quotations {
		if err := m.quotations.Save(ctx, q); err != nil {
			return fmt.Errorf("migrate quotation %s: %w", q.ID, err)
		}
	}
	m.logger.Info("migrated quotations", slog.Int("count", len(store.Quotations)))

	for _, c := range store.Customers {
		if err := m.customers.Save(ctx, c); err != nil {
			return fmt.Errorf("migrate customer %s: %w", c.ID, err)
		}
	}
	m.logger.Info("migrated customers", slog.Int("count", len(store.Customers)))

	for _, p := range store.Products {
		if err := m.products.Save(ctx, p); err != nil {
			return fmt.Errorf("migrate product %s: %w", p.ID, err)
		}
	}
	m.logger.Info("migrated products", slog.Int("count", len(store.Products)))

	if store.Settings != nil {
		if err := m.settings.Save(ctx, *store.Settings); err != nil {
			return fmt.Errorf("migrate settings: %w", err)
		}
		m.logger.Info("migrated settings")
	}

	if store.NextNumber != "" {
		// The counter row is seeded from COUNTER_SEED on first use, not
		// from the export. Surface the exported value so the operator can
		// align the configuration before the server hands out numbers.
		m.logger.Info("export carries a quotation counter; set COUNTER_SEED accordingly",
			slog.String("next_number", store.NextNumber))
	}
	return nil
}
