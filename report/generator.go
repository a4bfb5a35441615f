package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anfer-esquadrias/orcamentos/internal/observability"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
)

// Generator turns a quotation into PDF bytes via Gotenberg.
type Generator struct {
	client  *Client
	metrics *observability.Metrics
	logger  *slog.Logger
}

func NewGenerator(client *Client, metrics *observability.Metrics, logger *slog.Logger) *Generator {
	return &Generator{client: client, metrics: metrics, logger: logger}
}

// Generate renders the quotation document and converts it to PDF.
func (g *Generator) Generate(ctx context.Context, q *quotations.Quotation, cfg settings.Settings) ([]byte, error) {
	html, err := BuildHTML(q, cfg)
	if err != nil {
		g.metrics.ObservePDFRender("error")
		return nil, err
	}
	pdf, err := g.client.RenderHTML(ctx, html)
	if err != nil {
		g.metrics.ObservePDFRender("error")
		return nil, fmt.Errorf("convert quotation %s: %w", q.Number, err)
	}
	g.metrics.ObservePDFRender("ok")
	g.logger.Debug("rendered quotation pdf",
		slog.String("number", q.Number),
		slog.Int("bytes", len(pdf)))
	return pdf, nil
}
