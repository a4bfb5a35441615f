package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/anfer-esquadrias/orcamentos/internal/platform/cache"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
	"github.com/anfer-esquadrias/orcamentos/report"
)

const (
	QueueDefault = "default"

	TaskTypePDFPrerender = "pdf:prerender"
)

// PDFPrerenderPayload identifies the quotation whose document should be
// rendered ahead of the first download.
type PDFPrerenderPayload struct {
	QuotationID string `json:"quotation_id"`
}

// NewPDFPrerenderTask builds the pre-render task for a quotation.
func NewPDFPrerenderTask(quotationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PDFPrerenderPayload{QuotationID: quotationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePDFPrerender, payload, asynq.Queue(QueueDefault)), nil
}

// Enqueuer submits background tasks. It satisfies quotations.PDFQueue.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueuePDFPrerender schedules a background render of the quotation's PDF.
func (e *Enqueuer) EnqueuePDFPrerender(ctx context.Context, quotationID string) error {
	task, err := NewPDFPrerenderTask(quotationID)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue pdf prerender: %w", err)
	}
	return nil
}

// PDFPrerenderHandler renders a quotation document in the background and
// stores it in the PDF cache so the first download is served warm.
type PDFPrerenderHandler struct {
	logger     *slog.Logger
	quotations *quotations.Service
	settings   *settings.Service
	generator  *report.Generator
	pdfCache   *cache.PDFCache
}

func NewPDFPrerenderHandler(logger *slog.Logger, q *quotations.Service, s *settings.Service, g *report.Generator, pdfCache *cache.PDFCache) *PDFPrerenderHandler {
	return &PDFPrerenderHandler{logger: logger, quotations: q, settings: s, generator: g, pdfCache: pdfCache}
}

// ProcessTask handles a TaskTypePDFPrerender task.
func (h *PDFPrerenderHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload PDFPrerenderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	quotation, err := h.quotations.Get(ctx, payload.QuotationID)
	if err != nil {
		// Deleted before the worker got to it. Nothing to render.
		if errors.Is(err, quotations.ErrNotFound) {
			h.logger.Info("skip prerender for missing quotation",
				slog.String("quotation_id", payload.QuotationID))
			return nil
		}
		return err
	}

	cfg, err := h.settings.Get(ctx)
	if err != nil {
		return err
	}

	pdf, err := h.generator.Generate(ctx, quotation, *cfg)
	if err != nil {
		return err
	}
	if err := h.pdfCache.Set(ctx, quotation.ID, pdf); err != nil {
		return fmt.Errorf("cache prerendered pdf: %w", err)
	}

	h.logger.Info("prerendered quotation pdf",
		slog.String("quotation_id", quotation.ID),
		slog.String("number", quotation.Number))
	return nil
}
