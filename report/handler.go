package report

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anfer-esquadrias/orcamentos/internal/platform/cache"
	"github.com/anfer-esquadrias/orcamentos/internal/platform/httpx"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
	"github.com/anfer-esquadrias/orcamentos/internal/settings"
)

// Handler serves rendered quotation PDFs.
type Handler struct {
	logger     *slog.Logger
	quotations *quotations.Service
	settings   *settings.Service
	generator  *Generator
	pdfCache   *cache.PDFCache
}

func NewHandler(logger *slog.Logger, q *quotations.Service, s *settings.Service, g *Generator, pdfCache *cache.PDFCache) *Handler {
	return &Handler{logger: logger, quotations: q, settings: s, generator: g, pdfCache: pdfCache}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/quotations/{id}/pdf", h.quotationPDF)
	r.Get("/ping", h.ping)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.generator.client.Ping(r.Context()); err != nil {
		h.logger.Error("gotenberg ping", slog.Any("error", err))
		httpx.Problem(w, http.StatusServiceUnavailable, "Service Unavailable", "document renderer is not reachable")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// quotationPDF serves the PDF for a quotation, rendering on demand and
// caching the result. ?mode=print serves inline so the browser opens its
// print dialog; the default is a download.
func (h *Handler) quotationPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quotation, err := h.quotations.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, quotations.ErrNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", "quotation not found")
			return
		}
		h.logger.Error("load quotation for pdf", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	pdf, err := h.pdfCache.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			h.logger.Warn("pdf cache read", slog.Any("error", err))
		}
		cfg, err := h.settings.Get(r.Context())
		if err != nil {
			h.logger.Error("load settings for pdf", slog.Any("error", err))
			httpx.RespondError(w, err)
			return
		}
		pdf, err = h.generator.Generate(r.Context(), quotation, *cfg)
		if err != nil {
			h.logger.Error("generate pdf", slog.Any("error", err))
			httpx.Problem(w, http.StatusBadGateway, "Bad Gateway", "document renderer failed")
			return
		}
		if err := h.pdfCache.Set(r.Context(), id, pdf); err != nil {
			h.logger.Warn("pdf cache write", slog.Any("error", err))
		}
	}

	disposition := "attachment"
	if r.URL.Query().Get("mode") == "print" {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, Filename(quotation)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
