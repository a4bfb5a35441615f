package quotations

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/anfer-esquadrias/orcamentos/internal/customers"
	"github.com/anfer-esquadrias/orcamentos/internal/platform/httpx"
)

// PDFQueue enqueues a background pre-render of a quotation's document.
// Enqueue failures are logged and otherwise ignored; the PDF endpoint can
// always render synchronously.
type PDFQueue interface {
	EnqueuePDFPrerender(ctx context.Context, quotationID string) error
}

// PDFInvalidator drops a cached document after its quotation changes.
type PDFInvalidator interface {
	Invalidate(ctx context.Context, quotationID string) error
}

type Handler struct {
	logger      *slog.Logger
	service     *Service
	pdfQueue    PDFQueue
	invalidator PDFInvalidator
}

func NewHandler(logger *slog.Logger, service *Service, pdfQueue PDFQueue, invalidator PDFInvalidator) *Handler {
	return &Handler{
		logger:      logger,
		service:     service,
		pdfQueue:    pdfQueue,
		invalidator: invalidator,
	}
}

// MountRoutes registers quotation routes. The PDF route is mounted
// separately by the report handler.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.service.List(r.Context(), ListQuotationsRequest{
		Search: r.URL.Query().Get("q"),
	})
	if err != nil {
		h.logger.Error("list quotations", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if quotations == nil {
		quotations = []Quotation{}
	}
	httpx.JSON(w, http.StatusOK, quotations)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondErr(w, "get quotation", err)
		return
	}
	httpx.JSON(w, http.StatusOK, quotation)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req SaveQuotationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	quotation, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondErr(w, "create quotation", err)
		return
	}
	h.refreshPDF(r.Context(), quotation.ID)
	httpx.JSON(w, http.StatusCreated, quotation)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req SaveQuotationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	quotation, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondErr(w, "update quotation", err)
		return
	}
	h.refreshPDF(r.Context(), quotation.ID)
	httpx.JSON(w, http.StatusOK, quotation)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondErr(w, "delete quotation", err)
		return
	}
	if h.invalidator != nil {
		if err := h.invalidator.Invalidate(r.Context(), id); err != nil {
			h.logger.Warn("invalidate pdf cache", slog.Any("error", err))
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// refreshPDF drops the stale cached document and schedules a fresh render.
func (h *Handler) refreshPDF(ctx context.Context, id string) {
	if h.invalidator != nil {
		if err := h.invalidator.Invalidate(ctx, id); err != nil {
			h.logger.Warn("invalidate pdf cache", slog.Any("error", err))
		}
	}
	if h.pdfQueue != nil {
		if err := h.pdfQueue.EnqueuePDFPrerender(ctx, id); err != nil {
			h.logger.Warn("enqueue pdf prerender", slog.Any("error", err))
		}
	}
}

func (h *Handler) respondErr(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, slog.Any("error", err))
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", "quotation not found")
	case errors.Is(err, customers.ErrNotFound):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "customer not found")
	case errors.As(err, &verr):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		httpx.RespondError(w, err)
	}
}
