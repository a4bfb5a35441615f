package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a cached entry does not exist.
var ErrMiss = errors.New("platform/cache: miss")

// PDFCache stores rendered quotation PDFs so the download endpoint does not
// have to call the renderer for documents that have not changed since the
// last save.
type PDFCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPDFCache builds a PDF cache with the given entry TTL.
func NewPDFCache(client *redis.Client, ttl time.Duration) *PDFCache {
	return &PDFCache{client: client, ttl: ttl}
}

func pdfKey(quotationID string) string {
	return "pdf:" + quotationID
}

// Get returns the cached PDF bytes for a quotation, or ErrMiss.
func (c *PDFCache) Get(ctx context.Context, quotationID string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, ErrMiss
	}
	data, err := c.client.Get(ctx, pdfKey(quotationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores rendered PDF bytes for a quotation.
func (c *PDFCache) Set(ctx context.Context, quotationID string, data []byte) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, pdfKey(quotationID), data, c.ttl).Err()
}

// Invalidate drops the cached PDF after a quotation changes.
func (c *PDFCache) Invalidate(ctx context.Context, quotationID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, pdfKey(quotationID)).Err()
}
