package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anfer-esquadrias/orcamentos/internal/platform/cache"
	"github.com/anfer-esquadrias/orcamentos/internal/quotations"
)

type Service struct {
	repo   Repository
	cache  *cache.SettingsCache
	logger *slog.Logger
}

// NewService builds the settings service. cache may be nil; reads then
// always hit the repository.
func NewService(repo Repository, snapshotCache *cache.SettingsCache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: snapshotCache, logger: logger}
}

// Get returns the settings document, writing the defaults on first read so
// the business always has something to print.
func (s *Service) Get(ctx context.Context) (*Settings, error) {
	if data, err := s.cache.Get(ctx); err == nil {
		var cached Settings
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		s.logger.Warn("discarding bad settings snapshot")
	}

	stored, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		defaults := Defaults()
		if err := s.repo.Save(ctx, defaults); err != nil {
			return nil, fmt.Errorf("seed default settings: %w", err)
		}
		stored = &defaults
	} else if err != nil {
		return nil, err
	}

	s.cacheSnapshot(ctx, *stored)
	return stored, nil
}

// Save overwrites the settings document wholesale.
func (s *Service) Save(ctx context.Context, settings Settings) error {
	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidate settings snapshot", slog.Any("error", err))
	}
	return nil
}

// PaymentInfo satisfies quotations.PaymentInfoProvider.
func (s *Service) PaymentInfo(ctx context.Context) (quotations.PaymentInfo, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return quotations.PaymentInfo{}, err
	}
	return settings.PaymentInfo, nil
}

func (s *Service) cacheSnapshot(ctx context.Context, settings Settings) {
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, data); err != nil {
		s.logger.Warn("cache settings snapshot", slog.Any("error", err))
	}
}
