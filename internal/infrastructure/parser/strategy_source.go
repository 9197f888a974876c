package parser

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"WahalaIndex/internal/config"
	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/ports"
	"WahalaIndex/internal/scanner"
)

// StrategySource implements HeadlineSource via registered scanner strategies.
type StrategySource struct {
	registry  *scanner.Registry
	sites     []config.SiteConfig
	userAgent string
	limiter   *rate.Limiter
	logger    *slog.Logger
}

var _ ports.HeadlineSource = (*StrategySource)(nil)

// NewStrategySource wires scanner registry with config-defined sites. A nil
// limiter disables pacing.
func NewStrategySource(reg *scanner.Registry, sites []config.SiteConfig, userAgent string, limiter *rate.Limiter, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry:  reg,
		sites:     sites,
		userAgent: userAgent,
		limiter:   limiter,
		logger:    log,
	}
}

// FetchAll scans every configured site in order. A site that cannot be
// scanned contributes an empty batch and a warning.
func (s *StrategySource) FetchAll(ctx context.Context) []domain.SourceBatch {
	s.debug("fetch all", "sites", len(s.sites))

	batches := make([]domain.SourceBatch, 0, len(s.sites))
	for _, site := range s.sites {
		batch := domain.SourceBatch{Source: site.Name}
		batch.Candidates = s.scanSite(ctx, site)
		s.debug("site produced candidates", "site", site.Name, "count", len(batch.Candidates))
		batches = append(batches, batch)
	}

	return batches
}

func (s *StrategySource) scanSite(ctx context.Context, site config.SiteConfig) []string {
	if s.registry == nil {
		s.warn("scanner registry is not configured", "site", site.Name)
		return nil
	}

	strategy, err := s.registry.Resolve(site.Scanner)
	if err != nil {
		s.warn("skip site", "site", site.Name, "error", err)
		return nil
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			s.warn("skip site", "site", site.Name, "error", err)
			return nil
		}
	}

	results, err := strategy.Scan(ctx, scanner.Request{
		SiteName:  site.Name,
		URL:       site.URL,
		UserAgent: s.userAgent,
		Options:   site.Options,
	})
	if err != nil {
		s.warn("scan site failed", "site", site.Name, "error", err)
		return nil
	}
	return results
}

func (s *StrategySource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *StrategySource) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
