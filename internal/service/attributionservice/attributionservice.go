package attributionservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/pkg/validate"
)

//go:generate mockgen -source=attributionservice.go -destination=mock_attributionservice.go -package=attributionservice

// maxCacheTTL bounds how long a cached click can outlive a missed invalidation.
const maxCacheTTL = 15 * time.Minute

type Repo interface {
	Upsert(ctx context.Context, a *domain.Attribution) error
	Get(ctx context.Context, visitorID string) (*domain.Attribution, error)
	Delete(ctx context.Context, visitorID string) error
}

type Cache interface {
	Get(ctx context.Context, visitorID string) (*domain.Attribution, error)
	Set(ctx context.Context, a *domain.Attribution, ttl time.Duration) error
	Delete(ctx context.Context, visitorID string) error
}

type Service struct {
	repo  Repo
	cache Cache
	now   func() time.Time
}

// New builds the attribution store. cache may be nil.
func New(repo Repo, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		now:   time.Now,
	}
}

// Set records a click. The newest click always replaces the visitor's previous attribution.
func (s *Service) Set(ctx context.Context, visitorID, affiliateID string, subIDs domain.SubIDs, campaign string) (*domain.Attribution, error) {
	if visitorID == "" {
		return nil, domain.ErrInvalidVisitor
	}
	if affiliateID == "" {
		return nil, domain.ErrInvalidAffiliateID
	}

	now := s.now()
	a := &domain.Attribution{
		VisitorID:   visitorID,
		AffiliateID: affiliateID,
		SubIDs:      FilterSubIDs(subIDs),
		Campaign:    campaign,
		SetAt:       now,
		ExpiresAt:   now.Add(domain.AttributionWindow),
	}
	s.evict(ctx, visitorID)
	if err := s.repo.Upsert(ctx, a); err != nil {
		zap.L().Error("failed to save attribution", zap.Error(err))
		return nil, err
	}
	s.cacheSet(ctx, a)

	zap.L().Debug("attribution set", zap.String("visitor_id", visitorID), zap.String("affiliate_id", affiliateID))
	return a, nil
}

// Get returns nil when the visitor has no live attribution. Expired records are purged.
func (s *Service) Get(ctx context.Context, visitorID string) (*domain.Attribution, error) {
	if visitorID == "" {
		return nil, nil
	}
	now := s.now()

	if s.cache != nil {
		a, err := s.cache.Get(ctx, visitorID)
		if err != nil {
			zap.L().Warn("attribution cache read failed", zap.String("visitor_id", visitorID), zap.Error(err))
		} else if a != nil && !a.Expired(now) {
			return a, nil
		}
	}

	a, err := s.repo.Get(ctx, visitorID)
	if err != nil {
		zap.L().Error("failed to get attribution", zap.Error(err))
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	if a.Expired(now) {
		if err := s.Clear(ctx, visitorID); err != nil {
			return nil, err
		}
		zap.L().Debug("expired attribution purged", zap.String("visitor_id", visitorID))
		return nil, nil
	}
	s.cacheSet(ctx, a)
	return a, nil
}

func (s *Service) Clear(ctx context.Context, visitorID string) error {
	s.evict(ctx, visitorID)
	if err := s.repo.Delete(ctx, visitorID); err != nil {
		zap.L().Error("failed to clear attribution", zap.Error(err))
		return err
	}
	s.evict(ctx, visitorID)
	return nil
}

// cacheSet writes through to the cache. A failed write evicts the key so reads
// fall back to the database instead of an older click.
func (s *Service) cacheSet(ctx context.Context, a *domain.Attribution) {
	if s.cache == nil {
		return
	}
	ttl := a.ExpiresAt.Sub(s.now())
	if ttl > maxCacheTTL {
		ttl = maxCacheTTL
	}
	if err := s.cache.Set(ctx, a, ttl); err != nil {
		zap.L().Warn("attribution cache write failed", zap.String("visitor_id", a.VisitorID), zap.Error(err))
		s.evict(ctx, a.VisitorID)
	}
}

func (s *Service) evict(ctx context.Context, visitorID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, visitorID); err != nil {
		zap.L().Warn("attribution cache delete failed", zap.String("visitor_id", visitorID), zap.Error(err))
	}
}

// FilterSubIDs keeps the sub, sub2..sub5 keys with non-empty values.
func FilterSubIDs(in domain.SubIDs) domain.SubIDs {
	out := domain.SubIDs{}
	for k, v := range in {
		if v != "" && validate.IsSubIDKey(k) {
			out[k] = v
		}
	}
	return out
}
