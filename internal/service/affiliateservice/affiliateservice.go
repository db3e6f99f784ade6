package affiliateservice

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/domain"
	"github.com/GlebRadaev/afftrack/pkg/money"
)

//go:generate mockgen -source=affiliateservice.go -destination=mock_affiliateservice.go -package=affiliateservice

const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

type Repo interface {
	Create(ctx context.Context, a *domain.AffiliateAccount, defaultLink *domain.AffiliateLink) error
	Get(ctx context.Context, affiliateID string) (*domain.AffiliateAccount, error)
	UpdateStatus(ctx context.Context, affiliateID string, status domain.AffiliateStatus) (*domain.AffiliateAccount, error)
	CreateLink(ctx context.Context, l *domain.AffiliateLink) error
	GetLink(ctx context.Context, linkID string) (*domain.AffiliateLink, error)
	ListLinks(ctx context.Context, affiliateID string) ([]domain.AffiliateLink, error)
	DeleteLink(ctx context.Context, linkID string) (bool, error)
}

type PostbackRepo interface {
	CreateConfig(ctx context.Context, c *domain.PostbackConfig) error
	ListConfigs(ctx context.Context, affiliateID string) ([]domain.PostbackConfig, error)
	SetEnabled(ctx context.Context, configID string, enabled bool) (*domain.PostbackConfig, error)
	DeleteConfig(ctx context.Context, configID string) (bool, error)
	ListLogs(ctx context.Context, affiliateID string, limit int) ([]domain.PostbackLog, error)
}

type Hasher interface {
	Hash(credential string) (string, error)
}

type Service struct {
	repo      Repo
	postbacks PostbackRepo
	hasher    Hasher
	baseURL   string
	now       func() time.Time
}

func New(repo Repo, postbacks PostbackRepo, hasher Hasher, baseURL string) *Service {
	return &Service{
		repo:      repo,
		postbacks: postbacks,
		hasher:    hasher,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

type CreateAffiliateRequest struct {
	AffiliateID         string
	Name                string
	Email               string
	Status              domain.AffiliateStatus
	DefaultPayoutType   domain.PayoutType
	DefaultPayoutAmount decimal.Decimal
	Credential          string
}

type CreateLinkRequest struct {
	Name         string
	PayoutType   domain.PayoutType
	PayoutAmount decimal.Decimal
	CustomPrice  *decimal.Decimal
}

// ValidatePayout rejects payouts that could never produce a sensible commission.
// Amounts are stored in cents, so anything that rounds to zero is rejected too.
func ValidatePayout(payoutType domain.PayoutType, amount decimal.Decimal) error {
	if !payoutType.Valid() {
		return domain.ErrInvalidPayoutType
	}
	if !money.Round(amount).IsPositive() {
		return domain.ErrInvalidPayout
	}
	if payoutType == domain.PayoutPercentage && amount.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidPayout
	}
	return nil
}

// CreateAffiliate stores the account together with its default link and an empty balance.
func (s *Service) CreateAffiliate(ctx context.Context, req CreateAffiliateRequest) (*domain.AffiliateAccount, *domain.AffiliateLink, error) {
	req.AffiliateID = strings.TrimSpace(req.AffiliateID)
	if req.AffiliateID == "" {
		return nil, nil, domain.ErrInvalidAffiliateID
	}
	if req.Status == "" {
		req.Status = domain.AffiliatePending
	}
	if !req.Status.Valid() {
		return nil, nil, domain.ErrInvalidStatus
	}
	if err := ValidatePayout(req.DefaultPayoutType, req.DefaultPayoutAmount); err != nil {
		return nil, nil, err
	}

	existing, err := s.repo.Get(ctx, req.AffiliateID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		zap.L().Info("affiliate already exists", zap.String("affiliate_id", req.AffiliateID))
		return nil, nil, domain.ErrAffiliateExists
	}

	var hash string
	if req.Credential != "" {
		if hash, err = s.hasher.Hash(req.Credential); err != nil {
			zap.L().Error("can't hash credential", zap.Error(err))
			return nil, nil, err
		}
	}

	now := s.now()
	account := &domain.AffiliateAccount{
		AffiliateID:         req.AffiliateID,
		Name:                req.Name,
		Email:               req.Email,
		Status:              req.Status,
		DefaultPayoutType:   req.DefaultPayoutType,
		DefaultPayoutAmount: req.DefaultPayoutAmount,
		CredentialHash:      hash,
		CreatedAt:           now,
	}
	link := s.newLink(account.AffiliateID, "Default", req.DefaultPayoutType, req.DefaultPayoutAmount, nil, now)
	link.IsDefault = true

	if err := s.repo.Create(ctx, account, link); err != nil {
		zap.L().Error("can't create affiliate", zap.String("affiliate_id", account.AffiliateID), zap.Error(err))
		return nil, nil, err
	}
	zap.L().Info("affiliate created", zap.String("affiliate_id", account.AffiliateID), zap.String("default_link", link.LinkID))
	return account, link, nil
}

func (s *Service) GetAffiliate(ctx context.Context, affiliateID string) (*domain.AffiliateAccount, error) {
	a, err := s.repo.Get(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAffiliateNotFound
	}
	return a, nil
}

func (s *Service) UpdateStatus(ctx context.Context, affiliateID string, status domain.AffiliateStatus) (*domain.AffiliateAccount, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	a, err := s.repo.UpdateStatus(ctx, affiliateID, status)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAffiliateNotFound
	}
	zap.L().Info("affiliate status changed", zap.String("affiliate_id", affiliateID), zap.String("status", string(status)))
	return a, nil
}

// CreateLink adds a non-default link. Missing payout fields inherit the affiliate's defaults.
func (s *Service) CreateLink(ctx context.Context, affiliateID string, req CreateLinkRequest) (*domain.AffiliateLink, error) {
	a, err := s.GetAffiliate(ctx, affiliateID)
	if err != nil {
		return nil, err
	}
	if req.PayoutType == "" {
		req.PayoutType, req.PayoutAmount = a.DefaultPayoutType, a.DefaultPayoutAmount
	}
	if err := ValidatePayout(req.PayoutType, req.PayoutAmount); err != nil {
		return nil, err
	}
	if req.CustomPrice != nil && !money.Round(*req.CustomPrice).IsPositive() {
		return nil, domain.ErrInvalidCustomPrice
	}
	if req.CustomPrice != nil {
		price := money.Round(*req.CustomPrice)
		req.CustomPrice = &price
	}

	link := s.newLink(affiliateID, req.Name, req.PayoutType, req.PayoutAmount, req.CustomPrice, s.now())
	if err := s.repo.CreateLink(ctx, link); err != nil {
		zap.L().Error("can't create link", zap.String("affiliate_id", affiliateID), zap.Error(err))
		return nil, err
	}
	return link, nil
}

func (s *Service) ListLinks(ctx context.Context, affiliateID string) ([]domain.AffiliateLink, error) {
	return s.repo.ListLinks(ctx, affiliateID)
}

func (s *Service) DeleteLink(ctx context.Context, affiliateID, linkID string) error {
	link, err := s.repo.GetLink(ctx, linkID)
	if err != nil {
		return err
	}
	if link == nil || link.AffiliateID != affiliateID {
		return domain.ErrLinkNotFound
	}
	if link.IsDefault {
		return domain.ErrDefaultLinkDelete
	}
	deleted, err := s.repo.DeleteLink(ctx, linkID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrLinkNotFound
	}
	return nil
}

func (s *Service) CreatePostbackConfig(ctx context.Context, affiliateID string, eventType domain.EventType, template string) (*domain.PostbackConfig, error) {
	if !eventType.Valid() {
		return nil, domain.ErrUnknownEventType
	}
	template = strings.TrimSpace(template)
	if template == "" {
		return nil, domain.ErrEmptyTemplate
	}
	if _, err := s.GetAffiliate(ctx, affiliateID); err != nil {
		return nil, err
	}

	c := &domain.PostbackConfig{
		ID:          "pbc_" + uuid.NewString(),
		AffiliateID: affiliateID,
		EventType:   eventType,
		URLTemplate: template,
		Enabled:     true,
		CreatedAt:   s.now(),
	}
	if err := s.postbacks.CreateConfig(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListPostbackConfigs(ctx context.Context, affiliateID string) ([]domain.PostbackConfig, error) {
	return s.postbacks.ListConfigs(ctx, affiliateID)
}

func (s *Service) SetPostbackEnabled(ctx context.Context, configID string, enabled bool) (*domain.PostbackConfig, error) {
	c, err := s.postbacks.SetEnabled(ctx, configID, enabled)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrConfigNotFound
	}
	return c, nil
}

func (s *Service) DeletePostbackConfig(ctx context.Context, configID string) error {
	deleted, err := s.postbacks.DeleteConfig(ctx, configID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrConfigNotFound
	}
	return nil
}

func (s *Service) ListPostbackLogs(ctx context.Context, affiliateID string, limit int) ([]domain.PostbackLog, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}
	if limit > MaxLogLimit {
		limit = MaxLogLimit
	}
	return s.postbacks.ListLogs(ctx, affiliateID, limit)
}

func (s *Service) newLink(affiliateID, name string, payoutType domain.PayoutType, payoutAmount decimal.Decimal,
	customPrice *decimal.Decimal, now time.Time) *domain.AffiliateLink {
	linkID := "lnk_" + uuid.NewString()
	return &domain.AffiliateLink{
		LinkID:       linkID,
		AffiliateID:  affiliateID,
		Name:         name,
		PayoutType:   payoutType,
		PayoutAmount: payoutAmount,
		CustomPrice:  customPrice,
		TrackingURL:  TrackingURL(s.baseURL, affiliateID, linkID),
		CreatedAt:    now,
	}
}

// TrackingURL appends the ref and link parameters a click carries back to the tracker.
func TrackingURL(baseURL, affiliateID, linkID string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Set("ref", affiliateID)
	q.Set("link", linkID)
	u.RawQuery = q.Encode()
	return u.String()
}
