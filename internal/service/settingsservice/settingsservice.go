package settingsservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	cacheKey           = "referral:settings:v2"
	defaultHistorySize = 50
)

type Repo interface {
	Get(ctx context.Context) (*domain.RateTable, error)
	GetForUpdate(ctx context.Context) (*domain.RateTable, error)
	Save(ctx context.Context, previous, current domain.RateTable, adminID uuid.UUID) (*domain.RateTable, error)
	ListAudit(ctx context.Context, limit int) ([]domain.SettingsAudit, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Service struct {
	repo      Repo
	cache     Cache
	cacheTTL  time.Duration
	txManager pg.TXManager
}

// New builds the settings store. cache may be nil, in which case every read
// goes to the database.
func New(repo Repo, cache Cache, cacheTTL time.Duration, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		txManager: txManager,
	}
}

// Get returns the current rate table. Rates never configured read as zero.
func (s *Service) Get(ctx context.Context) (*domain.RateTable, error) {
	if s.cache != nil {
		var cached domain.RateTable
		found, err := s.cache.Get(ctx, cacheKey, &cached)
		if err == nil && found {
			return &cached, nil
		}
	}

	table, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, *table)
	return table, nil
}

// Update merges the provided rates into the table and records who changed it.
// Concurrent updates are serialized by a row lock and the last one wins.
func (s *Service) Update(ctx context.Context, update domain.RateUpdate, adminID uuid.UUID) (*domain.RateTable, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.RateTable
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		next := update.Apply(*current)
		saved, err = s.repo.Save(ctx, *current, next, adminID)
		if err != nil {
			return err
		}
		pg.AfterCommit(ctx, func(ctx context.Context) {
			s.store(ctx, *saved)
		})
		return nil
	})
	if err != nil {
		zap.L().Error("failed to update referral settings", zap.Error(err))
		return nil, err
	}

	zap.L().Info("referral settings updated",
		zap.String("adminID", adminID.String()),
		zap.String("property", saved.PropertyRate.String()),
		zap.String("equipment", saved.EquipmentRate.String()),
		zap.String("market", saved.MarketRate.String()),
		zap.String("greenEnergy", saved.GreenEnergyRate.String()))
	return saved, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]domain.SettingsAudit, error) {
	if limit <= 0 {
		limit = defaultHistorySize
	}
	return s.repo.ListAudit(ctx, limit)
}

func (s *Service) store(ctx context.Context, table domain.RateTable) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey, table, s.cacheTTL); err != nil {
		// a failed refresh must not leave an older table behind
		_ = s.cache.Delete(ctx, cacheKey)
	}
}
