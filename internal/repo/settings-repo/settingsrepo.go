package settingsrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const settingsQuery = `
	SELECT property_rate, equipment_rate, market_rate, green_energy_rate, updated_by, updated_at
	FROM referral_settings
	WHERE id = 1
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) get(ctx context.Context, query string) (*domain.RateTable, error) {
	var t domain.RateTable
	err := r.db.QueryRow(ctx, query).Scan(&t.PropertyRate, &t.EquipmentRate, &t.MarketRate, &t.GreenEnergyRate, &t.UpdatedBy, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.RateTable{}, nil
		}
		zap.L().Error("failed to get referral settings", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// Get returns the current rates. An unconfigured store yields all zero rates.
func (r *Repository) Get(ctx context.Context) (*domain.RateTable, error) {
	return r.get(ctx, settingsQuery)
}

func (r *Repository) GetForUpdate(ctx context.Context) (*domain.RateTable, error) {
	return r.get(ctx, settingsQuery+" FOR UPDATE")
}

// Save overwrites the settings row and records the change in the audit table.
func (r *Repository) Save(ctx context.Context, previous, current domain.RateTable, adminID uuid.UUID) (*domain.RateTable, error) {
	upsert := `
		INSERT INTO referral_settings (id, property_rate, equipment_rate, market_rate, green_energy_rate, updated_by, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			property_rate = EXCLUDED.property_rate,
			equipment_rate = EXCLUDED.equipment_rate,
			market_rate = EXCLUDED.market_rate,
			green_energy_rate = EXCLUDED.green_energy_rate,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`
	audit := `
		INSERT INTO referral_settings_audit (previous, current, updated_by)
		VALUES ($1, $2, $3)
	`

	saved := current
	saved.UpdatedBy = &adminID
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, upsert, current.PropertyRate, current.EquipmentRate, current.MarketRate, current.GreenEnergyRate, adminID).
			Scan(&saved.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to save referral settings", zap.Error(err))
			return err
		}

		prevJSON, err := json.Marshal(previous)
		if err != nil {
			return fmt.Errorf("marshal previous settings: %w", err)
		}
		currJSON, err := json.Marshal(saved)
		if err != nil {
			return fmt.Errorf("marshal current settings: %w", err)
		}
		if _, err := r.db.Exec(ctx, audit, prevJSON, currJSON, adminID); err != nil {
			zap.L().Error("failed to append referral settings audit", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *Repository) ListAudit(ctx context.Context, limit int) ([]domain.SettingsAudit, error) {
	query := `
		SELECT id, previous, current, updated_by, created_at
		FROM referral_settings_audit
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to list referral settings audit", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.SettingsAudit
	for rows.Next() {
		var (
			entry          domain.SettingsAudit
			previous, curr []byte
		)
		if err := rows.Scan(&entry.ID, &previous, &curr, &entry.UpdatedBy, &entry.CreatedAt); err != nil {
			zap.L().Error("failed to scan referral settings audit", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(previous, &entry.Previous); err != nil {
			return nil, fmt.Errorf("decode previous settings: %w", err)
		}
		if err := json.Unmarshal(curr, &entry.Current); err != nil {
			return nil, fmt.Errorf("decode current settings: %w", err)
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}
