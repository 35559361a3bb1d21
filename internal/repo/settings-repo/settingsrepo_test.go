package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var settingsRow = []string{"property_rate", "equipment_rate", "market_rate", "green_energy_rate", "updated_by", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)
	adminID := uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta("FROM referral_settings WHERE id = 1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		check     func(t *testing.T, table *domain.RateTable)
	}{
		{
			name: "Configured rates",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(settingsRow).
					AddRow(decimal.NewFromInt(5), decimal.NewFromInt(3), decimal.NewFromInt(2), decimal.NewFromInt(4), &adminID, now))
			},
			check: func(t *testing.T, table *domain.RateTable) {
				assert.True(t, decimal.NewFromInt(5).Equal(table.PropertyRate))
				assert.True(t, decimal.NewFromInt(4).Equal(table.GreenEnergyRate))
				assert.Equal(t, &adminID, table.UpdatedBy)
			},
		},
		{
			name: "Missing row yields zero rates",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
			},
			check: func(t *testing.T, table *domain.RateTable) {
				for _, c := range []domain.Category{domain.CategoryProperty, domain.CategoryEquipment, domain.CategoryMarket, domain.CategoryGreenEnergy} {
					assert.True(t, table.RateFor(c).IsZero())
				}
				assert.Nil(t, table.UpdatedBy)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			table, err := repo.Get(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.check(t, table)
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = 1 FOR UPDATE")).WillReturnRows(pgxmock.NewRows(settingsRow).
		AddRow(decimal.NewFromInt(1), decimal.Zero, decimal.Zero, decimal.Zero, nil, time.Now()))

	table, err := repo.GetForUpdate(context.Background())

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(table.PropertyRate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save(t *testing.T) {
	repo, mock, tx := NewMock(t)
	adminID := uuid.New()
	now := time.Now()
	previous := domain.RateTable{}
	current := domain.RateTable{
		PropertyRate:    decimal.NewFromInt(5),
		EquipmentRate:   decimal.Zero,
		MarketRate:      decimal.Zero,
		GreenEnergyRate: decimal.Zero,
	}
	upsert := regexp.QuoteMeta("INSERT INTO referral_settings (id, property_rate, equipment_rate, market_rate, green_energy_rate, updated_by, updated_at)")
	audit := regexp.QuoteMeta("INSERT INTO referral_settings_audit (previous, current, updated_by)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Rates and audit saved",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(upsert).
						WithArgs(current.PropertyRate, current.EquipmentRate, current.MarketRate, current.GreenEnergyRate, adminID).
						WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))
					mock.ExpectExec(audit).
						WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), adminID).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Audit failure aborts",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(upsert).
						WithArgs(current.PropertyRate, current.EquipmentRate, current.MarketRate, current.GreenEnergyRate, adminID).
						WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))
					mock.ExpectExec(audit).
						WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), adminID).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			saved, err := repo.Save(context.Background(), previous, current, adminID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, saved)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, &adminID, saved.UpdatedBy)
				assert.Equal(t, now, saved.UpdatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListAudit(t *testing.T) {
	repo, mock, _ := NewMock(t)
	id, adminID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM referral_settings_audit ORDER BY created_at DESC LIMIT $1")).
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "previous", "current", "updated_by", "created_at"}).
			AddRow(id, []byte(`{"propertyCommissionRate":"0","equipmentCommissionRate":"0","marketCommissionRate":"0","greenEnergyCommissionRate":"0"}`),
				[]byte(`{"propertyCommissionRate":"7.5","equipmentCommissionRate":"0","marketCommissionRate":"0","greenEnergyCommissionRate":"0"}`), adminID, now))

	history, err := repo.ListAudit(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Previous.PropertyRate.IsZero())
	assert.True(t, decimal.RequireFromString("7.5").Equal(history[0].Current.PropertyRate))
	assert.Equal(t, adminID, history[0].UpdatedBy)
}
