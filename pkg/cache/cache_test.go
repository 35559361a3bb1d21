package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rates struct {
	Property string `json:"property"`
	Market   string `json:"market"`
}

func TestJSONCache_Get(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock redismock.ClientMock)
		found     bool
		expectErr bool
		result    rates
	}{
		{
			name: "Hit",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet("referral:settings").SetVal(`{"property":"5","market":"2"}`)
			},
			found:  true,
			result: rates{Property: "5", Market: "2"},
		},
		{
			name: "Miss",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet("referral:settings").RedisNil()
			},
		},
		{
			name: "Redis error",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet("referral:settings").SetErr(errors.New("connection refused"))
			},
			expectErr: true,
		},
		{
			name: "Corrupt value",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectGet("referral:settings").SetVal(`{"property":`)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tt.mockSetup(mock)
			cache := NewJSONCache(db)

			var got rates
			found, err := cache.Get(context.Background(), "referral:settings", &got)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.result, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJSONCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewJSONCache(db)
	value := rates{Property: "5", Market: "2"}
	raw, err := json.Marshal(value)
	require.NoError(t, err)

	mock.ExpectSet("referral:settings", raw, time.Minute).SetVal("OK")

	assert.NoError(t, cache.Set(context.Background(), "referral:settings", value, time.Minute))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJSONCache_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewJSONCache(db)

	mock.ExpectDel("referral:settings").SetVal(1)

	assert.NoError(t, cache.Delete(context.Background(), "referral:settings"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
