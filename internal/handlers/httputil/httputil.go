// Package httputil holds the request and error plumbing shared by the HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var ErrInvalidBody = errors.New("Invalid request body")

var statusByErr = []struct {
	err  error
	code int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrInvalidState, http.StatusConflict},
	{domain.ErrUserExists, http.StatusConflict},
	{domain.ErrDuplicateSource, http.StatusConflict},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInvalidRate, http.StatusUnprocessableEntity},
	{domain.ErrInvalidSource, http.StatusUnprocessableEntity},
	{domain.ErrTransactionType, http.StatusUnprocessableEntity},
	{domain.ErrInvalidReferralCode, http.StatusBadRequest},
	{domain.ErrInvalidInput, http.StatusBadRequest},
}

// StatusFor maps a service error to a response code and a message safe to show.
// Unknown errors are logged and reported as 500.
func StatusFor(err error) (int, string) {
	for _, m := range statusByErr {
		if errors.Is(err, m.err) {
			return m.code, m.err.Error()
		}
	}
	zap.L().Error("Request failed", zap.Error(err))
	return http.StatusInternalServerError, "Internal server error"
}

// Decode reads a JSON body into dst and checks its validate tags.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidBody
	}
	return validate.Struct(dst)
}

// Page reads limit and offset query parameters. Missing or malformed values
// fall back to the first page of default size.
func Page(r *http.Request) (limit, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, err = strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
