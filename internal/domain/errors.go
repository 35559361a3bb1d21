package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidState        = errors.New("invalid state")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidAmount       = errors.New("amount must be positive with at most two decimals")
	ErrInvalidRate         = errors.New("rate must be between 0 and 20 with at most two decimals")
	ErrInvalidSource       = errors.New("invalid commission source")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrDuplicateSource     = errors.New("commission already recorded for source")
	ErrTransactionType     = errors.New("transaction type does not match operation")
	ErrInvalidInput        = errors.New("invalid input")
)
