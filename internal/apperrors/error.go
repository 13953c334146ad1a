package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrLoginAlreadyExists              = errors.New("login already exists")
	ErrUserNotFound                    = errors.New("user not found")
	ErrInvalidPassword                 = errors.New("invalid password")
	ErrUnableToGetUserLoginFromContext = errors.New("unable to get user login from context")

	ErrAssetNotFound        = errors.New("asset not found")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBelowMinimumDeposit  = errors.New("amount below minimum deposit")
	ErrAlreadyFinalized     = errors.New("request already finalized")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrNoTransactions       = errors.New("no transactions found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrPlanNotFound         = errors.New("plan not found")
	ErrInvestmentNotFound   = errors.New("investment not found")
	ErrInvestmentOutOfRange = errors.New("investment amount out of plan range")
	ErrPortfolioNotFound    = errors.New("portfolio not found")
)

type ValueError struct {
	caller  string
	message string
	err     error
}

func NewValueError(message string, caller string, err error) error {
	return &ValueError{
		caller:  caller,
		message: message,
		err:     err,
	}
}

func (v *ValueError) Error() string {
	return fmt.Sprintf("%s %s %s", v.caller, v.message, v.err)
}

func (v *ValueError) Unwrap() error {
	return v.err
}
