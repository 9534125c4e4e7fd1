package rebalance

import "errors"

var (
	ErrInvalidAsset     = errors.New("invalid asset")
	ErrDegenerateTarget = errors.New("target value is zero, deviation is undefined")
	ErrOverWithdrawal   = errors.New("withdrawal exceeds the portfolio value")
	ErrEmptyPortfolio   = errors.New("portfolio has no asset to allocate to")
	ErrDuplicateAsset   = errors.New("asset is declared more than once")
	ErrInvalidInput     = errors.New("invalid input")
)
