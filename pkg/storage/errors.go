package storage

import "errors"

// ErrInsufficientFunds is returned when a wallet's balance cannot cover a spin's bet.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrWalletNotFound is returned when a (user, currency) account does not exist.
var ErrWalletNotFound = errors.New("wallet not found")
