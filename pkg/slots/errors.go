package slots

import "errors"

// ErrMachineNotFound is returned when a spin references an unknown machine id.
var ErrMachineNotFound = errors.New("machine not found")

// ErrMachineInactive is returned when a spin references a machine that is disabled.
var ErrMachineInactive = errors.New("machine inactive")

// ErrBetOutOfRange is returned when the bet is below the machine's minimum or above its maximum.
var ErrBetOutOfRange = errors.New("bet out of range")

// ErrInvalidCurrency is returned when the request names a currency that is not a supported denomination.
var ErrInvalidCurrency = errors.New("invalid currency")

// ErrSettlementFailed wraps storage-layer failures during settlement. The
// ledger is guaranteed to be in its pre-spin state when this is returned.
var ErrSettlementFailed = errors.New("settlement failed")
