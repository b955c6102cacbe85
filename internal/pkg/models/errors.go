package models

import "errors"

var (
	// ErrNoVehicleFits is returned when a single unit exceeds every vehicle class
	ErrNoVehicleFits = errors.New("no vehicle fits the package")
	// ErrPassInProgress is returned when another dispatch pass holds the lock
	ErrPassInProgress = errors.New("dispatch pass already in progress")
	// ErrSettingsNotFound is returned when the settings store has no row
	ErrSettingsNotFound = errors.New("platform settings not found")
	// ErrInvalidQuoteRequest is returned for malformed quote input
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
)
