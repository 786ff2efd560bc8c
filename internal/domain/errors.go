package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Material errors
	ErrMsgInvalidMaterial = "material must not be empty"
	ErrMsgUnknownMaterial = "unknown material"

	// Enchantment errors
	ErrMsgUnknownEnchantment = "unknown enchantment"
	ErrMsgLevelRestricted    = "enchantment level outside allowed range"

	// Flag errors
	ErrMsgUnknownItemFlag = "unknown item flag"

	// Configuration errors
	ErrMsgInvalidConfig         = "invalid configuration"
	ErrMsgDuplicateInternalName = "duplicate internal name"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Material errors
	ErrInvalidMaterial = errors.New(ErrMsgInvalidMaterial)
	ErrUnknownMaterial = errors.New(ErrMsgUnknownMaterial)

	// Enchantment errors
	ErrUnknownEnchantment = errors.New(ErrMsgUnknownEnchantment)
	ErrLevelRestricted    = errors.New(ErrMsgLevelRestricted)

	// Flag errors
	ErrUnknownItemFlag = errors.New(ErrMsgUnknownItemFlag)

	// Configuration errors
	ErrInvalidConfig         = errors.New(ErrMsgInvalidConfig)
	ErrDuplicateInternalName = errors.New(ErrMsgDuplicateInternalName)
)
