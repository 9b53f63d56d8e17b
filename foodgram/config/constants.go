package config

import "time"

// Application-wide constants organized by domain

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	SearchTimeout       = 10 * time.Second
	BatchQueryTimeout   = 30 * time.Second
	ShutdownTimeout     = 10 * time.Second
	NetworkDialTimeout  = 5 * time.Second
	UploadTimeout       = 30 * time.Second

	// Cache settings
	ShortLinkCacheSize = 10000

	// Batch processing
	DefaultBatchSize = 500
)

// Pagination
const (
	DefaultPageSize       = 6
	MaxPageSize           = 100
	IngredientSearchLimit = 20
)

// Recipe limits
const (
	MinCookingTime = 1
	MaxCookingTime = 32000
	MinAmount      = 1
	MaxAmount      = 32000

	MaxRecipeNameLength     = 256
	MaxTagNameLength        = 32
	MaxTagSlugLength        = 32
	MaxIngredientNameLength = 128
	MaxUnitLength           = 64
)

// User limits
const (
	MaxEmailLength    = 254
	MaxUsernameLength = 150
	MaxNameLength     = 150
	MinPasswordLength = 1
)

// Short links
const (
	ShortLinkTokenLength = 7
	ShortLinkMaxAttempts = 5
)

// Media
const (
	RecipeImagePrefix = "recipes/images"
	AvatarImagePrefix = "users"
	MaxImageBytes     = 10 << 20
)
