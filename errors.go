package newton

import "errors"

// Configuration errors returned by Config.Validate and NewRenderer.
// They are wrapped with details; match them with errors.Is.
var (
	ErrInvalidSize       = errors.New("newton: grid dimensions must be positive")
	ErrNoRoots           = errors.New("newton: root set is empty")
	ErrTooManyRoots      = errors.New("newton: too many roots")
	ErrInvalidRoot       = errors.New("newton: root must be finite")
	ErrInvalidIterations = errors.New("newton: iteration cap must be positive")
	ErrInvalidDamping    = errors.New("newton: damping must be finite and non-zero")
	ErrInvalidStride     = errors.New("newton: convergence check stride must be positive")
	ErrInvalidEpsilon    = errors.New("newton: convergence radius must be positive")
	ErrInvalidScale      = errors.New("newton: scale must be positive")
	ErrInvalidBlurRadius = errors.New("newton: blur radius must not be negative")
	ErrInvalidLight      = errors.New("newton: light direction must be non-zero")
)

// ErrUnknownFormat is returned when an image format is not supported.
var ErrUnknownFormat = errors.New("newton: unknown image format")
