// Package domain defines the core value types for profiltool.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Outcome: A tagged success/failure result with a taxonomy category
//   - ResetRequest: The inputs of a simulated credential reset
//   - Profile: The two text fields extracted from a public profile page
//   - ProfileOutcome: A fetch result that always carries a printable pair
//   - FetchError: A classified retrieval failure with a sanitised message
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
