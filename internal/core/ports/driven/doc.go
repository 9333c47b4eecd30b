// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PageFetcher: Performs the single GET and classifies failures
//   - ProfileExtractor: Pulls the display name and location out of a page
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - services substitute a no-op:
//
//   - Logger: Leveled developer log with structured fields
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
