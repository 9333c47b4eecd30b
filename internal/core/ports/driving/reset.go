package driving

import "github.com/custodia-labs/profiltool/internal/core/domain"

// ResetService simulates a credential reset.
type ResetService interface {
	// Reset checks the submitted code and the new credential.
	// It never fails; every result is an outcome value.
	Reset(req domain.ResetRequest) domain.Outcome
}
