package services

import (
	"unicode/utf8"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
	"github.com/custodia-labs/profiltool/internal/core/ports/driving"
)

// Ensure ResetService implements the interface.
var _ driving.ResetService = (*ResetService)(nil)

// ReferenceResetCode is the only code the simulation accepts. Front ends use
// it to prefill demo forms.
//
//nolint:gosec // G101: simulated reset token, not a real credential.
const ReferenceResetCode = "5PBCGi3nCMSGg10rFF2JfQ="

// MinCredentialLength is the minimum number of characters in a new credential.
const MinCredentialLength = 8

// VerifyReset compares the submitted code with the reference token and
// checks the new credential length. It is total over its inputs.
func VerifyReset(submittedCode, newCredential string) domain.Outcome {
	if submittedCode != ReferenceResetCode {
		return domain.Failure(domain.CategoryInvalidCode, domain.MsgResetInvalidCode)
	}
	if utf8.RuneCountInString(newCredential) < MinCredentialLength {
		return domain.Failure(domain.CategoryWeakCredential, domain.MsgResetWeakCredential)
	}
	return domain.Success(domain.MsgResetSucceeded)
}

// ResetService runs VerifyReset and records the result in the developer log.
// Nothing is stored; the new credential never reaches the log.
type ResetService struct {
	logger driven.Logger
}

// NewResetService creates a new reset service. A nil logger discards entries.
func NewResetService(logger driven.Logger) *ResetService {
	if logger == nil {
		logger = driven.NopLogger{}
	}
	return &ResetService{logger: logger}
}

// Reset simulates a credential reset.
func (s *ResetService) Reset(req domain.ResetRequest) domain.Outcome {
	s.logger.Info("credential reset simulation started", nil)

	outcome := VerifyReset(req.SubmittedCode, req.NewCredential)
	if !outcome.OK {
		s.logger.Error("credential reset rejected", nil, driven.Fields{
			"category": outcome.Category.String(),
			"reason":   outcome.Message,
		})
		return outcome
	}

	s.logger.Info("reset code accepted, credential meets length rule", driven.Fields{
		"min_length": MinCredentialLength,
	})
	s.logger.Info(outcome.Message, nil)
	return outcome
}
