package domain

// ResetRequest holds the inputs of one simulated credential reset.
// It has no identity beyond the call and is discarded afterwards.
type ResetRequest struct {
	SubmittedCode string
	NewCredential string
}

// Reset messages shown to the user.
const (
	MsgResetInvalidCode    = "submitted code is invalid or expired"
	MsgResetWeakCredential = "new credential must be at least 8 characters"
	MsgResetSucceeded      = "credential reset simulated successfully"
)
