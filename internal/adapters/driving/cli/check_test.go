package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

func TestCheckCmd_BothSucceed(t *testing.T) {
	ts := setupTestServices(t)

	out, _, err := execute(t, "", "check", "--url", "ana", "--code", "c", "--password", "longenough")

	require.NoError(t, err)
	want := "--- START ---\n" +
		"Credential reset simulation...\n" +
		"  [SUCCESS]: credential reset simulated successfully\n" +
		"\n" +
		"------------------------------\n" +
		"Profile fetch (target: ana)...\n" +
		"  [SUCCESS - parsed]:\n" +
		"  Name found: Ana Horvat\n" +
		"  Location found: Zagreb\n" +
		"\n" +
		"--- DONE ---\n"
	assert.Equal(t, want, out)
	assert.Equal(t, []string{"ana"}, ts.profile.Targets)
	assert.Equal(t, "c", ts.reset.Requests[0].SubmittedCode)
}

func TestCheckCmd_FetchFailure(t *testing.T) {
	ts := setupTestServices(t)
	ts.profile.FetchFunc = notFoundOutcome

	out, _, err := execute(t, "", "check", "-u", "nobody", "-c", "c", "-p", "longenough")

	require.Error(t, err)
	assert.EqualError(t, err, "operation failed: not_found")
	assert.Contains(t, out, "  [FETCH/PARSE ERROR]:\n  Details: profile not found; check the URL/code\n")
	assert.Contains(t, out, "--- DONE ---")
}

func TestCheckCmd_ResetFailureReportedFirst(t *testing.T) {
	ts := setupTestServices(t)
	ts.reset.ResetFunc = func(domain.ResetRequest) domain.Outcome {
		return domain.Failure(domain.CategoryInvalidCode, domain.MsgResetInvalidCode)
	}
	ts.profile.FetchFunc = notFoundOutcome

	out, _, err := execute(t, "", "check", "-u", "x", "-c", "bad", "-p", "longenough")

	require.Error(t, err)
	assert.EqualError(t, err, "operation failed: invalid_code")
	assert.Contains(t, out, "  [FAILURE]: submitted code is invalid or expired")
	assert.Len(t, ts.profile.Targets, 1, "the fetch still runs after a failed reset")
}

func TestCheckCmd_NotConfigured(t *testing.T) {
	setupTestServices(t)
	profileService = nil

	_, _, err := execute(t, "", "check")

	require.EqualError(t, err, "services not configured")
}
