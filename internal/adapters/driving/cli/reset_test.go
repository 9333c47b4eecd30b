package cli

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

func stubPasswordReader(t *testing.T, secret string, err error) *int {
	t.Helper()
	calls := 0
	prev := passwordReader
	passwordReader = func(prompt string, _ io.Reader, out io.Writer) (string, error) {
		calls++
		_, _ = io.WriteString(out, prompt)
		return secret, err
	}
	t.Cleanup(func() { passwordReader = prev })
	return &calls
}

func TestResetCmd_Success(t *testing.T) {
	ts := setupTestServices(t)

	out, _, err := execute(t, "", "reset", "--code", "abc", "--password", "longenough")

	require.NoError(t, err)
	assert.Equal(t, "[SUCCESS] credential reset simulated successfully\n", out)
	require.Len(t, ts.reset.Requests, 1)
	assert.Equal(t, domain.ResetRequest{SubmittedCode: "abc", NewCredential: "longenough"}, ts.reset.Requests[0])
}

func TestResetCmd_FailureExitsNonZero(t *testing.T) {
	ts := setupTestServices(t)
	ts.reset.ResetFunc = func(domain.ResetRequest) domain.Outcome {
		return domain.Failure(domain.CategoryInvalidCode, domain.MsgResetInvalidCode)
	}

	out, _, err := execute(t, "", "reset", "-c", "wrong", "-p", "longenough")

	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Equal(t, "[FAILURE] submitted code is invalid or expired\n", out)
}

func TestResetCmd_PromptsWhenPasswordMissing(t *testing.T) {
	ts := setupTestServices(t)
	calls := stubPasswordReader(t, "prompted-secret", nil)

	out, errOut, err := execute(t, "", "reset", "--code", "abc")

	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
	assert.Contains(t, errOut, "New password: ")
	assert.NotContains(t, out, "prompted-secret")
	assert.Equal(t, "prompted-secret", ts.reset.Requests[0].NewCredential)
}

func TestResetCmd_EmptyPasswordFlagDoesNotPrompt(t *testing.T) {
	ts := setupTestServices(t)
	calls := stubPasswordReader(t, "unused", nil)

	_, _, err := execute(t, "", "reset", "--code", "abc", "--password", "")

	require.NoError(t, err)
	assert.Equal(t, 0, *calls)
	assert.Equal(t, "", ts.reset.Requests[0].NewCredential)
}

func TestResetCmd_PromptError(t *testing.T) {
	ts := setupTestServices(t)
	stubPasswordReader(t, "", errors.New("read password: closed"))

	_, _, err := execute(t, "", "reset", "--code", "abc")

	require.Error(t, err)
	assert.False(t, IsReported(err))
	assert.Empty(t, ts.reset.Requests)
}

func TestResetCmd_JSON(t *testing.T) {
	ts := setupTestServices(t)
	ts.reset.ResetFunc = func(domain.ResetRequest) domain.Outcome {
		return domain.Failure(domain.CategoryWeakCredential, domain.MsgResetWeakCredential)
	}

	out, _, err := execute(t, "", "reset", "--code", "abc", "--password", "short", "--json")

	require.Error(t, err)
	var got domain.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.OK)
	assert.Equal(t, domain.CategoryWeakCredential, got.Category)
}

func TestResetCmd_RejectsArgs(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "", "reset", "extra")

	require.Error(t, err)
}

func TestResetCmd_NotConfigured(t *testing.T) {
	setupTestServices(t)
	resetService = nil

	_, _, err := execute(t, "", "reset", "--code", "a", "--password", "b")

	require.EqualError(t, err, "reset service not configured")
}
