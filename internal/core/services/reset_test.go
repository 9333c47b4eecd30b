package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/profiltool/internal/core/domain"
)

func TestVerifyReset(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		credential string
		wantOK     bool
		wantCat    domain.Category
		wantMsg    string
	}{
		{
			name:       "valid code and long credential",
			code:       ReferenceResetCode,
			credential: "longenough",
			wantOK:     true,
			wantMsg:    domain.MsgResetSucceeded,
		},
		{
			name:       "exactly eight characters",
			code:       ReferenceResetCode,
			credential: "12345678",
			wantOK:     true,
			wantMsg:    domain.MsgResetSucceeded,
		},
		{
			name:       "seven characters is weak",
			code:       ReferenceResetCode,
			credential: "abc1234",
			wantCat:    domain.CategoryWeakCredential,
			wantMsg:    domain.MsgResetWeakCredential,
		},
		{
			name:    "empty credential is weak",
			code:    ReferenceResetCode,
			wantCat: domain.CategoryWeakCredential,
			wantMsg: domain.MsgResetWeakCredential,
		},
		{
			name:       "multibyte characters count once",
			code:       ReferenceResetCode,
			credential: "žćčđšžćč",
			wantOK:     true,
			wantMsg:    domain.MsgResetSucceeded,
		},
		{
			name:       "wrong code",
			code:       "WRONG",
			credential: "longenough",
			wantCat:    domain.CategoryInvalidCode,
			wantMsg:    domain.MsgResetInvalidCode,
		},
		{
			name:       "code check comes first",
			code:       "",
			credential: "x",
			wantCat:    domain.CategoryInvalidCode,
			wantMsg:    domain.MsgResetInvalidCode,
		},
		{
			name:       "code comparison is exact",
			code:       ReferenceResetCode + " ",
			credential: "longenough",
			wantCat:    domain.CategoryInvalidCode,
			wantMsg:    domain.MsgResetInvalidCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyReset(tt.code, tt.credential)

			assert.Equal(t, tt.wantOK, got.OK)
			assert.Equal(t, tt.wantCat, got.Category)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestVerifyReset_LengthBoundary(t *testing.T) {
	for n := 0; n <= 12; n++ {
		got := VerifyReset(ReferenceResetCode, strings.Repeat("a", n))
		assert.Equal(t, n >= MinCredentialLength, got.OK, "length %d", n)
	}
}

func TestResetService_Reset_LogsProgress(t *testing.T) {
	log := newRecordingLogger()
	service := NewResetService(log)

	got := service.Reset(domain.ResetRequest{SubmittedCode: ReferenceResetCode, NewCredential: "s3cretpass"})

	assert.True(t, got.OK)
	assert.Empty(t, log.byLevel("error"))
	assert.NotEmpty(t, log.byLevel("info"))
	for _, e := range log.all() {
		assert.NotContains(t, e.msg, "s3cretpass")
		for _, v := range e.fields {
			assert.NotEqual(t, "s3cretpass", v)
		}
	}
}

func TestResetService_Reset_LogsFailureAtErrorLevel(t *testing.T) {
	log := newRecordingLogger()
	service := NewResetService(log)

	got := service.Reset(domain.ResetRequest{SubmittedCode: ReferenceResetCode, NewCredential: "short"})

	assert.False(t, got.OK)
	assert.Equal(t, domain.CategoryWeakCredential, got.Category)

	errs := log.byLevel("error")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "weak_credential", errs[0].fields["category"])
	}
}

func TestNewResetService_NilLogger(t *testing.T) {
	service := NewResetService(nil)

	assert.NotPanics(t, func() {
		service.Reset(domain.ResetRequest{SubmittedCode: "x", NewCredential: "y"})
	})
}
