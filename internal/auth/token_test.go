package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("hunter2", "test-secret", 24*time.Hour)

	token, err := svc.Issue("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, svc.Verify(token))
}

func TestIssue_WrongPassword(t *testing.T) {
	svc := NewService("hunter2", "test-secret", 24*time.Hour)

	_, err := svc.Issue("letmein")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidCredentials, apperrors.CodeOf(err))
}

func TestVerify_Garbage(t *testing.T) {
	svc := NewService("hunter2", "test-secret", 24*time.Hour)

	assert.False(t, svc.Verify(""))
	assert.False(t, svc.Verify("not-a-token"))
	assert.False(t, svc.Verify("aaaa.bbbb.cccc"))
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewService("hunter2", "secret-one", 24*time.Hour)
	verifier := NewService("hunter2", "secret-two", 24*time.Hour)

	token, err := issuer.Issue("hunter2")
	require.NoError(t, err)

	assert.False(t, verifier.Verify(token))
}

func TestVerify_Expiry(t *testing.T) {
	svc := NewService("hunter2", "test-secret", time.Hour)

	issued := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("hunter2")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(30 * time.Minute) }
	assert.True(t, svc.Verify(token), "token should be valid inside the window")

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	assert.False(t, svc.Verify(token), "token should be rejected after expiry")
}
