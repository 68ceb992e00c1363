package webhook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github-activity/internal/webhook"
)

func TestValidateGitHubSignature(t *testing.T) {
	payload := []byte(`{"ref":"refs/heads/main"}`)
	v := webhook.NewSecurityValidator(webhook.SecurityConfig{Secret: "s3cret"})

	assert.True(t, v.SignatureRequired())
	assert.NoError(t, v.ValidateGitHubSignature(payload, webhook.SignatureHeader(payload, "s3cret")))
	assert.ErrorIs(t, v.ValidateGitHubSignature(payload, webhook.SignatureHeader(payload, "other")), webhook.ErrInvalidSignature)
	assert.ErrorIs(t, v.ValidateGitHubSignature(payload, ""), webhook.ErrInvalidSignature)
	assert.ErrorIs(t, v.ValidateGitHubSignature(payload, "sha256=zz"), webhook.ErrInvalidSignature)
	assert.ErrorIs(t, v.ValidateGitHubSignature([]byte(`{}`), webhook.SignatureHeader(payload, "s3cret")), webhook.ErrInvalidSignature)
}

func TestValidateGitHubSignature_NoSecret(t *testing.T) {
	v := webhook.NewSecurityValidator(webhook.SecurityConfig{})

	assert.False(t, v.SignatureRequired())
	assert.NoError(t, v.ValidateGitHubSignature([]byte(`{}`), ""))
}

func TestValidateIPAddress(t *testing.T) {
	v := webhook.NewSecurityValidator(webhook.SecurityConfig{
		AllowedIPs: []string{"10.0.0.1", "192.30.252.0/22", "not-a-cidr/99"},
	})

	assert.NoError(t, v.ValidateIPAddress("10.0.0.1"))
	assert.NoError(t, v.ValidateIPAddress("192.30.253.7"))
	assert.ErrorIs(t, v.ValidateIPAddress("8.8.8.8"), webhook.ErrIPNotAllowed)
	assert.ErrorIs(t, v.ValidateIPAddress("garbage"), webhook.ErrIPNotAllowed)

	open := webhook.NewSecurityValidator(webhook.SecurityConfig{})
	assert.NoError(t, open.ValidateIPAddress("8.8.8.8"))
}

func TestCheckRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and refills one token per second.
	v := webhook.NewSecurityValidator(webhook.SecurityConfig{RateLimitPerMin: 60})

	for i := 0; i < 6; i++ {
		assert.NoError(t, v.CheckRateLimit("github"), "request %d", i)
	}
	assert.ErrorIs(t, v.CheckRateLimit("github"), webhook.ErrRateLimitExceeded)

	// Sources are limited independently.
	assert.NoError(t, v.CheckRateLimit("other"))

	unlimited := webhook.NewSecurityValidator(webhook.SecurityConfig{})
	for i := 0; i < 100; i++ {
		assert.NoError(t, unlimited.CheckRateLimit("github"))
	}
}
