package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_MissingSecretIsFatal(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.access")
}

func TestApplyDefaults_FillsOptionalSettings(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "secret"

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, DefaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, 24*time.Hour+10*time.Second, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.PasswordPolicy)
	assert.Equal(t, defaultPasswordMinLength, cfg.PasswordPolicy.MinLength)
	assert.Equal(t, defaultPasswordMaxLength, cfg.PasswordPolicy.MaxLength)
}

func TestApplyDefaults_KeepsConfiguredTTL(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "secret"

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestApplyDefaults_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{
			name: "negative ttl",
			cfg:  &Config{Auth: &AuthConfig{TokenTTL: -time.Second}},
		},
		{
			name: "min length above max length",
			cfg:  &Config{PasswordPolicy: &PasswordPolicyConfig{MinLength: 20, MaxLength: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.SecretKey.Access = "secret"
			assert.Error(t, tt.cfg.applyDefaults())
		})
	}
}

func TestApplyDefaults_CapsMaxLengthAtBcryptLimit(t *testing.T) {
	cfg := &Config{PasswordPolicy: &PasswordPolicyConfig{MinLength: 8, MaxLength: 500}}
	cfg.SecretKey.Access = "secret"

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, 8, cfg.PasswordPolicy.MinLength)
	assert.Equal(t, defaultPasswordMaxLength, cfg.PasswordPolicy.MaxLength)
}

func TestNew_CommittedConfigRequiresSecretFromEnv(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "")

	_, err := New()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.access")
}

func TestNew_SecretFromEnv(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "from-the-environment")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "from-the-environment", cfg.SecretKey.Access)
	assert.Equal(t, DefaultTokenTTL, cfg.Auth.TokenTTL)
}
