package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig_Defaults(t *testing.T) {
	cfg := LoadDefaultConfig()

	require.Equal(t, "development", cfg.Stage)
	require.Equal(t, "4000", cfg.BackendPort)
	require.Equal(t, "strict", cfg.CookieSameSite)
	require.Equal(t, 30, cfg.RefreshTokenValidityDays)
	require.Equal(t, "eu-central-1", cfg.AwsRegion)
	require.Nil(t, cfg.AcceptedEmailDomains)
	require.Nil(t, cfg.AutoConfirmedEmails)
}

func TestLoadDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STAGE", "production")
	t.Setenv("BACKEND_PORT", "8080")
	t.Setenv("COOKIE_SAME_SITE", "none")
	t.Setenv("COOKIE_DOMAIN", "api.akurat.dev")
	t.Setenv("REFRESH_TOKEN_VALIDITY_DAYS", "7")
	t.Setenv("USER_POOL_ID", "eu-central-1_AbCdEfGhI")
	t.Setenv("USER_POOL_CLIENT_ID", "abc123")

	cfg := LoadDefaultConfig()

	require.Equal(t, "production", cfg.Stage)
	require.Equal(t, "8080", cfg.BackendPort)
	require.Equal(t, "none", cfg.CookieSameSite)
	require.Equal(t, "api.akurat.dev", cfg.CookieDomain)
	require.Equal(t, 7, cfg.RefreshTokenValidityDays)
	require.Equal(t, "eu-central-1_AbCdEfGhI", cfg.UserPoolID)
	require.Equal(t, "abc123", cfg.UserPoolClientID)
}

func TestLoadDefaultConfig_ListParsing(t *testing.T) {
	t.Setenv("ACCEPTED_EMAIL_DOMAINS", "akurat.dev, example.com ,partner.org")
	t.Setenv("AUTO_CONFIRMED_EMAILS", "ops@akurat.dev")

	cfg := LoadDefaultConfig()

	require.Equal(t, []string{"akurat.dev", "example.com", "partner.org"}, cfg.AcceptedEmailDomains)
	require.Equal(t, []string{"ops@akurat.dev"}, cfg.AutoConfirmedEmails)
}

func TestLoadDefaultConfig_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("REFRESH_TOKEN_VALIDITY_DAYS", "soon")

	cfg := LoadDefaultConfig()

	require.Equal(t, 30, cfg.RefreshTokenValidityDays)
}

func TestLoadDefaultConfig_EmptyListFallsBack(t *testing.T) {
	t.Setenv("ACCEPTED_EMAIL_DOMAINS", "")

	cfg := LoadDefaultConfig()

	require.Nil(t, cfg.AcceptedEmailDomains)
}
