package auth

import (
	"akurat-backend/pkg/config"

	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const refreshTokenCookieName = "token"

// CookiePolicy bundles the deployment-dependent cookie attributes. Cross-site
// deployments run with SameSite=None, same-site ones with SameSite=Strict;
// the choice is configuration, not a code branch.
type CookiePolicy struct {
	SameSite http.SameSite
	Domain   string
	Secure   bool
}

func cookiePolicyFromConfig(cfg *config.Config) CookiePolicy {
	sameSite := http.SameSiteStrictMode
	if strings.EqualFold(cfg.CookieSameSite, "none") {
		sameSite = http.SameSiteNoneMode
	}
	return CookiePolicy{
		SameSite: sameSite,
		Domain:   cfg.CookieDomain,
		Secure:   true,
	}
}

func setRefreshTokenCookie(c *gin.Context, policy CookiePolicy, token string, maxAge int) {
	c.SetSameSite(policy.SameSite)
	c.SetCookie(refreshTokenCookieName, token, maxAge, "/", policy.Domain, policy.Secure, true)
}

// clearRefreshTokenCookie instructs the client to discard its refresh token:
// same attributes as on login, placeholder value, Max-Age=0 on the wire.
func clearRefreshTokenCookie(c *gin.Context, policy CookiePolicy) {
	c.SetSameSite(policy.SameSite)
	c.SetCookie(refreshTokenCookieName, "x", -1, "/", policy.Domain, policy.Secure, true)
}

// refreshTokenFromRequest reads the refresh-token cookie. The cookie key is
// matched case-insensitively; the header name already is by net/http.
func refreshTokenFromRequest(c *gin.Context) string {
	for _, cookie := range c.Request.Cookies() {
		if strings.EqualFold(cookie.Name, refreshTokenCookieName) {
			return cookie.Value
		}
	}
	return ""
}
