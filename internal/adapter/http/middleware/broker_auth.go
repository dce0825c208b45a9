package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"broker_quotes/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// BrokerIDKey is the gin context key holding the authenticated broker.
	BrokerIDKey = "broker_id"

	devBypassHeader = "X-Broker-ID"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Broker mismatch", http.StatusForbidden)
)

// BrokerAuth resolves the calling broker and rejects requests addressed to
// another broker's resources. Token signatures are checked upstream by the
// gateway; here only the subject claim is read.
func BrokerAuth(devBypass bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		brokerID := callerBrokerID(c.Request, devBypass)
		if brokerID == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if target := c.Param("broker_id"); target != "" && target != brokerID {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Set(BrokerIDKey, brokerID)
		c.Next()
	}
}

// CallerBrokerID returns the broker stored by BrokerAuth.
func CallerBrokerID(c *gin.Context) string {
	return c.GetString(BrokerIDKey)
}

func callerBrokerID(r *http.Request, devBypass bool) string {
	if devBypass {
		if id := strings.TrimSpace(r.Header.Get(devBypassHeader)); id != "" {
			return id
		}
	}
	return subFromAuthHeader(r.Header.Get("Authorization"))
}

func subFromAuthHeader(auth string) string {
	auth = strings.TrimSpace(auth)
	if auth == "" {
		return ""
	}
	if len(auth) > len("bearer ") && strings.EqualFold(auth[:len("bearer ")], "bearer ") {
		auth = strings.TrimSpace(auth[len("bearer "):])
	}
	parts := strings.Split(auth, ".")
	if len(parts) != 3 {
		return ""
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	var claims map[string]any
	if json.Unmarshal(payload, &claims) != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return strings.TrimSpace(sub)
}
