package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/telehealth/patient-service/internal/api/respond"
)

var (
	errTokenMissing   = errors.New("Authentication token is missing!")
	errTokenMalformed = errors.New("Invalid authentication token format!")
	errTokenInvalid   = errors.New("Invalid authentication token!")
)

// Auth returns a middleware that rejects any request whose Authorization
// header does not carry the configured bearer token. The token is captured
// at construction and immutable for the process lifetime. The gate has no
// side effects; on success the wrapped handler runs unchanged.
func Auth(token string) func(c *ginext.Context) {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respond.Fail(c.Writer, http.StatusUnauthorized, errTokenMissing)
			c.Abort()
			return
		}

		// Expected shape: "Bearer <token>", one space between scheme
		// and token.
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 {
			respond.Fail(c.Writer, http.StatusUnauthorized, errTokenMalformed)
			c.Abort()
			return
		}

		if parts[1] != token {
			respond.Fail(c.Writer, http.StatusUnauthorized, errTokenInvalid)
			c.Abort()
			return
		}

		c.Next()
	}
}
