package middleware

import (
	"fmt"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/telehealth/patient-service/internal/api/respond"
)

// Recovery returns a middleware that converts panics during request
// handling into 500 responses with an {"error": ...} body.
func Recovery() func(c *ginext.Context) {
	return func(c *ginext.Context) {
		defer func() {
			if r := recover(); r != nil {
				zlog.Logger.Error().
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msgf("panic recovered: %v", r)
				respond.Internal(c.Writer, fmt.Errorf("%v", r))
				c.Abort()
			}
		}()

		c.Next()
	}
}
