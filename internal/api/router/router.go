package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/telehealth/patient-service/internal/api/handlers/patient"
	"github.com/telehealth/patient-service/internal/api/middleware"
	"github.com/telehealth/patient-service/internal/api/respond"
)

// New builds the HTTP route table. Every patient route sits behind the
// bearer-token gate; only the liveness check is open.
func New(handler *patient.Handler, authToken string) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(middleware.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, map[string]string{"status": "healthy"})
	})

	patients := e.Group("/patients")
	patients.Use(middleware.Auth(authToken))

	patients.POST("", handler.Create)
	patients.GET("", handler.List)
	patients.GET("/:id", handler.Get)
	patients.PUT("/:id", handler.Update)
	patients.DELETE("/:id", handler.Delete)

	return e
}
