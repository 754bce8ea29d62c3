package delivery

import (
	"net/http"

	"catalog_service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Category *CategoryHandler
	Item     *ItemHandler
	Auth     *AuthHandler
	Health   *HealthHandler
	Static   *StaticHandler
}

// NewRouter assembles the gin engine: recovery, request id, CORS, logging and
// metrics middleware, then the API, health, metrics and static routes.
func NewRouter(h Handlers, metrics *middleware.Metrics, logger *logrus.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorf("Recovered from panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Error: msgInternalError})
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(logger))
	router.Use(metrics.Middleware())

	h.Category.RegisterRoutes(router)
	h.Item.RegisterRoutes(router)
	h.Auth.RegisterRoutes(router)
	h.Health.RegisterRoutes(router)
	h.Static.RegisterRoutes(router)
	router.GET("/metrics", metrics.Handler())

	router.NoRoute(h.Static.NotFound)
	logger.Info("API Routes registered.")

	return router
}
