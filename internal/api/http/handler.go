package apiHttp

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/digiedu/backend/docs"
	"github.com/digiedu/backend/internal/config"
	"github.com/digiedu/backend/internal/service"
	"github.com/digiedu/backend/pkg/logger"
	"github.com/digiedu/backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

// @title Accounts & Regions API
// @version 1.0
// @description HTTP API for managing user accounts and regions

// @BasePath /

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		corsMiddleware,
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler()))
	}

	router.GET("/ping", h.ping)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	h.initUsersRoutes(&router.RouterGroup)
	h.initRegionsRoutes(&router.RouterGroup)
}

// @Summary Ping
// @Tags Service
// @Description Liveness probe
// @Produce  plain
// @Success 200 {string} string "pong"
// @Router /ping [get]
func (h *Handler) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
