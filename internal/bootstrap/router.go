package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wenlaunch/proposal-backend/config"
	httpapi "github.com/wenlaunch/proposal-backend/internal/api/http"
	"github.com/wenlaunch/proposal-backend/internal/api/http/middleware"
	"github.com/wenlaunch/proposal-backend/internal/auth"
	authhttp "github.com/wenlaunch/proposal-backend/internal/auth/http"
	"github.com/wenlaunch/proposal-backend/internal/crm"
	"github.com/wenlaunch/proposal-backend/internal/feeds"
	proposalhttp "github.com/wenlaunch/proposal-backend/internal/proposal/http"
	"github.com/wenlaunch/proposal-backend/internal/proposal/llm"
	"github.com/wenlaunch/proposal-backend/internal/proposal/render"
	"github.com/wenlaunch/proposal-backend/internal/proposal/service"
	"github.com/wenlaunch/proposal-backend/internal/settings"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Log         *zap.Logger
	Redis       *redis.Client // nil disables feed caching
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", auth.TokenHeader},
	}))

	var renderer render.Renderer
	if dep.Cfg.Render.ConverterBin != "" {
		renderer = render.NewCommandRenderer(dep.Cfg.Render.ConverterBin)
	}

	extractor := llm.NewClient(dep.Cfg.Anthropic)
	proposalSvc := service.NewProposalService(extractor, renderer, dep.Cfg.Render.OutputDir, dep.Cfg.Render.LogoPath, dep.Log)
	settingsStore := settings.NewStore(dep.Cfg.Render.SettingsPath)
	authSvc := auth.NewService(dep.Cfg.Auth.Password, dep.Cfg.Auth.TokenSecret, dep.Cfg.Auth.TokenTTL)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, proposalSvc.CanRender())
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	authhttp.New(authSvc, dep.Cfg.Auth.LoginRatePerMin).Register(api)

	feedClient := feeds.NewClient(dep.Redis, dep.Cfg.Feeds.CacheTTL, dep.Log)
	feeds.NewHandler(feedClient).Register(api)

	protected := api.Group("")
	protected.Use(auth.RequireAuth(authSvc))

	proposalhttp.New(proposalSvc, settingsStore).Register(protected)
	settings.NewHandler(settingsStore).Register(protected)

	crmClient := crm.NewClient(dep.Cfg.Notion)
	if crmClient.Enabled() {
		crm.NewHandler(crmClient).Register(protected)
	} else {
		dep.Log.Warn("CRM passthrough disabled: NOTION_API_KEY or CRM_DATABASE_ID not set")
	}

	return r
}
