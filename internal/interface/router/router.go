package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/internal/infrastructure/di"
)

// Router はルート定義を管理します
type Router struct {
	echo     *echo.Echo
	handlers *di.Handlers
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers) *Router {
	return &Router{
		echo:     e,
		handlers: handlers,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.setupAPIRoutes()
}

// setupHealthRoutes はヘルスチェックルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health == nil {
		return
	}
	r.echo.GET("/health", r.handlers.Health.Check)
	r.echo.GET("/ready", r.handlers.Health.Ready)
}

// setupAPIRoutes はAPIルートを設定します
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api")

	if r.handlers.Index != nil {
		api.GET("", r.handlers.Index.Index)
	}

	r.setupTimeRoutes(api)
}

// setupTimeRoutes は時刻関連ルートを設定します
func (r *Router) setupTimeRoutes(api *echo.Group) {
	if r.handlers.Time == nil {
		return
	}
	timeGroup := api.Group("/time")
	timeGroup.GET("", r.handlers.Time.GetTime)
	timeGroup.GET("/zones", r.handlers.Time.ListZones)
}
