package di

import (
	"github.com/Hiro-mackay/timeserver/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health *handler.HealthHandler
	Index  *handler.IndexHandler
	Time   *handler.TimeHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	if c.Time == nil {
		c.InitTimeUseCases()
	}

	// Health Handler
	healthHandler := handler.NewHealthHandler(handler.DefaultReadyTimeout)
	healthHandler.RegisterChecker("tzdb", c.Catalog)

	return &Handlers{
		Health: healthHandler,
		Index:  handler.NewIndexHandler(c.Catalog),
		Time: handler.NewTimeHandler(
			c.Time.ResolveTime,
			c.Time.ListZones,
		),
	}
}
