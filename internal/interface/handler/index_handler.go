package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/internal/interface/dto/response"
	"github.com/Hiro-mackay/timeserver/internal/interface/presenter"
)

// ServiceName はAPIインデックスで返すサービス名です
const ServiceName = "timeserver"

// CatalogInfo はタイムゾーンDBの概要を提供するインターフェースです
type CatalogInfo interface {
	Len() int
	Version() string
	Source() string
}

// IndexHandler はAPIインデックスのHTTPハンドラーです
type IndexHandler struct {
	catalog CatalogInfo
}

// NewIndexHandler は新しいIndexHandlerを作成します
func NewIndexHandler(catalog CatalogInfo) *IndexHandler {
	return &IndexHandler{catalog: catalog}
}

// Index はサービス名と利用可能なエンドポイントを返します
// GET /api
func (h *IndexHandler) Index(c echo.Context) error {
	return presenter.OK(c, response.IndexResponse{
		Service: ServiceName,
		Endpoints: []string{
			"GET /api/time",
			"GET /api/time/zones",
		},
		TZVersion: h.catalog.Version(),
		TZSource:  h.catalog.Source(),
		Zones:     h.catalog.Len(),
	})
}
