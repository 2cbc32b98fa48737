package handler

import (
	"github.com/Hiro-mackay/timeserver/internal/interface/dto/response"
	"github.com/Hiro-mackay/timeserver/internal/interface/presenter"
)

// swagger:model を使って presenter.Response の interface{} を具体型に置き換える

// SwaggerZoneListResponse は ZoneResponse 一覧のラッパー
type SwaggerZoneListResponse struct {
	Data []response.ZoneResponse `json:"data"`
	Meta *presenter.Meta         `json:"meta"`
}

// SwaggerIndexResponse は IndexResponse のラッパー
type SwaggerIndexResponse struct {
	Data response.IndexResponse `json:"data"`
	Meta *presenter.Meta        `json:"meta"`
}

// SwaggerErrorBody はエラー本体
type SwaggerErrorBody struct {
	Code    string `json:"code" example:"INVALID_REQUEST"`
	Message string `json:"message" example:"Time zone \"The/Moon\" not recognized"`
}

// SwaggerErrorResponse はエラーレスポンス
type SwaggerErrorResponse struct {
	Error SwaggerErrorBody `json:"error"`
	Meta  *presenter.Meta  `json:"meta"`
}
