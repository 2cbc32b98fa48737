package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response は統一レスポンス構造を定義します
type Response struct {
	Data interface{} `json:"data"`
	Meta interface{} `json:"meta"`
}

// Pagination はページネーション情報を定義します
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Meta はメタ情報を定義します
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// OK は成功レスポンスを返します
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: nil,
	})
}

// List はリスト取得レスポンスを返します
func List(c echo.Context, data interface{}, pagination *Pagination) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: Meta{Pagination: pagination},
	})
}

// NewPagination はページネーション情報を作成します
func NewPagination(page, perPage, totalItems int) *Pagination {
	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	return &Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
