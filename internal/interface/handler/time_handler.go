package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/timeserver/internal/interface/dto/request"
	"github.com/Hiro-mackay/timeserver/internal/interface/dto/response"
	"github.com/Hiro-mackay/timeserver/internal/interface/presenter"
	timeqry "github.com/Hiro-mackay/timeserver/internal/usecase/timeinfo/query"
)

// TimeHandler は時刻取得関連のHTTPハンドラーです
type TimeHandler struct {
	resolveTimeQuery *timeqry.ResolveTimeQuery
	listZonesQuery   *timeqry.ListZonesQuery
}

// NewTimeHandler は新しいTimeHandlerを作成します
func NewTimeHandler(
	resolveTimeQuery *timeqry.ResolveTimeQuery,
	listZonesQuery *timeqry.ListZonesQuery,
) *TimeHandler {
	return &TimeHandler{
		resolveTimeQuery: resolveTimeQuery,
		listZonesQuery:   listZonesQuery,
	}
}

// GetTime は現在時刻を取得します
// @Summary 現在時刻取得
// @Description 現在時刻を返します。タイムゾーン変換と期間シフトを指定できます
// @Tags Time
// @Produce json
// @Param tz query string false "IANAタイムゾーンID (例: Asia/Tokyo)"
// @Param future query string false "未来方向の期間 (例: 1M, 3D, 2W, 1Y)"
// @Param past query string false "過去方向の期間 (例: 1M, 3D, 2W, 1Y)"
// @Success 200 {object} response.TimeResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Router /time [get]
func (h *TimeHandler) GetTime(c echo.Context) error {
	params := c.QueryParams()

	output, err := h.resolveTimeQuery.Execute(c.Request().Context(), timeqry.ResolveTimeInput{
		TZ:     queryParam(params, "tz"),
		Future: queryParam(params, "future"),
		Past:   queryParam(params, "past"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.ToTimeResponse(output.Timestamp))
}

// ListZones は認識可能なタイムゾーンの一覧を取得します
// @Summary タイムゾーン一覧取得
// @Description 前方一致で絞り込んだタイムゾーンIDの一覧を、現在のオフセットと共に返します
// @Tags Time
// @Produce json
// @Param prefix query string false "ゾーンIDの前方一致 (大文字・小文字を区別)"
// @Param page query int false "ページ番号"
// @Param per_page query int false "1ページあたりの件数"
// @Success 200 {object} handler.SwaggerZoneListResponse
// @Failure 400 {object} handler.SwaggerErrorResponse
// @Router /time/zones [get]
func (h *TimeHandler) ListZones(c echo.Context) error {
	var req request.ListZonesRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.listZonesQuery.Execute(c.Request().Context(), timeqry.ListZonesInput{
		Prefix:  req.Prefix,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		return err
	}

	return presenter.List(c,
		response.ToZoneResponses(output.Items),
		presenter.NewPagination(output.Page, output.PerPage, output.Total),
	)
}

// queryParam はクエリパラメータを返します
// 指定がない場合は nil、"?tz=" のような空値は空文字へのポインタです
func queryParam(params url.Values, name string) *string {
	values, ok := params[name]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
