package request

// ListZonesRequest はゾーン一覧取得のクエリパラメータです
type ListZonesRequest struct {
	Prefix  string `query:"prefix" validate:"max=64,zoneprefix"`
	Page    int    `query:"page" validate:"gte=0"`
	PerPage int    `query:"per_page" validate:"gte=0,lte=100"`
}
