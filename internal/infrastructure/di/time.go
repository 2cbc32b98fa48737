package di

import (
	"github.com/Hiro-mackay/timeserver/internal/domain/service"
	"github.com/Hiro-mackay/timeserver/internal/domain/valueobject"
	timeqry "github.com/Hiro-mackay/timeserver/internal/usecase/timeinfo/query"
)

// TimeUseCases はTime関連のUseCaseを保持します
type TimeUseCases struct {
	// Queries
	ResolveTime *timeqry.ResolveTimeQuery
	ListZones   *timeqry.ListZonesQuery
}

// NewTimeUseCases は新しいTimeUseCasesを作成します
func NewTimeUseCases(catalog service.ZoneCatalog, clock service.Clock, defaultZone *valueobject.TimeZone) *TimeUseCases {
	validator := timeqry.NewParamValidator(catalog)
	resolver := timeqry.NewTimeResolver(clock, defaultZone)

	return &TimeUseCases{
		ResolveTime: timeqry.NewResolveTimeQuery(validator, resolver),
		ListZones:   timeqry.NewListZonesQuery(catalog, clock),
	}
}
