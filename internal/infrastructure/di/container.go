package di

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Hiro-mackay/timeserver/internal/domain/service"
	"github.com/Hiro-mackay/timeserver/internal/domain/valueobject"
	"github.com/Hiro-mackay/timeserver/internal/infrastructure/clock"
	"github.com/Hiro-mackay/timeserver/internal/infrastructure/tzdb"
	"github.com/Hiro-mackay/timeserver/pkg/config"
)

// ErrUnknownDefaultZone は DEFAULT_TIME_ZONE がカタログに存在しないことを表します
var ErrUnknownDefaultZone = errors.New("default time zone not recognized")

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	Catalog *tzdb.Catalog
	Clock   service.Clock

	// DefaultZone は tz 未指定時に使うゾーンです。nil の場合はtime.Local
	DefaultZone *valueobject.TimeZone

	// Time UseCases
	Time *TimeUseCases

	// config
	config *config.Config
}

// NewContainer は新しいContainerを作成します
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// Time zone database
	if opts.Catalog != nil {
		c.Catalog = opts.Catalog
	} else {
		slog.Info("loading time zone database...")
		catalog, err := tzdb.Load(tzdb.DefaultSources(cfg.Time.ZoneInfo)...)
		if err != nil {
			return nil, fmt.Errorf("failed to load time zone database: %w", err)
		}
		c.Catalog = catalog
		slog.Info("loaded time zone database",
			"source", catalog.Source(),
			"version", catalog.Version(),
			"zones", catalog.Len(),
		)
	}

	// Clock
	if opts.Clock != nil {
		c.Clock = opts.Clock
	} else {
		c.Clock = clock.NewSystemClock()
	}

	// Default zone
	defaultZone, err := resolveDefaultZone(c.Catalog, cfg.Time.DefaultZone)
	if err != nil {
		return nil, err
	}
	c.DefaultZone = defaultZone

	return c, nil
}

// resolveDefaultZone は既定ゾーンを決定します
// 設定値が空の場合はプロセスのローカルゾーンをカタログから解決します
func resolveDefaultZone(catalog *tzdb.Catalog, id string) (*valueobject.TimeZone, error) {
	if id != "" {
		loc, ok := catalog.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDefaultZone, id)
		}
		tz, err := valueobject.NewTimeZone(id, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownDefaultZone, id, err)
		}
		slog.Info("default time zone configured", "zone", tz.ID())
		return &tz, nil
	}

	if tz, ok := catalog.LocalZone(); ok {
		slog.Info("default time zone detected", "zone", tz.ID())
		return &tz, nil
	}

	slog.Warn("could not name the local time zone; responses without tz carry no zone id")
	return nil, nil
}

// InitTimeUseCases はTime UseCasesを初期化します
func (c *Container) InitTimeUseCases() {
	c.Time = NewTimeUseCases(c.Catalog, c.Clock, c.DefaultZone)
}

// Config は設定を返します
func (c *Container) Config() *config.Config {
	return c.config
}

// Options はContainer作成時のオプションを定義します
type Options struct {
	Catalog *tzdb.Catalog
	Clock   service.Clock
}
