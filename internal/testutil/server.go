package testutil

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/timeserver/internal/domain/service"
	"github.com/Hiro-mackay/timeserver/internal/infrastructure/di"
	"github.com/Hiro-mackay/timeserver/internal/infrastructure/tzdb"
	"github.com/Hiro-mackay/timeserver/internal/interface/router"
	"github.com/Hiro-mackay/timeserver/internal/interface/server"
	"github.com/Hiro-mackay/timeserver/pkg/config"
)

// FixtureZones are the zones every test catalog contains
var FixtureZones = []string{
	"America/New_York",
	"Asia/Kolkata",
	"Asia/Tokyo",
	"Australia/Lord_Howe",
	"Europe/London",
	"Europe/Paris",
	"UTC",
}

// TestServer holds all test server dependencies
type TestServer struct {
	Echo      *echo.Echo
	Container *di.Container
	Handlers  *di.Handlers
	Catalog   *tzdb.Catalog
}

// TestServerOptions configures NewTestServer
type TestServerOptions struct {
	// Clock overrides the system clock
	Clock service.Clock
	// DefaultZone is the zone used when tz is absent (default: "UTC")
	DefaultZone string
	// Catalog overrides the fixture catalog
	Catalog *tzdb.Catalog
}

// NewTestServer creates a fully configured test server backed by the fixture catalog
func NewTestServer(t *testing.T, opts TestServerOptions) *TestServer {
	t.Helper()

	catalog := opts.Catalog
	if catalog == nil {
		catalog = NewFixtureCatalog(t)
	}

	cfg := DefaultTestConfig()
	if opts.DefaultZone != "" {
		cfg.Time.DefaultZone = opts.DefaultZone
	}

	container, err := di.NewContainerWithOptions(cfg, di.Options{
		Catalog: catalog,
		Clock:   opts.Clock,
	})
	require.NoError(t, err)

	handlers := di.NewHandlers(container)

	e := server.NewEcho(false)
	e.Use(di.NewMiddlewares(cfg).Global()...)
	router.NewRouter(e, handlers).Setup()

	return &TestServer{
		Echo:      e,
		Container: container,
		Handlers:  handlers,
		Catalog:   catalog,
	}
}

// NewFixtureCatalog returns a catalog containing FixtureZones
func NewFixtureCatalog(t *testing.T) *tzdb.Catalog {
	t.Helper()
	catalog, err := tzdb.NewCatalog(FixtureZones...)
	require.NoError(t, err)
	return catalog
}

// DefaultTestConfig returns the configuration used by test servers
func DefaultTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Log:    config.LogConfig{Level: "error", Format: "json", Output: "stderr"},
		Time: config.TimeConfig{
			DefaultZone:           "UTC",
			HealthIntervalSeconds: 300,
		},
		Security: config.SecurityConfig{CORSOrigins: "*"},
	}
}
