package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/timeserver/internal/infrastructure/clock"
	"github.com/Hiro-mackay/timeserver/internal/infrastructure/tzdb"
	"github.com/Hiro-mackay/timeserver/pkg/config"
)

func newTestCatalog(t *testing.T) *tzdb.Catalog {
	t.Helper()
	catalog, err := tzdb.NewCatalog("UTC", "Asia/Tokyo")
	require.NoError(t, err)
	return catalog
}

func TestNewContainerWithOptions_ConfiguredDefaultZone(t *testing.T) {
	cfg := &config.Config{Time: config.TimeConfig{DefaultZone: "Asia/Tokyo"}}

	c, err := NewContainerWithOptions(cfg, Options{Catalog: newTestCatalog(t)})

	require.NoError(t, err)
	require.NotNil(t, c.DefaultZone)
	assert.Equal(t, "Asia/Tokyo", c.DefaultZone.ID())
	assert.IsType(t, &clock.SystemClock{}, c.Clock)
}

func TestNewContainerWithOptions_UnknownDefaultZone(t *testing.T) {
	cfg := &config.Config{Time: config.TimeConfig{DefaultZone: "Europe/Paris"}}

	_, err := NewContainerWithOptions(cfg, Options{Catalog: newTestCatalog(t)})

	assert.ErrorIs(t, err, ErrUnknownDefaultZone)
}

func TestNewContainerWithOptions_LocalZoneFromTZ(t *testing.T) {
	t.Setenv("TZ", "Asia/Tokyo")

	c, err := NewContainerWithOptions(&config.Config{}, Options{Catalog: newTestCatalog(t)})

	require.NoError(t, err)
	require.NotNil(t, c.DefaultZone)
	assert.Equal(t, "Asia/Tokyo", c.DefaultZone.ID())
}

func TestNewContainerWithOptions_UnnamedLocalZone(t *testing.T) {
	t.Setenv("TZ", "America/Chicago")

	c, err := NewContainerWithOptions(&config.Config{}, Options{Catalog: newTestCatalog(t)})

	require.NoError(t, err)
	assert.Nil(t, c.DefaultZone)
}

func TestNewHandlers_InitializesTimeUseCases(t *testing.T) {
	c, err := NewContainerWithOptions(&config.Config{Time: config.TimeConfig{DefaultZone: "UTC"}}, Options{Catalog: newTestCatalog(t)})
	require.NoError(t, err)

	h := NewHandlers(c)

	require.NotNil(t, c.Time)
	assert.NotNil(t, h.Time)
	assert.NotNil(t, h.Index)
	assert.Equal(t, []string{"tzdb"}, h.Health.Names())
}

func TestMiddlewares_Global(t *testing.T) {
	cfg := &config.Config{Security: config.SecurityConfig{CORSOrigins: "https://a.example, https://b.example", EnableHSTS: true}}

	m := NewMiddlewares(cfg)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, m.CORS.AllowOrigins)
	assert.True(t, m.Security.EnableHSTS)
	assert.Len(t, m.Global(), 5)
}
