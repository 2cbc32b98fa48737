package mocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockZoneCatalog is a mock of service.ZoneCatalog
type MockZoneCatalog struct {
	mock.Mock
}

func NewMockZoneCatalog(t *testing.T) *MockZoneCatalog {
	m := &MockZoneCatalog{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockZoneCatalog) Lookup(id string) (*time.Location, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*time.Location), args.Bool(1)
}

func (m *MockZoneCatalog) IDs() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockZoneCatalog) Len() int {
	args := m.Called()
	return args.Int(0)
}
