package mocks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockClock is a mock of service.Clock
type MockClock struct {
	mock.Mock
}

func NewMockClock(t *testing.T) *MockClock {
	m := &MockClock{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
