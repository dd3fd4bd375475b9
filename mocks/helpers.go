package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockRateResolverForTest creates a new mock RateResolver for testing
func NewMockRateResolverForTest(t *testing.T) *MockRateResolver {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRateResolver(ctrl)
}

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}
