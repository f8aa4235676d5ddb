// Package screentime supplies the dashboard's screen-time stats. The real
// numbers would come from a device API; until that integration exists the
// mock provider generates plausible values, matching what the dashboard
// has always displayed.
package screentime

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/portfoliohub/hub-server/internal/domain"
)

// Provider produces current screen-time stats.
type Provider interface {
	Stats(ctx context.Context) (*domain.ScreenTimeStats, error)
}

// MockProvider generates random but plausible stats on every call.
type MockProvider struct{}

// NewMockProvider creates a MockProvider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Stats returns randomized hours: 2-10 daily, 20-70 weekly, split across
// three app buckets.
func (p *MockProvider) Stats(ctx context.Context) (*domain.ScreenTimeStats, error) {
	daily := 2 + rand.IntN(9)
	weekly := 20 + rand.IntN(51)

	return &domain.ScreenTimeStats{
		Daily:  daily,
		Weekly: weekly,
		Apps: []domain.AppUsage{
			{Name: "Social Media", Time: 1 + rand.IntN(3)},
			{Name: "Productivity", Time: 2 + rand.IntN(4)},
			{Name: "Entertainment", Time: 1 + rand.IntN(2)},
		},
		LastUpdated: time.Now().UTC(),
	}, nil
}
