package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/lootbox"
)

// MockLootboxService mocks lootbox.Service
type MockLootboxService struct {
	mock.Mock
}

func (m *MockLootboxService) NewSession(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockLootboxService) Open(ctx context.Context, sessionID string) (*lootbox.DrawResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lootbox.DrawResult), args.Error(1)
}

func (m *MockLootboxService) State(ctx context.Context, sessionID string) (lootbox.State, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(lootbox.State), args.Error(1)
}

func (m *MockLootboxService) Pool() domain.SkinPool {
	args := m.Called()
	return args.Get(0).(domain.SkinPool)
}

func (m *MockLootboxService) Odds() domain.ProbabilityTable {
	args := m.Called()
	return args.Get(0).(domain.ProbabilityTable)
}

func (m *MockLootboxService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ lootbox.Service = (*MockLootboxService)(nil)

func testPool() domain.SkinPool {
	pool := domain.NewSkinPool()
	pool[domain.RarityPremium] = []domain.Skin{
		{Name: "Prime Vandal", Weapon: "Vandal", Rarity: domain.RarityPremium, Icon: "https://media.example/prime.png"},
		{Name: "Ion Sheriff", Weapon: "Sheriff", Rarity: domain.RarityPremium, Icon: "https://media.example/ion.png"},
	}
	pool[domain.RarityExclusive] = []domain.Skin{
		{Name: "Champions Vandal", Weapon: "Vandal", Rarity: domain.RarityExclusive, Icon: "https://media.example/champ.png"},
	}
	return pool
}
