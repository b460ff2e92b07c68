package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/meur/arena/internal/models"
)

// MemoryStore serves a bundle held in memory
type MemoryStore struct {
	mu     sync.RWMutex
	bundle models.Bundle
}

// NewMemory creates a MemoryStore seeded with b
func NewMemory(b models.Bundle) *MemoryStore {
	return &MemoryStore{bundle: b}
}

// Tournaments returns a copy of the held tournaments
func (m *MemoryStore) Tournaments(ctx context.Context) ([]models.Tournament, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.bundle.Tournaments), nil
}

// Players returns a copy of the held players
func (m *MemoryStore) Players(ctx context.Context) ([]models.Player, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.bundle.Players), nil
}

// Teams returns a copy of the held teams
func (m *MemoryStore) Teams(ctx context.Context) ([]models.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.bundle.Teams), nil
}

// Import replaces the held bundle
func (m *MemoryStore) Import(ctx context.Context, b models.Bundle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bundle = b
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}
