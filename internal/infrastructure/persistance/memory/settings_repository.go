package memory

import (
	"context"
	"sync"

	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// SettingsRepository is an in-memory holder for the price adjustment
// settings. Load hands out deep copies so a pricing call in flight never
// observes a half-applied settings change.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings valueobject.PriceAdjustmentSettings
}

// NewSettingsRepository creates a settings repository seeded with the
// given snapshot.
//
// Parameters:
//   - settings: the initial adjustment settings
//
// Returns:
//   - *SettingsRepository: the created repository
func NewSettingsRepository(settings valueobject.PriceAdjustmentSettings) *SettingsRepository {
	return &SettingsRepository{settings: settings.Clone()}
}

// Load returns the current adjustment settings as an independent copy.
func (r *SettingsRepository) Load(ctx context.Context) (valueobject.PriceAdjustmentSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings.Clone(), nil
}

// Replace swaps in a new settings snapshot atomically.
//
// Parameters:
//   - settings: the new adjustment settings
func (r *SettingsRepository) Replace(settings valueobject.PriceAdjustmentSettings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings.Clone()
}
