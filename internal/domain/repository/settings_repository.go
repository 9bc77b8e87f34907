// Package repository contains the repository interfaces (ports) for data access.
package repository

import (
	"context"

	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// SettingsRepository provides the price adjustment settings snapshot.
// The engine loads a fresh snapshot for every pricing call and never writes
// back; administration of the settings lives outside this system.
type SettingsRepository interface {
	// Load returns the current adjustment settings as an independent
	// copy safe to hand to the pricing pipeline.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//
	// Returns:
	//   - valueobject.PriceAdjustmentSettings: the settings snapshot
	//   - error: any error encountered during loading
	Load(ctx context.Context) (valueobject.PriceAdjustmentSettings, error)
}
