// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/quillhaven/severance-compass/internal/model"
)

// Storage defines the contract for the analysis-history persistence layer.
type Storage interface {
	// Analysis history operations
	SaveAnalysis(ctx context.Context, analysis *model.SavedAnalysis) (int64, error)
	GetAnalysis(ctx context.Context, id int64) (*model.SavedAnalysis, error)
	ListAnalyses(ctx context.Context, limit int) ([]model.SavedAnalysis, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
