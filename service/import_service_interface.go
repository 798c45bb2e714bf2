package service

import (
	"context"
	"io"

	"github.com/keapril/WebInventory/models"
)

// ImportServiceInterface defines the contract for CSV catalog ingestion
type ImportServiceInterface interface {
	ImportCSV(ctx context.Context, r io.Reader) (*models.ImportResponse, error)
}
