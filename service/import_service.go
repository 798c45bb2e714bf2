package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
	"github.com/keapril/WebInventory/utils"
)

// ImportService ingests catalog rows from an uploaded CSV file. Column
// mapping is header-driven and case-insensitive; rows without a usable SKU
// are skipped; a malformed row never aborts the batch.
// Implements ImportServiceInterface.
type ImportService struct {
	catalog repository.CatalogRepositoryInterface
}

// NewImportService creates a new ImportService
func NewImportService(catalog repository.CatalogRepositoryInterface) *ImportService {
	return &ImportService{catalog: catalog}
}

// Ensure ImportService implements ImportServiceInterface
var _ ImportServiceInterface = (*ImportService)(nil)

// ImportCSV reads the whole file, detects its encoding (UTF-8 with or
// without BOM, then Big5), and upserts one item per row keyed by SKU.
// Pre-existing SKUs are merged, not duplicated.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (*models.ImportResponse, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	decoded, err := utils.DecodeText(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["sku"]; !ok {
		return nil, fmt.Errorf("CSV has no sku column")
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	result := &models.ImportResponse{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip it, keep the batch going
			log.Printf("⚠️  Skipping malformed CSV row: %v", err)
			result.Failed++
			continue
		}

		sku := field(row, "sku")
		if sku == "" || strings.ToLower(sku) == "nan" {
			result.Skipped++
			continue
		}

		stock, err := strconv.Atoi(field(row, "stock"))
		if err != nil {
			stock = 0
		}

		item := models.Item{
			SKU:           sku,
			Code:          field(row, "code"),
			Category:      field(row, "category"),
			Number:        field(row, "number"),
			Name:          field(row, "name"),
			ImageRef:      field(row, "imagefile"),
			Stock:         stock,
			Location:      field(row, "location"),
			SerialNumber:  field(row, "sn"),
			WarrantyStart: models.ParseDate(field(row, "warrantystart")),
			WarrantyEnd:   models.ParseDate(field(row, "warrantyend")),
			Accessories:   models.ParseAccessories(field(row, "accessories")),
			ItemType:      models.NormalizeItemType(field(row, "itemtype")),
		}

		if err := s.catalog.Upsert(ctx, item); err != nil {
			log.Printf("❌ Import upsert failed for %s: %v", sku, err)
			result.Failed++
			continue
		}
		result.Imported++
	}

	log.Printf("🎉 CSV import complete: %d imported, %d skipped, %d failed",
		result.Imported, result.Skipped, result.Failed)
	return result, nil
}
