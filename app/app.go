package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/keapril/WebInventory/app/controller"
	"github.com/keapril/WebInventory/app/router"
	"github.com/keapril/WebInventory/cache"
	"github.com/keapril/WebInventory/config"
	"github.com/keapril/WebInventory/db"
	"github.com/keapril/WebInventory/repository"
	"github.com/keapril/WebInventory/service"
	"github.com/keapril/WebInventory/storage"
)

// Initialize wires every dependency and registers the routes. All clients
// are constructed here and injected; the returned cleanup function is owned
// by the caller and releases them in reverse order.
func Initialize(ctx context.Context, cfg *config.Config) (func(), error) {
	// Document store
	fsClient, err := db.NewClient(ctx, cfg.FirestoreProjectID, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	catalogRepo := repository.NewCatalogRepository(fsClient, cfg.ItemsCollection)
	ledgerRepo := repository.NewLedgerRepository(fsClient, cfg.LogsCollection)

	// Object storage: primary first, legacy as fallback and signer
	var backends []storage.Backend
	var signer storage.Signer
	publicBase := ""

	if cfg.S3.IsConfigured() {
		s3Backend, err := storage.NewS3Backend(cfg.S3)
		if err != nil {
			fsClient.Close()
			return nil, err
		}
		backends = append(backends, s3Backend)
		publicBase = s3Backend.PublicBaseURL()
	} else {
		log.Printf("⚠️  Primary image backend not configured; uploads fall through to legacy")
	}

	var gcsBackend *storage.GCSBackend
	if cfg.LegacyBucket != "" {
		gcsBackend, err = storage.NewGCSBackend(ctx, cfg.LegacyBucket, cfg.CredentialsFile)
		if err != nil {
			fsClient.Close()
			return nil, err
		}
		backends = append(backends, gcsBackend)
		signer = gcsBackend
	} else {
		log.Printf("⚠️  Legacy image bucket not configured; legacy references resolve as-is")
	}

	urlCache := cache.New(cfg.RedisAddr)

	// Ledger wall-clock zone
	loc, err := time.LoadLocation(cfg.LedgerTimezone)
	if err != nil {
		log.Printf("⚠️  Unknown timezone %q, falling back to local: %v", cfg.LedgerTimezone, err)
		loc = time.Local
	}

	// Services
	imageStore := service.NewImageStore(backends, signer, publicBase, urlCache)
	stockService := service.NewStockService(catalogRepo, ledgerRepo, loc)
	reconcileService := service.NewReconcileService(catalogRepo)
	importService := service.NewImportService(catalogRepo)
	warrantyService := service.NewWarrantyService(cfg.WarrantyAlertDays)
	reportService := service.NewReportService(catalogRepo, warrantyService, cfg.BaseURL)

	// Controllers
	controllers := &router.Controllers{
		Item:        controller.NewItemController(catalogRepo, imageStore, warrantyService),
		Stock:       controller.NewStockController(stockService),
		Maintenance: controller.NewMaintenanceController(reconcileService, importService, catalogRepo),
		Image:       controller.NewImageController(imageStore, catalogRepo),
		Ledger:      controller.NewLedgerController(ledgerRepo, cfg.LedgerPageLimit),
		Warranty:    controller.NewWarrantyController(catalogRepo, warrantyService),
		Report:      controller.NewReportController(reportService),
	}

	router.SetupRoutes(controllers)

	cleanup := func() {
		if err := urlCache.Close(); err != nil {
			log.Printf("⚠️  Error closing cache: %v", err)
		}
		if gcsBackend != nil {
			if err := gcsBackend.Close(); err != nil {
				log.Printf("⚠️  Error closing legacy storage client: %v", err)
			}
		}
		if err := fsClient.Close(); err != nil {
			log.Printf("⚠️  Error closing document store client: %v", err)
		}
	}

	return cleanup, nil
}
