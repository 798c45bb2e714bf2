package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
)

// ReportService renders the current catalog as a printable inventory report:
// an HTML template, turned into a PDF by headless Chrome.
type ReportService struct {
	catalog  repository.CatalogRepositoryInterface
	warranty *WarrantyService
	baseURL  string
}

// NewReportService creates a new ReportService. baseURL is where the HTML
// render endpoint is served; Chrome navigates there for printing.
func NewReportService(catalog repository.CatalogRepositoryInterface, warranty *WarrantyService, baseURL string) *ReportService {
	return &ReportService{
		catalog:  catalog,
		warranty: warranty,
		baseURL:  baseURL,
	}
}

// detectChromePath detects the path to a Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// reportRow is one line of the rendered report
type reportRow struct {
	Item           models.Item
	Accessories    string
	WarrantyEnd    string
	WarrantyStatus WarrantyStatus
}

// RenderHTML renders the inventory report template over the current catalog
func (s *ReportService) RenderHTML(ctx context.Context) (string, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog for report: %w", err)
	}

	rows := make([]reportRow, 0, len(items))
	for _, it := range items {
		status, _ := s.warranty.Status(it.WarrantyEnd)
		rows = append(rows, reportRow{
			Item:           it,
			Accessories:    it.Accessories.Display(3),
			WarrantyEnd:    it.WarrantyEnd.String(),
			WarrantyStatus: status,
		})
	}

	templatePath := filepath.Join("templates", "report.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	data := struct {
		Rows        []reportRow
		GeneratedAt string
		Total       int
	}{
		Rows:        rows,
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		Total:       len(rows),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the rendered report to an A4 PDF using headless Chrome
func (s *ReportService) GeneratePDF(ctx context.Context) ([]byte, error) {
	chromePath := detectChromePath()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.baseURL + "/reports/inventory"

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
