package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultUploadTimeout bounds a single catalog upload, storage write included.
const DefaultUploadTimeout = 10 * time.Minute

// CatalogStore persists and loads the catalog.
// Read never fails: implementations fall back until they find data.
type CatalogStore interface {
	Write(ctx context.Context, products []Product) (Source, error)
	Read(ctx context.Context) Snapshot
	IsPrimaryReady() bool
	WriteTarget() Source
}

// ServiceOptions tunes upload handling. Zero values select defaults.
type ServiceOptions struct {
	MaxConcurrentUploads int
	MaxUploadWait        time.Duration
	UploadTimeout        time.Duration
}

// Service provides the catalog operations used by the web server and CLI.
type Service struct {
	store         CatalogStore
	limiter       *UploadLimiter
	uploadTimeout time.Duration
}

// NewService creates a Service over store.
func NewService(store CatalogStore, opts ServiceOptions) *Service {
	timeout := opts.UploadTimeout
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	return &Service{
		store:         store,
		limiter:       NewUploadLimiter(opts.MaxConcurrentUploads, opts.MaxUploadWait),
		uploadTimeout: timeout,
	}
}

// Upload normalizes rows and replaces the stored catalog with the result.
// Validation failures reject the whole batch before storage is touched.
func (s *Service) Upload(ctx context.Context, fileName string, rows []Row) (*UploadResult, error) {
	start := time.Now()
	uploadID := uuid.New().String()
	logger := slog.With(
		"upload_id", uploadID,
		"file", fileName,
		"client_ip", ClientIPFromContext(ctx),
	)

	products, err := Normalize(rows)
	if err != nil {
		logger.Warn("upload rejected", "rows", len(rows), "error", err)
		return nil, err
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	writeCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	target, err := s.store.Write(writeCtx, products)
	if err != nil {
		logger.Error("upload failed", "products", len(products), "target", target, "error", err)
		return nil, fmt.Errorf("store catalog: %w", err)
	}

	result := &UploadResult{
		UploadID: uploadID,
		FileName: fileName,
		Count:    len(products),
		Storage:  target.StorageLabel(),
		Message:  fmt.Sprintf("Successfully uploaded %d products to %s", len(products), target.StorageLabel()),
		Duration: time.Since(start),
	}
	logger.Info("upload complete",
		"products", result.Count,
		"target", target,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

// Catalog returns the current catalog and where it was loaded from.
func (s *Service) Catalog(ctx context.Context) Snapshot {
	return s.store.Read(ctx)
}

// BrowseResult is one page of the catalog plus the data the filters need.
type BrowseResult struct {
	Page      Page     `json:"page"`
	Source    Source   `json:"source"`
	Companies []string `json:"companies"`
}

// Browse loads the catalog and runs the query pipeline over it.
func (s *Service) Browse(ctx context.Context, c Criteria, page, pageSize int) BrowseResult {
	snap := s.store.Read(ctx)
	return BrowseResult{
		Page:      Query(snap.Products, c, page, pageSize),
		Source:    snap.Source,
		Companies: Companies(snap.Products),
	}
}

// Status describes the storage configuration and current catalog.
type Status struct {
	PrimaryReady bool                `json:"primaryReady"`
	WriteTarget  Source              `json:"writeTarget"`
	ReadSource   Source              `json:"readSource"`
	Count        int                 `json:"count"`
	Uploads      UploadLimiterStatus `json:"uploads"`
}

// Status reports storage readiness and the size of the served catalog.
func (s *Service) Status(ctx context.Context) Status {
	snap := s.store.Read(ctx)
	return Status{
		PrimaryReady: s.store.IsPrimaryReady(),
		WriteTarget:  s.store.WriteTarget(),
		ReadSource:   snap.Source,
		Count:        len(snap.Products),
		Uploads:      s.limiter.Status(),
	}
}

// IsPrimaryReady reports whether uploads go to the primary store.
func (s *Service) IsPrimaryReady() bool {
	return s.store.IsPrimaryReady()
}

// WaitForUploads blocks until in-flight uploads finish or ctx ends.
func (s *Service) WaitForUploads(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

// ActiveUploads returns the number of uploads in progress.
func (s *Service) ActiveUploads() int {
	return s.limiter.ActiveCount()
}
