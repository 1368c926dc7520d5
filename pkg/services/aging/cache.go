package aging

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/aging-atlas/pkg/models/domain"
	"github.com/de-tools/aging-atlas/pkg/store/workbook"
)

// Snapshot is everything built from the source workbooks.
type Snapshot struct {
	Dataset domain.Dataset
	Seed    domain.LegacySeed
}

// Loader builds a snapshot from scratch.
type Loader func(ctx context.Context) (*Snapshot, error)

// Cache builds the snapshot on first use and serves it for the life of the process.
// Concurrent first callers wait for a single build; a failed build is retried on the next call.
type Cache struct {
	loader   Loader
	mu       sync.Mutex
	snapshot atomic.Pointer[Snapshot]
}

func NewCache(loader Loader) *Cache {
	return &Cache{loader: loader}
}

func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s := c.snapshot.Load(); s != nil {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s := c.snapshot.Load(); s != nil {
		return s, nil
	}
	s, err := c.loader(ctx)
	if err != nil {
		return nil, err
	}
	c.snapshot.Store(s)
	return s, nil
}

func (c *Cache) Dataset(ctx context.Context) (domain.Dataset, error) {
	s, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.Dataset, nil
}

// Invalidate is reserved for reloadable sources. The workbooks are static for the
// process lifetime, so it keeps the current snapshot.
func (c *Cache) Invalidate() {}

// Sources locates the two input workbooks.
type Sources struct {
	CurrentPath string
	LegacyPath  string
	Sheets      []domain.Sheet
}

// SourceLoader reads the legacy workbook for the seed and then the current workbook.
func SourceLoader(src Sources) Loader {
	return func(ctx context.Context) (*Snapshot, error) {
		logger := zerolog.Ctx(ctx)
		started := time.Now()

		sheets := src.Sheets
		if len(sheets) == 0 {
			sheets = domain.Sheets
		}

		legacy, err := workbook.Open(src.LegacyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open legacy workbook: %w", err)
		}
		defer closeWorkbook(logger, legacy, src.LegacyPath)

		seed, err := LoadLegacySeed(legacy, sheets)
		if err != nil {
			return nil, fmt.Errorf("failed to load legacy seed: %w", err)
		}

		current, err := workbook.Open(src.CurrentPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open current workbook: %w", err)
		}
		defer closeWorkbook(logger, current, src.CurrentPath)

		dataset, err := Build(current, sheets, seed)
		if err != nil {
			return nil, fmt.Errorf("failed to build dataset: %w", err)
		}

		logger.Info().
			Str("current", src.CurrentPath).
			Str("legacy", src.LegacyPath).
			Int("sheets", len(dataset)).
			Dur("took", time.Since(started)).
			Msg("dataset built")

		return &Snapshot{Dataset: dataset, Seed: seed}, nil
	}
}

func closeWorkbook(logger *zerolog.Logger, wb workbook.Workbook, path string) {
	if err := wb.Close(); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to close workbook")
	}
}
