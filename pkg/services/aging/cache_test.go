package aging

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/de-tools/aging-atlas/pkg/models/domain"
)

func TestCache_BuildsOnceUnderConcurrentReaders(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	cache := NewCache(func(ctx context.Context) (*Snapshot, error) {
		calls.Add(1)
		<-release
		return &Snapshot{Dataset: domain.Dataset{domain.SheetPSD: {}}}, nil
	})

	var wg sync.WaitGroup
	results := make([]domain.Dataset, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := cache.Dataset(context.Background())
			assert.NoError(t, err)
			results[i] = ds
		}(i)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, ds := range results {
		assert.Contains(t, ds, domain.SheetPSD)
	}

	cache.Invalidate()
	_, err := cache.Dataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_FailedBuildIsRetried(t *testing.T) {
	var calls atomic.Int32
	cache := NewCache(func(ctx context.Context) (*Snapshot, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("workbook locked")
		}
		return &Snapshot{Seed: domain.LegacySeed{}}, nil
	})

	_, err := cache.Snapshot(context.Background())
	require.EqualError(t, err, "workbook locked")

	snapshot, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Seed)
	assert.Equal(t, int32(2), calls.Load())
}

// writeSourceWorkbooks writes the two-month Retail fixture as real xlsx files.
func writeSourceWorkbooks(t *testing.T) Sources {
	t.Helper()
	dir := t.TempDir()

	current := excelize.NewFile()
	t.Cleanup(func() { _ = current.Close() })
	_, err := current.NewSheet("PSD")
	require.NoError(t, err)
	cells := map[string]any{
		"B1": time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		"L1": time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		"B2": "1-5", "H2": "30-90", "J2": "90+", "L2": "1-5",
		"A3": "Retail",
		"A4": "Current", "C4": 100, "M4": 90,
		"A5": "Inflow", "C5": 10, "M5": 8,
		"A6": "Outflow", "C6": 5, "M6": 4,
		"A7": "30-90 to 90+", "C7": 2, "M7": 1,
	}
	for ref, v := range cells {
		require.NoError(t, current.SetCellValue("PSD", ref, v))
	}
	currentPath := filepath.Join(dir, "current.xlsx")
	require.NoError(t, current.SaveAs(currentPath))

	legacy := excelize.NewFile()
	t.Cleanup(func() { _ = legacy.Close() })
	_, err = legacy.NewSheet("PSD")
	require.NoError(t, err)
	for ref, v := range map[string]any{"A1": "Retail", "A2": "Current", "C2": 80, "C5": 3} {
		require.NoError(t, legacy.SetCellValue("PSD", ref, v))
	}
	legacyPath := filepath.Join(dir, "legacy.xlsx")
	require.NoError(t, legacy.SaveAs(legacyPath))

	return Sources{CurrentPath: currentPath, LegacyPath: legacyPath, Sheets: []domain.Sheet{domain.SheetPSD}}
}

func TestSourceLoader_EndToEnd(t *testing.T) {
	src := writeSourceWorkbooks(t)
	ctx := zerolog.Nop().WithContext(context.Background())

	snapshot, err := SourceLoader(src)(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.SeedBalance{Current: 80, Transition: 3}, snapshot.Seed[domain.SheetPSD]["Retail"][domain.Bucket1To5])

	records := snapshot.Dataset.Records(domain.SheetPSD, "Retail", domain.Bucket1To5)
	require.Len(t, records, 2)
	assert.Equal(t, "Jan 24", records[0].Period.Label)
	assert.Equal(t, 6.25, records[0].Recovery)
	assert.Equal(t, 0.1, records[0].Portfolio)
	assert.Equal(t, "Feb 24", records[1].Period.Label)
	assert.Equal(t, 4.0, records[1].Recovery)
	assert.Equal(t, 0.09, records[1].Portfolio)

	again, err := SourceLoader(src)(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, again)
}

func TestSourceLoader_LegacyXLS(t *testing.T) {
	src := writeSourceWorkbooks(t)
	src.LegacyPath = filepath.Join("..", "..", "store", "workbook", "testdata", "legacy.xls")
	ctx := zerolog.Nop().WithContext(context.Background())

	snapshot, err := SourceLoader(src)(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.SeedBalance{Current: 80, Transition: 3}, snapshot.Seed[domain.SheetPSD]["Retail"][domain.Bucket1To5])
	records := snapshot.Dataset.Records(domain.SheetPSD, "Retail", domain.Bucket1To5)
	require.Len(t, records, 2)
	assert.Equal(t, 6.25, records[0].Recovery)
}

func TestSourceLoader_MissingWorkbook(t *testing.T) {
	src := writeSourceWorkbooks(t)
	ctx := zerolog.Nop().WithContext(context.Background())

	missingLegacy := src
	missingLegacy.LegacyPath = filepath.Join(t.TempDir(), "absent.xlsx")
	_, err := SourceLoader(missingLegacy)(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open legacy workbook")

	missingCurrent := src
	missingCurrent.CurrentPath = filepath.Join(t.TempDir(), "absent.xlsx")
	_, err = SourceLoader(missingCurrent)(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open current workbook")

	cache := NewCache(SourceLoader(missingCurrent))
	_, err = cache.Dataset(ctx)
	assert.Error(t, err)
}
