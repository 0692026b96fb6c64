package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

func TestRegistryFile_LoadMissingFile(t *testing.T) {
	store := NewRegistryFile(filepath.Join(t.TempDir(), "data", "domains.json"), testLogger())

	registry, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, registry)
	assert.Empty(t, registry)
}

func TestRegistryFile_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))

	registry, err := NewRegistryFile(path, testLogger()).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, registry)
}

func TestRegistryFile_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewRegistryFile(path, testLogger()).Load(context.Background())

	assert.Error(t, err)
}

func TestRegistryFile_SaveCreatesDirectoryAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "domains.json")
	store := NewRegistryFile(path, testLogger())
	ctx := context.Background()

	want := domain.Registry{
		"example.com": {Port: 3000, Status: domain.DomainStatusActive},
		"other.org":   {Port: 8080, Status: domain.DomainStatusActive},
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRegistryFile_SaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.json")
	store := NewRegistryFile(path, testLogger())

	require.NoError(t, store.Save(context.Background(), domain.Registry{
		"example.com": {Port: 3000, Status: domain.DomainStatusActive},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"example.com\": {\n    \"port\": 3000,\n    \"status\": \"active\"\n  }\n}\n", string(data))
}

func TestRegistryFile_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewRegistryFile(filepath.Join(dir, "domains.json"), testLogger())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(context.Background(), domain.Registry{
			"example.com": {Port: 3000 + i, Status: domain.DomainStatusActive},
		}))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "domains.json", entries[0].Name())
}

func TestRegistryFile_ConcurrentReadersSeeCompleteDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.json")
	store := NewRegistryFile(path, testLogger())
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.Registry{}))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		registry := domain.Registry{}
		for i := 0; i < 50; i++ {
			registry[fmt.Sprintf("d%d.example.com", i)] = domain.DomainRecord{Port: 2000 + i, Status: domain.DomainStatusActive}
			assert.NoError(t, store.Save(ctx, registry))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := store.Load(ctx)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data", "domains.json"), expandTilde("~/data/domains.json"))
	assert.Equal(t, "/var/lib/domains.json", expandTilde("/var/lib/domains.json"))
}
