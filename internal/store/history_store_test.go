package store_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigsum/internal/domain"
	"bigsum/internal/store"
)

func TestHistory_AppendList_OK(t *testing.T) {
	home := t.TempDir()
	var hs domain.HistoryStore = store.NewHistoryFileStore(home)

	got, err := hs.List(0)
	require.NoError(t, err)
	assert.Empty(t, got, "missing file is an empty history")

	first := domain.Record{A: "999", B: "1", Sum: "1000", CreatedUTC: 1}
	second := domain.Record{A: "1,200", B: "1,500", Sum: "2,700", CreatedUTC: 2}
	require.NoError(t, hs.Append(first))
	require.NoError(t, hs.Append(second))

	got, err = hs.List(0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Record{first, second}, got)

	got, err = hs.List(1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Record{second}, got)

	got, err = hs.List(10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHistory_Clear(t *testing.T) {
	home := t.TempDir()
	hs := store.NewHistoryFileStore(home)

	require.NoError(t, hs.Append(domain.Record{A: "1", B: "2", Sum: "3"}))
	require.NoError(t, hs.Clear())

	got, err := hs.List(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistory_Capped(t *testing.T) {
	home := t.TempDir()
	hs := store.NewHistoryFileStore(home)

	for i := 0; i < store.MaxHistory+5; i++ {
		n := strconv.Itoa(i)
		require.NoError(t, hs.Append(domain.Record{A: n, B: "0", Sum: n}))
	}

	got, err := hs.List(0)
	require.NoError(t, err)
	require.Len(t, got, store.MaxHistory)
	assert.Equal(t, "5", got[0].A)
	assert.Equal(t, strconv.Itoa(store.MaxHistory+4), got[len(got)-1].A)
}

func TestHistory_NoTempFilesLeft(t *testing.T) {
	home := t.TempDir()
	hs := store.NewHistoryFileStore(home)
	require.NoError(t, hs.Append(domain.Record{A: "1", B: "1", Sum: "2"}))

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "history.json", entries[0].Name())

	info, err := os.Stat(filepath.Join(home, "history.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestHistory_CorruptFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "history.json"), []byte("{"), 0o600))

	hs := store.NewHistoryFileStore(home)
	_, err := hs.List(0)
	require.Error(t, err)
	require.Error(t, hs.Append(domain.Record{A: "1", B: "1", Sum: "2"}))
}
