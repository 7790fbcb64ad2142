package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractal/internal/adapters/cas"
	"go.trai.ch/fractal/internal/core/domain"
)

func snapshot(fp string) domain.Snapshot {
	return domain.Snapshot{
		Fingerprint: fp,
		Params:      domain.DefaultParams(),
		Cells: map[int]map[int]float64{
			-2: {0: 0.5, 3: 0.25},
			7:  {-1: 1},
		},
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store := cas.NewStore(filepath.Join(t.TempDir(), "snapshots"))

	got, err := store.Get("0123456789abcdef")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Put(snapshot("0123456789abcdef")))

	got, err = store.Get("0123456789abcdef")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snapshot("0123456789abcdef"), *got)
}

func TestStore_Persistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")

	require.NoError(t, cas.NewStore(dir).Put(snapshot("00000000000000aa")))

	got, err := cas.NewStore(dir).Get("00000000000000aa")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.25, got.Cells[-2][3])
	assert.Equal(t, domain.KindMandelbrot, got.Params.Kind)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "00000000000000aa.json", entries[0].Name())
}

func TestStore_CorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600))

	_, err := cas.NewStore(dir).Get("bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSnapshotReadFailed)
}

func TestStore_FingerprintMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, cas.NewStore(dir).Put(snapshot("aaaa")))
	require.NoError(t, os.Rename(filepath.Join(dir, "aaaa.json"), filepath.Join(dir, "bbbb.json")))

	_, err := cas.NewStore(dir).Get("bbbb")
	assert.ErrorIs(t, err, domain.ErrSnapshotReadFailed)
}

func TestStore_WriteFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	err := cas.NewStore(file).Put(snapshot("aaaa"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSnapshotWriteFailed)
}
