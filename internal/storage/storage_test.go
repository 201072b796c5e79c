package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/devmenu/internal/property"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()
	db, err := OpenSQLite(filepath.Join(dir, "db", "eeprom.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return map[string]Backend{
		"memory": NewImage(ImageSize),
		"diskv":  NewDisk(filepath.Join(dir, "slots")),
		"sqlite": db,
	}
}

func TestBackendsRoundTripProperties(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			level := &property.Unsigned[uint16]{Cell: property.NewCell[uint16](1234), Slot: 0x10, Max: 9999}
			gain := &property.Float{Cell: property.NewCell[float32](1.5), Slot: 0x12, Min: -10, Max: 10, Frac: 2}
			require.NoError(t, property.Store(level, b))
			require.NoError(t, property.Store(gain, b))

			level.Cell.Store(0)
			gain.Cell.Store(0)
			_, err := property.Load(level, b, property.ClampMin)
			require.NoError(t, err)
			_, err = property.Load(gain, b, property.ClampMin)
			require.NoError(t, err)
			assert.Equal(t, uint16(1234), level.Cell.Load())
			assert.Equal(t, float32(1.5), gain.Cell.Load())
		})
	}
}

func TestBackendsIgnoreNoPersist(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Write(property.NoPersist, []byte{1, 2}))
			data, err := b.Read(property.NoPersist, 2)
			require.NoError(t, err)
			assert.Empty(t, data)
		})
	}
}

func TestUnwrittenSlots(t *testing.T) {
	all := backends(t)
	for _, name := range []string{"diskv", "sqlite"} {
		_, err := all[name].Read(0x20, 2)
		assert.ErrorIs(t, err, property.ErrUnset, name)
	}
	data, err := all["memory"].Read(0x20, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF}, data)
}

func TestErasedImageNormalizesOnLoad(t *testing.T) {
	img := NewImage(ImageSize)
	p := &property.Unsigned[uint8]{Cell: property.NewCell[uint8](5), Slot: 0x30, Max: 12}
	normalized, err := property.Load(p, img, property.ClampMax)
	require.NoError(t, err)
	assert.True(t, normalized)
	assert.Equal(t, uint8(12), p.Cell.Load())
}

func TestImageBounds(t *testing.T) {
	img := NewImage(16)
	assert.Error(t, img.Write(15, []byte{1, 2}))
	_, err := img.Read(14, 4)
	assert.Error(t, err)
	require.NoError(t, img.Write(14, []byte{0xAB, 0xCD}))
	assert.Equal(t, []byte{0xAB, 0xCD}, img.Bytes()[14:])
}

func TestSQLiteOverwritesSlot(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Write(3, []byte{1}))
	require.NoError(t, db.Write(3, []byte{2}))
	n, err := db.Slots()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	data, err := db.Read(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, data)
}

func TestDiskErase(t *testing.T) {
	d := NewDisk(t.TempDir())
	require.NoError(t, d.Write(7, []byte{9}))
	require.NoError(t, d.Erase())
	_, err := d.Read(7, 1)
	assert.ErrorIs(t, err, property.ErrUnset)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" SQLite ")
	require.NoError(t, err)
	assert.Equal(t, KindSQLite, k)
	k, err = ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindMemory, k)
	_, err = ParseKind("flash")
	assert.Error(t, err)
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()
	b, err := Open(KindSQLite, dir)
	require.NoError(t, err)
	defer b.Close()
	_, ok := b.(*SQLite)
	assert.True(t, ok)

	b, err = Open(KindMemory, "")
	require.NoError(t, err)
	_, ok = b.(*Image)
	assert.True(t, ok)

	_, err = Open(Kind("flash"), dir)
	assert.Error(t, err)
}
