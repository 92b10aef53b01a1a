package storage_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbet/floreria/pkg/storage"
)

func localDisk(t *testing.T) storage.Disk {
	t.Helper()
	t.Setenv("STORAGE_LOCAL_ROOT", t.TempDir())
	t.Setenv("STORAGE_URL", "http://localhost:8080/storage")
	storage.Connect()
	return storage.Use("local")
}

func TestLocalDiskRoundTrip(t *testing.T) {
	disk := localDisk(t)

	require.NoError(t, disk.Put("products/rosas.jpg", []byte("jpegdata")))
	assert.True(t, disk.Exists("products/rosas.jpg"))

	data, err := disk.Get("products/rosas.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(data))

	rc, err := disk.GetStream("products/rosas.jpg")
	require.NoError(t, err)
	streamed, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "jpegdata", string(streamed))
}

func TestLocalDiskPutStream(t *testing.T) {
	disk := localDisk(t)

	require.NoError(t, disk.PutStream("products/a.png", strings.NewReader("pngdata")))
	data, err := disk.Get("products/a.png")
	require.NoError(t, err)
	assert.Equal(t, "pngdata", string(data))
}

func TestLocalDiskDelete(t *testing.T) {
	disk := localDisk(t)

	require.NoError(t, disk.Put("tmp/x", []byte("x")))
	require.NoError(t, disk.Delete("tmp/x"))
	assert.False(t, disk.Exists("tmp/x"))

	// Deleting a missing file is not an error.
	require.NoError(t, disk.Delete("tmp/x"))
}

func TestLocalDiskURL(t *testing.T) {
	disk := localDisk(t)
	assert.Equal(t, "http://localhost:8080/storage/products/rosas.jpg", disk.URL("products/rosas.jpg"))
}

func TestLocalDiskFiles(t *testing.T) {
	disk := localDisk(t)

	require.NoError(t, disk.Put("products/a.jpg", []byte("a")))
	require.NoError(t, disk.Put("products/b.jpg", []byte("b")))

	files, err := disk.Files("products")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"products/a.jpg", "products/b.jpg"}, files)
}
