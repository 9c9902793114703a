package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"contentHub/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)

	name := objectName("posts", "Photo.PNG", "image/png", now)
	assert.True(t, strings.HasPrefix(name, "posts/2024/03/"), name)
	assert.True(t, strings.HasSuffix(name, ".png"), name)

	name = objectName("users", "blob", "image/gif", now)
	assert.True(t, strings.HasSuffix(name, ".gif"), name)
}

func TestCheckRef(t *testing.T) {
	assert.NoError(t, checkRef("posts/2024/03/a.png"))
	assert.ErrorIs(t, checkRef(""), ErrInvalidRef)
	assert.ErrorIs(t, checkRef("/etc/passwd"), ErrInvalidRef)
	assert.ErrorIs(t, checkRef("posts/../../secret"), ErrInvalidRef)
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStorage(root)
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := store.Save(ctx, "books", "cover.jpg", strings.NewReader("jpeg bytes"), 10, "image/jpeg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, store.Delete(ctx, ref))
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "posts", "a.png", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStorage_Local(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Driver: "local", LocalDir: t.TempDir()}}

	store, err := NewStorage(context.Background(), cfg, zerolog.Nop())

	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, store)
}

func TestNewStorage_Unknown(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Driver: "ftp"}}

	_, err := NewStorage(context.Background(), cfg, zerolog.Nop())

	assert.Error(t, err)
}
