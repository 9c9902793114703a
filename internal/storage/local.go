package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage writes uploads under a directory on disk, the layout the
// static file server exposes.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", root, err)
	}
	return &LocalStorage{root: root}, nil
}

func (l *LocalStorage) Save(ctx context.Context, folder, fileName string, file io.Reader, _ int64, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := objectName(folder, fileName, contentType, time.Now())
	target := filepath.Join(l.root, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create dir for %s: %w", name, err)
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}

	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(target)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	return name, nil
}

func (l *LocalStorage) Delete(_ context.Context, ref string) error {
	if err := checkRef(ref); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(ref)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", ref, err)
	}

	return nil
}
