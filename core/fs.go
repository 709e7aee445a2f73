package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	ContentDirectory  string = "content"
	WriteupsDirectory string = "content/writeups"
)

// Store is the content store writeups are retrieved from.
type Store interface {
	// GetCollection returns all writeups accepted by filter. A nil filter
	// accepts every writeup.
	GetCollection(ctx context.Context, filter func(*Writeup) bool) (Writeups, error)
}

// FS is a [Store] backed by markdown files under [WriteupsDirectory].
type FS struct {
	afero  *afero.Afero
	parser *Parser
}

// NewFS creates a store rooted at path on the OS filesystem.
func NewFS(path string, production bool) *FS {
	return NewFSFromAfero(afero.NewBasePathFs(afero.NewOsFs(), path), production)
}

func NewFSFromAfero(fs afero.Fs, production bool) *FS {
	return &FS{
		afero:  &afero.Afero{Fs: fs},
		parser: NewParser(production),
	}
}

func (f *FS) ReadFile(filename string) ([]byte, error) {
	return f.afero.ReadFile(filename)
}

func (f *FS) WriteFile(filename string, data []byte) error {
	err := f.afero.MkdirAll(filepath.Dir(filename), 0777)
	if err != nil {
		return err
	}

	return f.afero.WriteFile(filename, data, 0644)
}

func (f *FS) GetWriteup(filename string) (*Writeup, error) {
	raw, err := f.afero.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	id := strings.TrimPrefix(filepath.ToSlash(filename), WriteupsDirectory)
	return f.parser.Parse(id, string(raw))
}

func (f *FS) GetCollection(ctx context.Context, filter func(*Writeup) bool) (Writeups, error) {
	ww := Writeups{}
	err := f.walk(ctx, func(filename string) error {
		w, err := f.GetWriteup(filename)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", filename, err)
		}

		if filter == nil || filter(w) {
			ww = append(ww, w)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ww, nil
}

// Check parses every writeup and reports all failures at once.
func (f *FS) Check(ctx context.Context) (int, error) {
	var (
		count int
		errs  []error
	)

	err := f.walk(ctx, func(filename string) error {
		count++
		if _, err := f.GetWriteup(filename); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filename, err))
		}
		return nil
	})
	if err != nil {
		return count, err
	}

	return count, errors.Join(errs...)
}

func (f *FS) walk(ctx context.Context, fn func(filename string) error) error {
	exists, err := f.afero.DirExists(WriteupsDirectory)
	if err != nil || !exists {
		return err
	}

	return f.afero.Walk(WriteupsDirectory, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}

		return fn(p)
	})
}
