package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T, production bool, files map[string]string) *FS {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		filename := filepath.Join(WriteupsDirectory, name)
		require.NoError(t, fs.MkdirAll(filepath.Dir(filename), 0777))
		require.NoError(t, afero.WriteFile(fs, filename, []byte(content), 0644))
	}

	return NewFSFromAfero(fs, production)
}

func TestGetCollection(t *testing.T) {
	fs := newTestFS(t, true, map[string]string{
		"2022/5/README.md": "---\ntitle: Supply Stacks\nyear: 2022\nday: 5\nslug: 2022/day/5\npub_date: \"2022-12-05\"\nconcepts:\n  - stacks\n---\n\n## Part 1\n\nText.\n",
		"2022/6.md":        "---\ntitle: Tuning Trouble\nyear: 2022\nday: 6\n---\nDraft.",
		"2022/notes.txt":   "not a writeup",
	})

	ww, err := fs.GetCollection(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, ww, 2)

	assert.Equal(t, "2022/day/5", ww[0].Slug)
	assert.Equal(t, "2022/5", ww[0].ID)
	assert.Equal(t, "Supply Stacks", ww[0].Title)
	assert.Equal(t, "2022-12-05", ww[0].PubDate)
	assert.Equal(t, []string{"stacks"}, ww[0].Concepts)
	assert.Equal(t, "## Part 1\n\nText.", ww[0].Content)
	assert.True(t, ww[0].Published())

	assert.Equal(t, "2022/6", ww[1].Slug)
	assert.Equal(t, "Draft.", ww[1].Content)
	assert.False(t, ww[1].Published())

	ww, err = fs.GetCollection(context.Background(), func(w *Writeup) bool {
		return w.Day == 6
	})
	require.NoError(t, err)
	require.Len(t, ww, 1)
	assert.Equal(t, "Tuning Trouble", ww[0].Title)
}

func TestGetCollectionEmpty(t *testing.T) {
	fs := NewFSFromAfero(afero.NewMemMapFs(), true)

	ww, err := fs.GetCollection(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ww)
}

func TestGetCollectionCanceled(t *testing.T) {
	fs := newTestFS(t, true, map[string]string{
		"2022/1.md": "---\ntitle: A\nyear: 2022\nday: 1\n---\n",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.GetCollection(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetCollectionValidation(t *testing.T) {
	tests := []struct {
		title      string
		production bool
		content    string
		valid      bool
	}{
		{
			title:      "Published Without Title In Production",
			production: true,
			content:    "---\nyear: 2022\nday: 1\npub_date: \"2022-12-01\"\n---\n",
			valid:      false,
		},
		{
			title:      "Published Without Title In Development",
			production: false,
			content:    "---\nyear: 2022\nday: 1\npub_date: \"2022-12-01\"\n---\n",
			valid:      true,
		},
		{
			title:      "Draft Without Title In Production",
			production: true,
			content:    "---\nyear: 2022\nday: 1\n---\n",
			valid:      true,
		},
		{
			title:      "Day Out Of Range",
			production: false,
			content:    "---\ntitle: A\nyear: 2022\nday: 26\n---\n",
			valid:      false,
		},
		{
			title:      "Year Too Early",
			production: false,
			content:    "---\ntitle: A\nyear: 2014\nday: 1\n---\n",
			valid:      false,
		},
		{
			title:      "Malformed Publish Date",
			production: false,
			content:    "---\ntitle: A\nyear: 2022\nday: 1\npub_date: \"Dec 1st\"\n---\n",
			valid:      false,
		},
		{
			title:      "No Front Matter",
			production: false,
			content:    "# Day 1 (2022)\n",
			valid:      false,
		},
	}

	for _, tt := range tests {
		fs := newTestFS(t, tt.production, map[string]string{"2022/1.md": tt.content})
		_, err := fs.GetCollection(context.Background(), nil)
		if tt.valid {
			assert.NoError(t, err, "failed for title: %s", tt.title)
		} else {
			assert.Error(t, err, "failed for title: %s", tt.title)
		}
	}
}

func TestCheck(t *testing.T) {
	fs := newTestFS(t, true, map[string]string{
		"2022/1.md": "---\ntitle: A\nyear: 2022\nday: 1\n---\n",
		"2022/2.md": "---\ntitle: B\nyear: 2022\nday: 30\n---\n",
		"2022/3.md": "no front matter",
	})

	count, err := fs.Check(context.Background())
	assert.Equal(t, 3, count)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2022/2.md")
	assert.Contains(t, err.Error(), "2022/3.md")
	assert.NotContains(t, err.Error(), "2022/1.md")
}
