package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBreadcrumbs(t *testing.T) {
	tests := []struct {
		title string
		url   string
		page  string
		path  []string
	}{
		{
			title: "No Path",
			url:   "",
			page:  "",
		},
		{
			title: "Homepage",
			url:   "/",
			page:  "",
		},
		{
			title: "Single Segment",
			url:   "/about",
			page:  "about",
		},
		{
			title: "Writeups Year",
			url:   "/writeups/2022",
			page:  "2022",
			path:  []string{"writeups"},
		},
		{
			title: "Concept",
			url:   "/concepts/depth-first-search",
			page:  "depth-first-search",
			path:  []string{"concepts"},
		},
		{
			title: "Deep Path",
			url:   "/writeups/2022/day/5",
			page:  "5",
			path:  []string{"writeups", "2022", "day"},
		},
		{
			title: "Trailing Separator",
			url:   "/writeups/",
			page:  "writeups",
		},
		{
			title: "Consecutive Separators",
			url:   "/writeups//2022",
			page:  "2022",
			path:  []string{"writeups"},
		},
		{
			title: "Only Separators",
			url:   "///",
			page:  "",
		},
		{
			title: "No Leading Separator",
			url:   "writeups/2022",
			page:  "2022",
			path:  []string{"writeups"},
		},
	}

	for _, tt := range tests {
		b := ParseBreadcrumbs(tt.url)
		assert.Equal(t, tt.page, b.Page, "failed for title: %s", tt.title)
		if tt.path == nil {
			assert.Nil(t, b.Path, "failed for title: %s", tt.title)
		} else {
			assert.Equal(t, tt.path, b.Path, "failed for title: %s", tt.title)
		}
	}
}

func TestParseBreadcrumbsIsPure(t *testing.T) {
	for _, url := range []string{"", "/", "/about", "/writeups/2022/day/5"} {
		assert.Equal(t, ParseBreadcrumbs(url), ParseBreadcrumbs(url))
	}
}
