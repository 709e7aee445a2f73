package core

import "strings"

// Breadcrumbs describes where a page sits in the site hierarchy. Path is nil,
// rather than empty, when the page has no intermediate segments.
type Breadcrumbs struct {
	Page string   `json:"page"`
	Path []string `json:"path,omitempty"`
}

// ParseBreadcrumbs splits a URL path such as "/writeups/2022" into its last
// segment and the segments leading to it. An empty url means there is no
// path at all.
func ParseBreadcrumbs(url string) Breadcrumbs {
	if url == "" || url == "/" {
		return Breadcrumbs{}
	}

	segments := []string{}
	for _, segment := range strings.Split(strings.TrimPrefix(url, "/"), "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	if len(segments) == 0 {
		return Breadcrumbs{}
	}

	b := Breadcrumbs{Page: segments[len(segments)-1]}
	if len(segments) > 1 {
		b.Path = segments[:len(segments)-1]
	}

	return b
}
