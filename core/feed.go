package core

import (
	"cmp"
	"fmt"
	urlpkg "net/url"
	"slices"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gorilla/feeds"
	"github.com/samber/lo"
)

// FeedItem is the syndication view of a single writeup.
type FeedItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pubDate"`
}

// BuildFeed orders the writeups from most to least recently published and
// maps them to feed items. Writeups published on the same date are ordered by
// day, latest first. Every writeup is expected to have a publish date; the
// ones that do not, or whose date does not parse, get the zero time.
func BuildFeed(ww Writeups) []*FeedItem {
	dates := make(map[*Writeup]time.Time, len(ww))
	for _, w := range ww {
		dates[w] = parsePubDate(w.PubDate)
	}

	sorted := slices.Clone(ww)
	slices.SortStableFunc(sorted, func(a, b *Writeup) int {
		if c := dates[b].Compare(dates[a]); c != 0 {
			return c
		}
		return cmp.Compare(b.Day, a.Day)
	})

	return lo.Map(sorted, func(w *Writeup, _ int) *FeedItem {
		return &FeedItem{
			Title:       fmt.Sprintf("David's AoC %d Day %d Solution", w.Year, w.Day),
			Link:        w.Link(),
			Description: "David solves: " + w.Title,
			PubDate:     dates[w],
		}
	})
}

func parsePubDate(s string) time.Time {
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

type FeedFormat string

const (
	FeedRSS  FeedFormat = "rss"
	FeedAtom FeedFormat = "atom"
	FeedJSON FeedFormat = "json"
)

// ContentType returns the media type of the rendered feed.
func (f FeedFormat) ContentType() string {
	switch f {
	case FeedAtom:
		return "application/atom+xml; charset=utf-8"
	case FeedJSON:
		return "application/feed+json; charset=utf-8"
	default:
		return "application/rss+xml; charset=utf-8"
	}
}

// Feed is a feed with its top-level metadata. Item links are resolved against
// Site when rendered.
type Feed struct {
	Title       string
	Description string
	Site        string
	Items       []*FeedItem
}

func RenderFeed(f *Feed, format FeedFormat) (string, error) {
	site, err := urlpkg.Parse(f.Site)
	if err != nil {
		return "", fmt.Errorf("invalid site url: %w", err)
	}

	feed := &feeds.Feed{
		Title:       f.Title,
		Link:        &feeds.Link{Href: site.String()},
		Description: f.Description,
		Items:       []*feeds.Item{},
	}

	for _, item := range f.Items {
		ref, err := urlpkg.Parse(item.Link)
		if err != nil {
			return "", fmt.Errorf("invalid item link %q: %w", item.Link, err)
		}

		link := site.ResolveReference(ref).String()
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       item.Title,
			Link:        &feeds.Link{Href: link},
			Id:          link,
			Description: item.Description,
			Created:     item.PubDate,
		})

		if item.PubDate.After(feed.Created) {
			feed.Created = item.PubDate
		}
	}

	switch format {
	case FeedRSS:
		return feed.ToRss()
	case FeedAtom:
		return feed.ToAtom()
	case FeedJSON:
		return feed.ToJSON()
	default:
		return "", fmt.Errorf("unknown feed format %q", format)
	}
}
