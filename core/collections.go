package core

import (
	"context"
	"slices"

	"github.com/samber/lo"
)

// GetPublishedWriteups retrieves the writeups visible in the given build
// mode. Production builds only see writeups with a publish date, while
// development builds see drafts too.
func GetPublishedWriteups(ctx context.Context, store Store, production bool) (Writeups, error) {
	return store.GetCollection(ctx, func(w *Writeup) bool {
		if production {
			return w.Published()
		}
		return true
	})
}

// YearGroups maps a year to its writeups, in the order they were retrieved.
type YearGroups map[int]Writeups

// Years returns the years present, most recent first.
func (g YearGroups) Years() []int {
	years := lo.Keys(g)
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// GetWriteupsByYear groups the published writeups by year. No sorting is
// applied, neither within a year nor across years.
func GetWriteupsByYear(ctx context.Context, store Store, production bool) (YearGroups, error) {
	ww, err := GetPublishedWriteups(ctx, store, production)
	if err != nil {
		return nil, err
	}

	groups := YearGroups{}
	for _, w := range ww {
		if _, ok := groups[w.Year]; !ok {
			groups[w.Year] = Writeups{}
		}

		groups[w.Year] = append(groups[w.Year], w)
	}

	return groups, nil
}

// GetWriteupsByConcept groups writeups under each concept they are tagged
// with. Writeups without concepts are left out.
func GetWriteupsByConcept(ctx context.Context, store Store, production bool) (map[string]Writeups, error) {
	ww, err := GetPublishedWriteups(ctx, store, production)
	if err != nil {
		return nil, err
	}

	groups := map[string]Writeups{}
	for _, w := range ww {
		for _, concept := range lo.Uniq(w.Concepts) {
			groups[concept] = append(groups[concept], w)
		}
	}

	return groups, nil
}
