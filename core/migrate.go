package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const firstPartHeading = "## Part 1"

var (
	titleRegexp = regexp.MustCompile("`(.*)`")

	errMalformedReadme = errors.New("malformed README")
)

// AddFrontMatter prepends front matter to a writeup README that does not have
// it yet. The title is the first backticked text before the "## Part 1"
// heading, which replaces everything before it. The boolean reports whether
// raw was changed.
func AddFrontMatter(year, day int, raw string) (string, bool, error) {
	if strings.HasPrefix(raw, "---") {
		return raw, false, nil
	}

	intro, rest, found := strings.Cut(raw, firstPartHeading)
	if !found {
		return "", false, fmt.Errorf("%w: no %q heading", errMalformedReadme, firstPartHeading)
	}

	matches := titleRegexp.FindStringSubmatch(intro)
	if matches == nil {
		return "", false, fmt.Errorf("%w: no title", errMalformedReadme)
	}

	w := &Writeup{
		FrontMatter: FrontMatter{
			Title: matches[1],
			Day:   day,
			Year:  year,
			Slug:  fmt.Sprintf("%d/day/%d", year, day),
		},
		Content: firstPartHeading + rest,
	}

	str, err := w.String()
	if err != nil {
		return "", false, err
	}

	return str, true, nil
}

// MigrateFrontMatter adds front matter to every README found at
// content/writeups/<year>/<day>/README.md. It returns the updated files and
// the malformed ones it left untouched.
func (f *FS) MigrateFrontMatter() (updated, skipped []string, err error) {
	updated = []string{}
	skipped = []string{}

	years, err := f.afero.ReadDir(WriteupsDirectory)
	if err != nil {
		return nil, nil, err
	}

	for _, yearDir := range years {
		year, err := strconv.Atoi(yearDir.Name())
		if !yearDir.IsDir() || err != nil {
			continue
		}

		days, err := f.afero.ReadDir(filepath.Join(WriteupsDirectory, yearDir.Name()))
		if err != nil {
			return nil, nil, err
		}

		for _, dayDir := range days {
			day, err := strconv.Atoi(dayDir.Name())
			if !dayDir.IsDir() || err != nil {
				continue
			}

			filename := filepath.Join(WriteupsDirectory, yearDir.Name(), dayDir.Name(), "README.md")
			raw, err := f.afero.ReadFile(filename)
			if os.IsNotExist(err) {
				continue
			} else if err != nil {
				return nil, nil, err
			}

			str, changed, err := AddFrontMatter(year, day, string(raw))
			if errors.Is(err, errMalformedReadme) {
				skipped = append(skipped, filename)
				continue
			} else if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", filename, err)
			}

			if !changed {
				continue
			}

			err = f.WriteFile(filename, []byte(str))
			if err != nil {
				return nil, nil, fmt.Errorf("could not save %s: %w", filename, err)
			}

			updated = append(updated, filename)
		}
	}

	return updated, skipped, nil
}
