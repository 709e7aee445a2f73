package core

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the typed front matter of a writeup.
type FrontMatter struct {
	Title    string   `yaml:"title,omitempty" json:"title"`
	Day      int      `yaml:"day" json:"day" validate:"gte=1,lte=25"`
	Year     int      `yaml:"year" json:"year" validate:"gte=2015"`
	Slug     string   `yaml:"slug,omitempty" json:"-"`
	PubDate  string   `yaml:"pub_date,omitempty" json:"pub_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Concepts []string `yaml:"concepts,omitempty" json:"concepts,omitempty" validate:"dive,required"`
}

// Writeup is a published or draft explanation of a single puzzle solution.
type Writeup struct {
	FrontMatter
	ID      string `json:"-"`
	Slug    string `json:"slug"`
	Content string `json:"-"`
}

// Published reports whether the writeup has a publish date. Writeups without
// one are drafts.
func (w *Writeup) Published() bool {
	return w.PubDate != ""
}

// Link is the site-relative URL of the writeup.
func (w *Writeup) Link() string {
	return "/writeups/" + w.Slug
}

func (w *Writeup) String() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	err := enc.Encode(&w.FrontMatter)
	if err != nil {
		return "", err
	}

	text := fmt.Sprintf("---\n%s---\n\n%s\n", buf.String(), strings.TrimSpace(w.Content))
	return strings.TrimSpace(text) + "\n", nil
}

type Writeups []*Writeup
