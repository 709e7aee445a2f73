package core

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"
)

var (
	errNoFrontMatter = errors.New("could not parse file: missing front matter")
	errMissingTitle  = errors.New("published writeup must have a title")
)

// Parser turns raw markdown files into writeups. In production mode, writeups
// that will be exposed must carry a title.
type Parser struct {
	production bool
	validate   *validator.Validate
}

func NewParser(production bool) *Parser {
	return &Parser{
		production: production,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (p *Parser) Parse(id, raw string) (*Writeup, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(raw, "---\n") {
		return nil, errNoFrontMatter
	}

	splits := strings.SplitN("\n"+raw[4:], "\n---", 2)
	if len(splits) != 2 {
		return nil, errors.New("could not parse file: splits !== 2")
	}

	fr := &FrontMatter{}
	err := yaml.Unmarshal([]byte(splits[0]), fr)
	if err != nil {
		return nil, err
	}

	err = p.Validate(fr)
	if err != nil {
		return nil, err
	}

	id = cleanID(id)
	slug := fr.Slug
	if slug == "" {
		slug = id
	}

	return &Writeup{
		FrontMatter: *fr,
		ID:          id,
		Slug:        strings.Trim(slug, "/"),
		Content:     strings.TrimSpace(splits[1]),
	}, nil
}

// Validate checks the front matter against the writeup schema.
func (p *Parser) Validate(fr *FrontMatter) error {
	err := p.validate.Struct(fr)
	if err != nil {
		return fmt.Errorf("invalid front matter: %w", err)
	}

	if p.production && fr.PubDate != "" && strings.TrimSpace(fr.Title) == "" {
		return errMissingTitle
	}

	return nil
}

// cleanID maps a content path such as "2022/5/README.md" to "2022/5".
func cleanID(id string) string {
	id = path.Clean("/" + id)
	id = strings.TrimSuffix(id, ".md")
	for _, index := range []string{"/index", "/README", "/readme", "/_index"} {
		id = strings.TrimSuffix(id, index)
	}
	return strings.Trim(id, "/")
}
