package core

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Development builds show drafts. Everything else is a production build.
	Development     bool
	SourceDirectory string
	Port            int
	BaseURL         string
	Site            SiteConfig
}

type SiteConfig struct {
	Title       string
	Description string
}

// ParseConfig parses the configuration from file or, if empty, from a config
// file in the working directory. A missing config file is not an error. Every
// key can be overridden by an ADVENT_ prefixed environment variable.
func ParseConfig(file string) (*Config, error) {
	v := viper.New()
	v.SetDefault("development", false)
	v.SetDefault("sourceDirectory", ".")
	v.SetDefault("port", 8080)
	v.SetDefault("baseURL", "https://advent-of-code.xavd.id")
	v.SetDefault("site.title", "@xavdid does Advent of Code")
	v.SetDefault("site.description", "Step-by-step puzzle explanations, written in Python, for Advent of Code puzzles.")

	v.SetEnvPrefix("advent")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	conf := &Config{}
	err = v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

// Production reports whether this is a production build.
func (c *Config) Production() bool {
	return !c.Development
}

func (c *Config) validate() error {
	var err error

	c.SourceDirectory, err = filepath.Abs(c.SourceDirectory)
	if err != nil {
		return err
	}

	if c.Port < 0 {
		return fmt.Errorf("config: Port should be positive number or 0")
	}

	baseUrl, err := url.Parse(c.BaseURL)
	if err != nil {
		return err
	}
	baseUrl.Path = ""

	if baseUrl.String() != c.BaseURL {
		return fmt.Errorf("config: BaseURL should be %s", baseUrl.String())
	}

	if c.Site.Title == "" {
		return errors.New("config: Site.Title is empty")
	}

	return nil
}

// AbsoluteURL resolves refStr against [Config.BaseURL].
func (c *Config) AbsoluteURL(refStr string) string {
	ref, err := url.Parse(refStr)
	if err != nil {
		return ""
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}

	return base.ResolveReference(ref).String()
}
