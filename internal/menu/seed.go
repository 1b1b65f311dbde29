package menu

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default_menu.yaml
var defaultMenuYAML []byte

type seedCategory struct {
	Category string   `yaml:"category"`
	Dishes   []string `yaml:"dishes"`
}

// ParseSeed decodes a menu document: a list of categories with their dishes.
func ParseSeed(doc []byte) ([]FlavorOption, error) {
	var categories []seedCategory
	if err := yaml.Unmarshal(doc, &categories); err != nil {
		return nil, fmt.Errorf("decode menu seed: %w", err)
	}

	var options []FlavorOption
	for _, c := range categories {
		for _, d := range c.Dishes {
			opt, err := normalize(d, c.Category)
			if err != nil {
				return nil, err
			}
			options = append(options, *opt)
		}
	}

	if len(options) == 0 {
		return nil, errors.New("menu seed is empty")
	}
	return options, nil
}

// DefaultMenu returns the embedded Gallopin menu.
func DefaultMenu() ([]FlavorOption, error) {
	return ParseSeed(defaultMenuYAML)
}

// Seed loads options into an empty menu. With force the current menu is
// replaced. Returns the number of dishes written.
func (s *Service) Seed(ctx context.Context, options []FlavorOption, force bool) (int, error) {
	if !force {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return 0, nil
		}
	}

	if err := s.repo.ReplaceAll(ctx, options); err != nil {
		return 0, err
	}
	return len(options), nil
}
