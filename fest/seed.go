package fest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// SeedItem is one entry of a seed file:
//
//	- index: 1
//	  name: Pale Ale
type SeedItem struct {
	Index int64  `yaml:"index" validate:"gte=0"`
	Name  string `yaml:"name" validate:"required,max=200"`
}

// Seed creates an item for each entry read from r and returns how many were created. Every
// entry is checked before anything is written.
func Seed(ctx context.Context, store *ItemStore, r io.Reader) (int, error) {
	var items []SeedItem
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("fest: read seed: %w", err)
	}

	v := getValidator()
	for i, item := range items {
		if err := v.Struct(item); err != nil {
			return 0, fmt.Errorf("fest: seed entry %d: %w", i+1, err)
		}
	}

	for i, item := range items {
		if _, err := store.Create(ctx, item.Index, item.Name); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
