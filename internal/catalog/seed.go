package catalog

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pvm-hub/internal/entities/gear"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

//go:embed seed/items.yaml
var seedYAML []byte

type seedFile struct {
	Items []gear.Item `yaml:"items"`
}

// LoadSeed returns the built-in catalog in catalog order
func LoadSeed() ([]gear.Item, error) {
	return ParseItems(seedYAML)
}

// ParseItems decodes a YAML item list and checks it with ValidateItems
func ParseItems(data []byte) ([]gear.Item, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog items")
	}
	if err := ValidateItems(f.Items); err != nil {
		return nil, err
	}
	return f.Items, nil
}

// ValidateItems checks that every item has an id, ids are unique and slots are known
func ValidateItems(items []gear.Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" {
			return errors.InvalidArgumentf("item %d has no id", i).WithMeta("index", i)
		}
		if _, dup := seen[item.ID]; dup {
			return errors.InvalidArgumentf("duplicate item id %q", item.ID).WithMeta("item_id", item.ID)
		}
		seen[item.ID] = struct{}{}
		if !item.Slot.Valid() {
			return errors.InvalidArgumentf("item %q has unknown slot %q", item.ID, item.Slot).
				WithMeta("item_id", item.ID)
		}
	}
	return nil
}
