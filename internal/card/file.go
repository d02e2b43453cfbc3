package card

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Extensions lists the card file formats DecodeFile understands.
var Extensions = []string{".toml", ".yaml", ".yml", ".json"}

// IsCardFile reports whether path has a card file extension
func IsCardFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DecodeFile reads a single card from a TOML, YAML or JSON file. A card
// without an id takes the file name (minus extension) as its id.
func DecodeFile(path string) (*Card, error) {
	var c Card

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &c); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
		}
	case ".yaml", ".yml", ".json":
		// JSON card files are valid YAML documents
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported card file: %s", filepath.Base(path))
	}

	if c.ID == "" {
		c.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &c, nil
}
