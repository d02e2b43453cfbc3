package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/card"
)

const (
	// ManifestFile names the file that marks a directory as a library.
	ManifestFile = "library.toml"
	// SchemaVersion is the only manifest schema this tool reads.
	SchemaVersion = "1.0"

	CardsDir  = "cards"
	ArtDir    = "art"
	ImagesDir = "images"
)

// Library is a directory of card files with optional art and images
type Library struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string

	// CacheDir holds art converted from images. Conversions are not cached
	// when it is empty.
	CacheDir string

	cards  map[string]*card.Card
	files  map[string]string
	logger *zap.Logger
}

// Manifest is the decoded library.toml
type Manifest struct {
	Library LibrarySection `toml:"library"`
}

type LibrarySection struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	Description   string   `toml:"description"`
	Tags          []string `toml:"tags,omitempty"`
}

// LoadManifest decodes the manifest of the library at path
func LoadManifest(path string) (*Manifest, error) {
	manifestPath := filepath.Join(path, ManifestFile)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s", ManifestFile, path)
	}

	var m Manifest
	if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", ManifestFile, err)
	}
	return &m, nil
}

// Load reads a library from a directory. Card files that fail to decode are
// skipped and logged; the validator reports them in detail.
func Load(path string, logger *zap.Logger) (*Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	m, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		ID:          m.Library.ID,
		Name:        m.Library.Name,
		Version:     m.Library.Version,
		Author:      m.Library.Author,
		Description: m.Library.Description,
		Path:        path,
		cards:       make(map[string]*card.Card),
		files:       make(map[string]string),
		logger:      logger,
	}

	if err := lib.loadCards(); err != nil {
		return nil, fmt.Errorf("error loading cards: %w", err)
	}
	logger.Debug("Library loaded",
		zap.String("path", path),
		zap.String("id", lib.ID),
		zap.Int("cards", len(lib.cards)))
	return lib, nil
}

func (l *Library) loadCards() error {
	paths, err := CardFiles(l.Path)
	if err != nil {
		return err
	}

	for _, p := range paths {
		c, err := card.DecodeFile(p)
		if err != nil {
			l.logger.Warn("Skipping card file", zap.String("file", p), zap.Error(err))
			continue
		}
		if prev, ok := l.files[c.ID]; ok {
			l.logger.Warn("Duplicate card id",
				zap.String("id", c.ID),
				zap.String("kept", prev),
				zap.String("skipped", p))
			continue
		}
		l.cards[c.ID] = c
		l.files[c.ID] = p
	}
	return nil
}

// CardFiles lists the card files of the library at path in name order. A
// library without a cards directory has no cards.
func CardFiles(path string) ([]string, error) {
	dir := filepath.Join(path, CardsDir)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && card.IsCardFile(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// Card gets a card by its id
func (l *Library) Card(id string) (*card.Card, error) {
	c, ok := l.cards[id]
	if !ok {
		return nil, fmt.Errorf("card not found: %s", id)
	}
	return c, nil
}

// Cards returns every card, highest rarity first and then by id
func (l *Library) Cards() []*card.Card {
	cards := make([]*card.Card, 0, len(l.cards))
	for _, c := range l.cards {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool {
		ri, rj := cards[i].Rarity.Rank(), cards[j].Rarity.Rank()
		if ri != rj {
			return ri > rj
		}
		return cards[i].ID < cards[j].ID
	})
	return cards
}

// Len returns the number of cards loaded
func (l *Library) Len() int {
	return len(l.cards)
}

// Create scaffolds an empty library at path
func Create(path, id, name string) error {
	if _, err := os.Stat(filepath.Join(path, ManifestFile)); err == nil {
		return fmt.Errorf("library already exists at %s", path)
	}
	for _, dir := range []string{CardsDir, ArtDir, ImagesDir} {
		if err := os.MkdirAll(filepath.Join(path, dir), 0755); err != nil {
			return fmt.Errorf("error creating library directory: %w", err)
		}
	}

	file, err := os.Create(filepath.Join(path, ManifestFile))
	if err != nil {
		return fmt.Errorf("error creating %s: %w", ManifestFile, err)
	}
	defer file.Close()

	m := Manifest{Library: LibrarySection{
		ID:            id,
		Name:          name,
		Version:       "0.1.0",
		SchemaVersion: SchemaVersion,
	}}
	if err := toml.NewEncoder(file).Encode(m); err != nil {
		return fmt.Errorf("error encoding %s: %w", ManifestFile, err)
	}
	return nil
}
