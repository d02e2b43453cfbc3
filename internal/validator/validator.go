package validator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/art"
	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/library"
	"github.com/moltimon/cardsmith/internal/render"
	"github.com/moltimon/cardsmith/internal/style"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether validation found no errors
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	LibraryPath string
	// StrictArt reports off-size art as an error instead of a warning.
	StrictArt bool
	Results   ValidationResults

	cardIDs map[string]string
	logger  *zap.Logger
}

func NewValidator(libraryPath string, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		LibraryPath: libraryPath,
		Results:     ValidationResults{},
		cardIDs:     make(map[string]string),
		logger:      logger,
	}
}

// Validate checks the library. The error is only set when the library
// cannot be read at all; everything else lands in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateManifest(); err != nil {
		return v.Results, err
	}

	v.validateDirectoryStructure()
	v.validateCards()
	v.validateArt()
	v.validateOrphans()

	v.logger.Debug("Validation finished",
		zap.String("path", v.LibraryPath),
		zap.Int("errors", len(v.Results.Errors)),
		zap.Int("warnings", len(v.Results.Warnings)))
	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateManifest() error {
	m, err := library.LoadManifest(v.LibraryPath)
	if err != nil {
		return err
	}

	if m.Library.ID == "" {
		v.errorf("library.id is required in %s", library.ManifestFile)
	}
	if m.Library.Name == "" {
		v.errorf("library.name is required in %s", library.ManifestFile)
	}
	if m.Library.Version == "" {
		v.errorf("library.version is required in %s", library.ManifestFile)
	}
	if m.Library.SchemaVersion == "" {
		v.errorf("library.schema_version is required in %s", library.ManifestFile)
	} else if m.Library.SchemaVersion != library.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", m.Library.SchemaVersion, library.SchemaVersion)
	}
	return nil
}

// validateDirectoryStructure checks if the library has the expected directories
func (v *Validator) validateDirectoryStructure() {
	if _, err := os.Stat(filepath.Join(v.LibraryPath, library.CardsDir)); os.IsNotExist(err) {
		v.errorf("%s directory not found", library.CardsDir)
	}
	artDir := filepath.Join(v.LibraryPath, library.ArtDir)
	imageDir := filepath.Join(v.LibraryPath, library.ImagesDir)
	if !exists(artDir) && !exists(imageDir) {
		v.warnf("no %s/ or %s/ directory found, every card will use the default art", library.ArtDir, library.ImagesDir)
	}
}

func (v *Validator) validateCards() {
	paths, err := library.CardFiles(v.LibraryPath)
	if err != nil {
		v.errorf("error reading %s directory: %v", library.CardsDir, err)
		return
	}
	if len(paths) == 0 {
		v.warnf("no card files found in %s/", library.CardsDir)
		return
	}

	for _, path := range paths {
		name := filepath.Base(path)
		c, err := card.DecodeFile(path)
		if err != nil {
			v.errorf("%v", err)
			continue
		}
		if prev, ok := v.cardIDs[c.ID]; ok {
			v.errorf("duplicate card id %q in %s (first defined in %s)", c.ID, name, prev)
			continue
		}
		v.cardIDs[c.ID] = name
		v.validateCard(name, c)
	}
}

func (v *Validator) validateCard(name string, c *card.Card) {
	if !c.Rarity.Known() {
		v.warnf("%s: unknown rarity %q, rendered as %s", name, c.Rarity, card.Common)
	}
	if c.Element != "" && !style.KnownElement(c.Element) {
		v.warnf("%s: unknown element %q, rendered with %s", name, c.Element, style.DefaultElementGlyph)
	}
	if c.AgentName == "" {
		v.warnf("%s: agent_name is empty", name)
	}

	stats := []struct {
		name       string
		value, max int
	}{
		{"str", c.Stats.STR, card.MaxStandardStat},
		{"int", c.Stats.INT, card.MaxStandardStat},
		{"cha", c.Stats.CHA, card.MaxStandardStat},
		{"wis", c.Stats.WIS, card.MaxStandardStat},
		{"dex", c.Stats.DEX, card.MaxStandardStat},
		{"kar", c.Stats.KAR, card.MaxKarma},
	}
	for _, s := range stats {
		if s.value < 0 || s.value > s.max {
			v.warnf("%s: stats.%s = %d is outside 0..%d, the bar will be clamped", name, s.name, s.value, s.max)
		}
	}

	var fe *render.FieldTooLongError
	if err := render.CheckFieldLimits(c); errors.As(err, &fe) {
		for _, violation := range fe.Violations {
			v.errorf("%s: %s", name, violation)
		}
	}
}

// validateArt checks hand-made art against the art grid. Off-size art
// still renders after normalization, so it is only an error in strict mode.
func (v *Validator) validateArt() {
	dir := filepath.Join(v.LibraryPath, library.ArtDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != library.ArtExtension {
			continue
		}
		raw, err := art.Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			v.errorf("error reading %s: %v", entry.Name(), err)
			continue
		}
		if err := render.ValidateArt(strings.TrimSuffix(raw, "\n")); err != nil {
			if v.StrictArt {
				v.errorf("%s: %v", entry.Name(), err)
			} else {
				v.warnf("%s: %v (it will be normalized)", entry.Name(), err)
			}
		}
	}
}

func (v *Validator) validateOrphans() {
	for _, dir := range []string{library.ArtDir, library.ImagesDir} {
		entries, err := os.ReadDir(filepath.Join(v.LibraryPath, dir))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			if _, ok := v.cardIDs[id]; !ok {
				v.warnf("%s/%s does not belong to any card", dir, entry.Name())
			}
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
