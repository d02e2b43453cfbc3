package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/library"
	"github.com/moltimon/cardsmith/internal/render"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func validLibrary(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "heroes")
	require.NoError(t, library.Create(dir, "heroes", "Heroes"))
	writeFile(t, filepath.Join(dir, library.CardsDir, "ember.toml"), `
rarity = "legendary"
agent_name = "Ember"
element = "fire"

[stats]
str = 80
kar = 9000
`)
	writeFile(t, filepath.Join(dir, library.ArtDir, "ember.ansi"), render.DefaultArt()+"\n")
	return dir
}

func run(t *testing.T, dir string, strict bool) ValidationResults {
	t.Helper()
	v := NewValidator(dir, zap.NewNop())
	v.StrictArt = strict
	results, err := v.Validate()
	require.NoError(t, err)
	return results
}

func contains(list []string, part string) bool {
	for _, s := range list {
		if strings.Contains(s, part) {
			return true
		}
	}
	return false
}

func TestValidLibrary(t *testing.T) {
	results := run(t, validLibrary(t), true)
	assert.True(t, results.Valid(), results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestMissingManifest(t *testing.T) {
	_, err := NewValidator(t.TempDir(), nil).Validate()
	assert.ErrorContains(t, err, "library.toml not found")
}

func TestManifestFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, library.ManifestFile), "[library]\nschema_version = \"2.0\"\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, library.CardsDir), 0755))

	results := run(t, dir, false)
	assert.True(t, contains(results.Errors, "library.id is required"))
	assert.True(t, contains(results.Errors, "library.name is required"))
	assert.True(t, contains(results.Errors, "library.version is required"))
	assert.True(t, contains(results.Errors, "unsupported schema_version: 2.0"))
	assert.True(t, contains(results.Warnings, "no card files found"))
}

func TestCardChecks(t *testing.T) {
	dir := validLibrary(t)
	cards := filepath.Join(dir, library.CardsDir)
	writeFile(t, filepath.Join(cards, "odd.yaml"), `
rarity: shiny
agent_name: Odd
element: plasma
stats:
  dex: 140
  kar: -1
`)
	writeFile(t, filepath.Join(cards, "long.toml"), `agent_name = "`+strings.Repeat("a", 31)+`"`)
	writeFile(t, filepath.Join(cards, "dup.json"), `{"id": "ember", "agent_name": "Copy"}`)
	writeFile(t, filepath.Join(cards, "bad.toml"), `agent_name = `)

	results := run(t, dir, false)
	assert.False(t, results.Valid())
	assert.True(t, contains(results.Errors, `long.toml: agent_name exceeds 30 characters (has 31)`), results.Errors)
	assert.True(t, contains(results.Errors, `duplicate card id "ember"`), results.Errors)
	assert.True(t, contains(results.Errors, "bad.toml"), results.Errors)

	assert.True(t, contains(results.Warnings, `odd.yaml: unknown rarity "shiny"`), results.Warnings)
	assert.True(t, contains(results.Warnings, `odd.yaml: unknown element "plasma"`), results.Warnings)
	assert.True(t, contains(results.Warnings, "stats.dex = 140 is outside 0..100"), results.Warnings)
	assert.True(t, contains(results.Warnings, "stats.kar = -1 is outside 0..10000"), results.Warnings)
}

func TestOffSizeArt(t *testing.T) {
	dir := validLibrary(t)
	writeFile(t, filepath.Join(dir, library.ArtDir, "ember.ansi"), "tiny")

	results := run(t, dir, false)
	assert.True(t, results.Valid())
	assert.True(t, contains(results.Warnings, "ember.ansi"), results.Warnings)

	results = run(t, dir, true)
	assert.False(t, results.Valid())
	assert.True(t, contains(results.Errors, "ember.ansi: width must be exactly 70 columns"), results.Errors)
}

func TestOrphans(t *testing.T) {
	dir := validLibrary(t)
	writeFile(t, filepath.Join(dir, library.ImagesDir, "ghost.png"), "not really a png")

	results := run(t, dir, false)
	assert.True(t, results.Valid())
	assert.True(t, contains(results.Warnings, "images/ghost.png does not belong to any card"), results.Warnings)
}
