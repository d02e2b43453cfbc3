package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/config"
	"github.com/moltimon/cardsmith/internal/library"
	"github.com/moltimon/cardsmith/internal/render"
	"github.com/moltimon/cardsmith/internal/termtext"
)

const emberCard = `
template_id = 3
rarity = "epic"
mint_number = 12
agent_name = "Ember Knight"
class = "Warrior"
element = "fire"
special_ability = "Blazing Oath"
ability_description = "Sets every enemy ablaze"

[stats]
str = 80
int = 40
cha = 55
wis = 35
dex = 60
kar = 4200
`

// execute runs the root command with args and returns what it printed.
// Flags are reset first since the command tree is package state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(RootCmd)
	logger = zap.NewNop()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// cardLines returns the printed card lines, dropping the final newline.
func cardLines(t *testing.T, out string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, render.CardHeight)
	for i, l := range lines {
		require.Equal(t, render.CardWidth, termtext.Width(l), "line %d", i)
	}
	return lines
}

func TestRenderPlain(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "ember.toml"), emberCard)

	out, err := execute(t, "render", path, "--plain")
	require.NoError(t, err)
	lines := cardLines(t, out)
	assert.NotContains(t, out, "\x1b")
	assert.Contains(t, lines[1], "Ember Knight")
}

func TestRenderWithArt(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "ember.toml"), emberCard)
	artPath := writeFile(t, filepath.Join(dir, "ember.ansi"), "\x1b[31mFLAMES\x1b[0m\n")

	out, err := execute(t, "render", path, "--art", artPath)
	require.NoError(t, err)
	lines := cardLines(t, out)
	assert.Contains(t, lines[render.HeaderHeight+1], "FLAMES")
}

func TestRenderInspect(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "ember.toml"), emberCard)

	out, err := execute(t, "render", path, "--inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "header    5 lines (want 5)  widths 5×80")
	assert.Contains(t, out, "footer   27 lines (want 27)  widths 27×80")
	assert.Contains(t, out, "✅ 80x60")
}

func TestRenderOut(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "ember.toml"), emberCard)
	target := filepath.Join(dir, "ember.card")

	out, err := execute(t, "render", path, "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Card written to")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.NoError(t, render.ValidateFrame(strings.TrimSuffix(string(data), "\n")))
}

func TestRenderFieldTooLong(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, filepath.Join(dir, "long.yaml"), "agent_name: "+strings.Repeat("x", 31)+"\n")

	_, err := execute(t, "render", path)
	assert.ErrorIs(t, err, render.ErrFieldTooLong)
}

func TestPreview(t *testing.T) {
	isolate(t)
	out, err := execute(t, "preview", "--plain")
	require.NoError(t, err)
	for _, r := range []string{"COMMON", "UNCOMMON", "RARE", "EPIC", "LEGENDARY", "MYTHIC"} {
		assert.Contains(t, out, "Rarity: "+r+"\n")
	}
	assert.Contains(t, out, "DragonKnight")
}

func TestArtCommands(t *testing.T) {
	dir := isolate(t)
	good := writeFile(t, filepath.Join(dir, "good.ansi"), render.DefaultArt()+"\n")
	small := writeFile(t, filepath.Join(dir, "small.ansi"), "tiny\nart\n")

	out, err := execute(t, "art", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "26 lines, widths 26×70")

	out, err = execute(t, "art", "check", small)
	assert.Error(t, err)
	assert.Contains(t, out, "inconsistent line widths")

	fixed := filepath.Join(dir, "fixed.ansi")
	_, err = execute(t, "art", "normalize", small, "-o", fixed)
	require.NoError(t, err)
	_, err = execute(t, "art", "check", fixed)
	assert.NoError(t, err)
}

func TestArtCommandsRejectBadSize(t *testing.T) {
	dir := isolate(t)
	small := writeFile(t, filepath.Join(dir, "small.ansi"), "tiny\nart\n")

	for _, args := range [][]string{
		{"art", "normalize", small, "--height=-1"},
		{"art", "check", small, "--width=0"},
		{"art", "convert", filepath.Join(dir, "missing.png"), "--width=-5"},
	} {
		assert.NotPanics(t, func() {
			_, err := execute(t, args...)
			assert.ErrorContains(t, err, "width and height must be at least 1", "%v", args)
		})
	}
}

func newLibrary(t *testing.T) string {
	t.Helper()
	_, err := execute(t, "library", "init", "heroes", "--name", "Heroes")
	require.NoError(t, err)

	path := filepath.Join(config.GetLibraryRoot(), "heroes")
	writeFile(t, filepath.Join(path, library.CardsDir, "ember.toml"), emberCard)
	writeFile(t, filepath.Join(path, library.CardsDir, "tide.yaml"), "rarity: rare\nagent_name: Tide\nelement: water\n")
	writeFile(t, filepath.Join(path, library.ArtDir, "tide.ansi"), "~~~ waves ~~~\n")
	return path
}

func TestLibraryWorkflow(t *testing.T) {
	dir := isolate(t)
	path := newLibrary(t)

	out, err := execute(t, "library", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "heroes (Heroes, 2 cards)")

	_, err = execute(t, "library", "set-default", "heroes")
	require.NoError(t, err)
	out, err = execute(t, "library", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "* heroes (Heroes, 2 cards) [DEFAULT]")

	out, err = execute(t, "library", "cards")
	require.NoError(t, err)
	assert.Contains(t, out, "[EPIC     ] 🔥 Ember Knight (Warrior) #12")
	assert.Contains(t, out, "2 cards")

	out, err = execute(t, "show", "tide", "--plain")
	require.NoError(t, err)
	lines := cardLines(t, out)
	assert.Contains(t, lines[render.HeaderHeight+1], "~~~ waves ~~~")

	exportDir := filepath.Join(dir, "export")
	out, err = execute(t, "library", "export", exportDir, "--plain", "-j", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 cards")
	for _, id := range []string{"ember", "tide"} {
		data, err := os.ReadFile(filepath.Join(exportDir, id+".txt"))
		require.NoError(t, err)
		assert.NoError(t, render.ValidateFrame(strings.TrimSuffix(string(data), "\n")))
	}

	out, err = execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "tide.ansi")
}

func TestShowMissingCard(t *testing.T) {
	isolate(t)
	newLibrary(t)

	_, err := execute(t, "show", "nobody", "--library", "heroes")
	assert.ErrorContains(t, err, "card not found: nobody")
}

func TestValidateStrict(t *testing.T) {
	isolate(t)
	path := newLibrary(t)

	out, err := execute(t, "validate", path, "--strict")
	assert.EqualError(t, err, "validation failed")
	assert.Contains(t, out, "tide.ansi")
}
