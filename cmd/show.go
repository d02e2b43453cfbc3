package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/moltimon/cardsmith/internal/art"
	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/config"
	"github.com/moltimon/cardsmith/internal/library"
	"github.com/moltimon/cardsmith/internal/render"
	"github.com/moltimon/cardsmith/internal/style"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Render a card from a library",
	Long: `Show renders a card from a card library as an 80x60 block of terminal text.

The card's art is taken from art/<id>.ansi, or converted from images/<id>.png
(jpg, gif), or drawn with the default art. --art and --image override the
library art.

You can specify a library using the --library flag, which will look for the
library in XDG_DATA_HOME/cardsmith/libraries or as a relative path. If no
library is specified, the default library from your config will be used.

Examples:
  cardsmith show ember-knight
  cardsmith show --library heroes ember-knight
  cardsmith show --library ./my-cards --image portrait.png ember-knight`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		libraryFlag, _ := cmd.Flags().GetString("library")
		lib, err := openLibrary(libraryFlag)
		if err != nil {
			return err
		}

		c, err := lib.Card(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		rawArt, overridden, err := artOverride(cmd)
		if err != nil {
			return err
		}
		if !overridden {
			rawArt, err = lib.ArtFor(c.ID)
			if err != nil {
				return fmt.Errorf("error loading art: %w", err)
			}
		}

		block, err := render.Render(c, rawArt)
		if err != nil {
			return err
		}
		return writeCard(cmd, block, c.Rarity)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("library", "l", "", "Specify a library from your library root or a path to a library")
	addArtFlags(showCmd)
	addOutputFlags(showCmd)
}

// addArtFlags registers the flags that replace a card's art
func addArtFlags(cmd *cobra.Command) {
	cmd.Flags().String("art", "", "Use this ANSI art file instead of the card's art")
	cmd.Flags().String("image", "", "Convert this image to art instead of using the card's art")
	cmd.MarkFlagsMutuallyExclusive("art", "image")
}

// addOutputFlags registers the flags that control how a card is printed
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("plain", false, "Strip every escape sequence from the output")
	cmd.Flags().Bool("tint", false, "Colour the card by rarity (default from config)")
}

// artOverride loads the art named by --art or --image. The second result
// is false when neither flag is set.
func artOverride(cmd *cobra.Command) (string, bool, error) {
	if path, _ := cmd.Flags().GetString("art"); path != "" {
		raw, err := art.Load(path)
		if err != nil {
			return "", false, fmt.Errorf("error loading ANSI art: %w", err)
		}
		return raw, true, nil
	}
	if path, _ := cmd.Flags().GetString("image"); path != "" {
		img, err := art.LoadImage(path)
		if err != nil {
			return "", false, err
		}
		logger.Debug("Converting image", zap.String("path", path))
		return art.FromImage(img, render.ArtWidth, render.ArtHeight, art.TrueColor), true, nil
	}
	return "", false, nil
}

// writeCard prints a rendered card, honouring --plain and --tint
func writeCard(cmd *cobra.Command, block string, r card.Rarity) error {
	out := cmd.OutOrStdout()
	plain, _ := cmd.Flags().GetBool("plain")

	if plain {
		block = ansi.Strip(block)
	} else if shouldTint(cmd, out) {
		block = style.Tint(block, r)
	}

	if width, ok := terminalWidth(out); ok && width < render.CardWidth {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: terminal is %d columns wide, cards need %d\n", width, render.CardWidth)
	}

	_, err := fmt.Fprintln(out, block)
	return err
}

// shouldTint resolves --tint: an explicit flag wins, otherwise the config
// decides, and only terminals are tinted by default.
func shouldTint(cmd *cobra.Command, out io.Writer) bool {
	if cmd.Flags().Changed("tint") {
		tint, _ := cmd.Flags().GetBool("tint")
		return tint
	}
	if _, ok := terminalWidth(out); !ok {
		return false
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Debug("Could not read config", zap.Error(err))
		return false
	}
	return cfg.Tint
}

func terminalWidth(out io.Writer) (int, bool) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, false
	}
	return width, true
}

// openLibrary loads the named library, or the default one when name is empty
func openLibrary(name string) (*library.Library, error) {
	libraryPath, err := resolveLibrary(name)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("library directory not found: %s", libraryPath)
	}

	lib, err := library.Load(libraryPath, logger)
	if err != nil {
		return nil, fmt.Errorf("error loading library: %w", err)
	}
	lib.CacheDir = config.GetCacheDir()
	return lib, nil
}

func resolveLibrary(name string) (string, error) {
	if name != "" {
		return config.GetLibraryPath(name)
	}

	defaultLibrary, err := config.GetDefaultLibrary()
	if err != nil {
		return "", fmt.Errorf("error getting default library: %w", err)
	}
	libraryPath, err := config.GetLibraryPath(defaultLibrary)
	if err != nil {
		return "", fmt.Errorf("error loading default library: %w", err)
	}
	return libraryPath, nil
}
