package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/moltimon/cardsmith/internal/config"
	"github.com/moltimon/cardsmith/internal/library"
	"github.com/moltimon/cardsmith/internal/render"
	"github.com/moltimon/cardsmith/internal/style"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage card libraries in your library root",
	Long:  `Commands for managing card libraries in your library root.`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available libraries in your library root",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		root := config.GetLibraryRoot()

		if _, err := os.Stat(root); os.IsNotExist(err) {
			fmt.Fprintf(out, "Library root at %s does not exist.\n", root)
			fmt.Fprintln(out, "Run 'cardsmith library init' to create it.")
			return nil
		}

		rootPath, err := filepath.EvalSymlinks(root)
		if err != nil {
			return fmt.Errorf("error resolving symbolic link: %w", err)
		}

		defaultLibrary, err := config.GetDefaultLibrary()
		if err != nil {
			return fmt.Errorf("error getting default library: %w", err)
		}

		entries, err := os.ReadDir(rootPath)
		if err != nil {
			return fmt.Errorf("error reading library root: %w", err)
		}

		found := 0
		for _, entry := range entries {
			entryPath := filepath.Join(rootPath, entry.Name())
			fileInfo, err := os.Stat(entryPath)
			if err != nil {
				logger.Warn("Error resolving entry", zap.String("entry", entry.Name()), zap.Error(err))
				continue
			}
			if !fileInfo.IsDir() {
				continue
			}

			lib, err := library.Load(entryPath, logger)
			if err != nil {
				// Not a library, skip
				logger.Debug("Skipping directory", zap.String("path", entryPath), zap.Error(err))
				continue
			}
			found++

			marker, suffix := " ", ""
			if entry.Name() == defaultLibrary {
				marker, suffix = "*", " [DEFAULT]"
			}
			fmt.Fprintf(out, "%s %s (%s, %d cards)%s\n", marker, entry.Name(), lib.Name, lib.Len(), suffix)
		}

		if found == 0 {
			fmt.Fprintln(out, "No libraries found in your library root.")
			fmt.Fprintln(out, "You can add libraries by copying them to:", rootPath)
		}
		return nil
	},
}

// librarySetDefaultCmd represents the library set-default command
var librarySetDefaultCmd = &cobra.Command{
	Use:   "set-default [library_name]",
	Short: "Set the default library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		libraryPath, err := config.GetLibraryPath(name)
		if err != nil {
			return err
		}

		// Make sure it loads before pointing the config at it
		if _, err := library.Load(libraryPath, logger); err != nil {
			return fmt.Errorf("not a valid library: %w", err)
		}

		if err := config.SetDefaultLibrary(name); err != nil {
			return fmt.Errorf("error setting default library: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default library set to: %s\n", name)
		return nil
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init [library_name]",
	Short: "Initialize the library root, and optionally a new empty library",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		root := config.GetLibraryRoot()

		if err := os.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("error creating library root: %w", err)
		}
		fmt.Fprintln(out, "Library root initialized at:", root)

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

		if len(args) == 0 {
			fmt.Fprintln(out, "You can now add libraries by copying them to this directory.")
			return nil
		}

		name := args[0]
		path := filepath.Join(root, name)
		title, _ := cmd.Flags().GetString("name")
		if title == "" {
			title = name
		}
		if err := library.Create(path, name, title); err != nil {
			return err
		}
		fmt.Fprintln(out, "Library created at:", path)
		return nil
	},
}

// libraryCardsCmd lists the cards of a library
var libraryCardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards in a library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryFlag, _ := cmd.Flags().GetString("library")
		lib, err := openLibrary(libraryFlag)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cards := lib.Cards()
		fmt.Fprintf(out, "%s (%s)\n\n", lib.Name, lib.Path)
		for _, c := range cards {
			line := render.Compact(c)
			if shouldTint(cmd, out) {
				line = style.Color(c.Rarity).Sprint(line)
			}
			fmt.Fprintf(out, "  %-20s %s\n", c.ID, line)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, render.Summary(cards))
		return nil
	},
}

// libraryExportCmd renders every card of a library to files
var libraryExportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Render every card in a library into a directory",
	Long: `Export renders every card of a library to <dir>/<id>.ansi, several cards at a
time. With --plain the escape sequences are stripped and files end in .txt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryFlag, _ := cmd.Flags().GetString("library")
		lib, err := openLibrary(libraryFlag)
		if err != nil {
			return err
		}

		dir := args[0]
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating export directory: %w", err)
		}
		plain, _ := cmd.Flags().GetBool("plain")
		jobs, _ := cmd.Flags().GetInt("jobs")

		n, err := exportLibrary(cmd.Context(), lib, dir, plain, jobs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cards to %s\n", n, dir)
		return nil
	},
}

// exportLibrary renders the cards of lib concurrently, at most jobs at a time
func exportLibrary(ctx context.Context, lib *library.Library, dir string, plain bool, jobs int) (int, error) {
	ext := ".ansi"
	if plain {
		ext = ".txt"
	}
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	cards := lib.Cards()
	for _, c := range cards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rawArt, err := lib.ArtFor(c.ID)
			if err != nil {
				return fmt.Errorf("%s: error loading art: %w", c.ID, err)
			}
			block, err := render.Render(c, rawArt)
			if err != nil {
				return fmt.Errorf("%s: %w", c.ID, err)
			}
			if plain {
				block = ansi.Strip(block)
			}
			path := filepath.Join(dir, c.ID+ext)
			if err := os.WriteFile(path, []byte(block+"\n"), 0644); err != nil {
				return fmt.Errorf("%s: %w", c.ID, err)
			}
			logger.Debug("Card exported", zap.String("card", c.ID), zap.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(cards), nil
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySetDefaultCmd)
	libraryCmd.AddCommand(libraryInitCmd)
	libraryCmd.AddCommand(libraryCardsCmd)
	libraryCmd.AddCommand(libraryExportCmd)

	libraryInitCmd.Flags().String("name", "", "Display name of the new library")
	for _, c := range []*cobra.Command{libraryCardsCmd, libraryExportCmd} {
		c.Flags().StringP("library", "l", "", "Specify a library from your library root or a path to a library")
	}
	libraryCardsCmd.Flags().Bool("tint", false, "Colour the listing by rarity (default from config)")
	libraryExportCmd.Flags().Bool("plain", false, "Strip every escape sequence from the exported cards")
	libraryExportCmd.Flags().IntP("jobs", "j", 0, "Cards rendered at once (default: number of CPUs)")
}
