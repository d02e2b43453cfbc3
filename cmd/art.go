package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/art"
	"github.com/moltimon/cardsmith/internal/render"
)

// artCmd represents the art command group
var artCmd = &cobra.Command{
	Use:   "art",
	Short: "Check, normalize and convert card art",
	Long: `Commands for preparing ANSI art before it is added to a library.
Card art is exactly 70 columns by 26 lines.`,
}

var artCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check that an art file has the exact art dimensions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, height, err := artSize(cmd)
		if err != nil {
			return err
		}
		raw, err := art.Load(args[0])
		if err != nil {
			return fmt.Errorf("error loading ANSI art: %w", err)
		}

		out := cmd.OutOrStdout()
		block := strings.TrimSuffix(raw, "\n")
		lines := strings.Split(block, "\n")
		fmt.Fprintf(out, "%d lines, widths %s\n", len(lines), widthSummary(lines))

		if err := art.ValidateDimensions(block, width, height); err != nil {
			fmt.Fprintf(out, "❌ %s: %v\n", args[0], err)
			return fmt.Errorf("art check failed")
		}
		fmt.Fprintf(out, "✅ %s is %dx%d\n", args[0], width, height)
		return nil
	},
}

var artNormalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Pad or cut art to the exact art dimensions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, height, err := artSize(cmd)
		if err != nil {
			return err
		}
		raw, err := art.Load(args[0])
		if err != nil {
			return fmt.Errorf("error loading ANSI art: %w", err)
		}

		return writeArt(cmd, art.Normalize(raw, width, height))
	},
}

var artConvertCmd = &cobra.Command{
	Use:   "convert [image]",
	Short: "Convert a png, jpeg or gif image to card art",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, height, err := artSize(cmd)
		if err != nil {
			return err
		}
		img, err := art.LoadImage(args[0])
		if err != nil {
			return err
		}

		mode := art.TrueColor
		if shade, _ := cmd.Flags().GetBool("shade"); shade {
			mode = art.Shade
		}
		logger.Debug("Converting image",
			zap.String("path", args[0]),
			zap.Int("width", width),
			zap.Int("height", height))

		return writeArt(cmd, art.FromImage(img, width, height, mode))
	},
}

// artSize reads --width and --height, which must both be positive
func artSize(cmd *cobra.Command) (int, int, error) {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	if width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("invalid art size %dx%d: width and height must be at least 1", width, height)
	}
	return width, height, nil
}

// writeArt writes art to --out, or to stdout
func writeArt(cmd *cobra.Command, block string) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), block)
		return err
	}
	if err := os.WriteFile(out, []byte(block+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write ANSI art to file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Art written to %s\n", out)
	return nil
}

func init() {
	RootCmd.AddCommand(artCmd)
	artCmd.AddCommand(artCheckCmd)
	artCmd.AddCommand(artNormalizeCmd)
	artCmd.AddCommand(artConvertCmd)

	for _, c := range []*cobra.Command{artCheckCmd, artNormalizeCmd, artConvertCmd} {
		c.Flags().Int("width", render.ArtWidth, "Art width in columns")
		c.Flags().Int("height", render.ArtHeight, "Art height in lines")
	}
	for _, c := range []*cobra.Command{artNormalizeCmd, artConvertCmd} {
		c.Flags().StringP("out", "o", "", "Write the art to a file instead of stdout")
	}
	artConvertCmd.Flags().Bool("shade", false, "Use uncoloured shading glyphs instead of truecolor half blocks")
}
