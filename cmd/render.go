package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/render"
	"github.com/moltimon/cardsmith/internal/termtext"
)

var renderCmd = &cobra.Command{
	Use:   "render [card_file]",
	Short: "Render a standalone card file",
	Long: `Render draws a single card file (.toml, .yaml, .yml or .json) that does not
belong to a library. Without --art or --image the default art is used.

Examples:
  cardsmith render ember.toml
  cardsmith render ember.yaml --art ember.ansi --out ember.card
  cardsmith render ember.json --inspect`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.DecodeFile(args[0])
		if err != nil {
			return err
		}

		rawArt, _, err := artOverride(cmd)
		if err != nil {
			return err
		}

		block, err := render.Render(c, rawArt)
		if err != nil {
			return err
		}
		logger.Debug("Card rendered", zap.String("card", c.ID))

		if inspect, _ := cmd.Flags().GetBool("inspect"); inspect {
			return inspectCard(cmd.OutOrStdout(), c, block)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(block+"\n"), 0644); err != nil {
				return fmt.Errorf("error writing card: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Card written to %s\n", out)
			return nil
		}
		return writeCard(cmd, block, c.Rarity)
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "", "Write the card to a file instead of stdout")
	renderCmd.Flags().Bool("inspect", false, "Print section sizes and line widths instead of the card")
	addArtFlags(renderCmd)
	addOutputFlags(renderCmd)
}

// inspectCard reports the shape of every section and of the composed card
func inspectCard(w io.Writer, c *card.Card, block string) error {
	sections := []struct {
		name  string
		lines []string
		want  int
	}{
		{"header", render.Header(c), render.HeaderHeight},
		{"footer", render.Footer(c), render.FooterHeight},
	}
	for _, s := range sections {
		fmt.Fprintf(w, "%-8s %2d lines (want %d)  widths %s\n", s.name, len(s.lines), s.want, widthSummary(s.lines))
	}

	lines := strings.Split(block, "\n")
	fmt.Fprintf(w, "%-8s %2d lines (want %d)  widths %s\n", "card", len(lines), render.CardHeight, widthSummary(lines))
	if err := render.ValidateFrame(block); err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return err
	}
	fmt.Fprintf(w, "✅ %dx%d\n", render.CardWidth, render.CardHeight)
	return nil
}

// widthSummary prints how many lines have each display width
func widthSummary(lines []string) string {
	counts := make(map[int]int)
	var widths []int
	for _, l := range lines {
		w := termtext.Width(l)
		if counts[w] == 0 {
			widths = append(widths, w)
		}
		counts[w]++
	}

	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = fmt.Sprintf("%d×%d", counts[w], w)
	}
	return strings.Join(parts, " ")
}
