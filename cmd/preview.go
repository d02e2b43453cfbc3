package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moltimon/cardsmith/internal/card"
	"github.com/moltimon/cardsmith/internal/render"
)

// sampleCard is drawn by preview when no card file is given
var sampleCard = card.Card{
	ID:                 "sample",
	TemplateID:         1,
	MintNumber:         42,
	AgentName:          "DragonKnight",
	Class:              "Warrior",
	Element:            "fire",
	Stats:              card.Stats{STR: 75, INT: 60, CHA: 85, WIS: 70, DEX: 90, KAR: 55},
	SpecialAbility:     "Flame Breath",
	AbilityDescription: "Deals fire damage to all enemies",
	Notes:              "Loves battling in volcanic regions",
}

var previewCmd = &cobra.Command{
	Use:   "preview [card_file]",
	Short: "Render one card in every rarity",
	Long: `Preview draws the same card once per rarity so the frames can be compared.
Without a card file a built-in sample card is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := sampleCard
		if len(args) == 1 {
			c, err := card.DecodeFile(args[0])
			if err != nil {
				return err
			}
			base = *c
		}

		rawArt, _, err := artOverride(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		rule := strings.Repeat("=", render.CardWidth)
		for _, r := range card.Rarities {
			c := base
			c.Rarity = r

			block, err := render.Render(&c, rawArt)
			if err != nil {
				return fmt.Errorf("%s: %w", r, err)
			}
			fmt.Fprintf(out, "%s\nRarity: %s\n%s\n", rule, strings.ToUpper(string(r)), rule)
			if err := writeCard(cmd, block, r); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(previewCmd)

	addArtFlags(previewCmd)
	addOutputFlags(previewCmd)
}
