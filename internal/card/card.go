package card

// Card represents a collectible agent card as handed to the renderer
type Card struct {
	ID                 string `toml:"id" yaml:"id" json:"id"`
	TemplateID         int    `toml:"template_id" yaml:"template_id" json:"template_id"`
	Rarity             Rarity `toml:"rarity" yaml:"rarity" json:"rarity"`
	MintNumber         int    `toml:"mint_number" yaml:"mint_number" json:"mint_number"`
	AgentName          string `toml:"agent_name" yaml:"agent_name" json:"agent_name"`
	Class              string `toml:"class" yaml:"class" json:"class"`
	Element            string `toml:"element" yaml:"element" json:"element"`
	Stats              Stats  `toml:"stats" yaml:"stats" json:"stats"`
	SpecialAbility     string `toml:"special_ability" yaml:"special_ability" json:"special_ability"`         // Empty when the card has none
	AbilityDescription string `toml:"ability_description" yaml:"ability_description" json:"ability_description"` // Free text, capped by word count
	Notes              string `toml:"notes" yaml:"notes" json:"notes"`                                       // Free text, capped by word count
}

// Stats holds the six numeric attributes. KAR runs on a much larger scale
// than the other five.
type Stats struct {
	STR int `toml:"str" yaml:"str" json:"str"`
	INT int `toml:"int" yaml:"int" json:"int"`
	CHA int `toml:"cha" yaml:"cha" json:"cha"`
	WIS int `toml:"wis" yaml:"wis" json:"wis"`
	DEX int `toml:"dex" yaml:"dex" json:"dex"`
	KAR int `toml:"kar" yaml:"kar" json:"kar"`
}

const (
	MaxStandardStat = 100
	MaxKarma        = 10000
)
