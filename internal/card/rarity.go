package card

import "strings"

// Rarity is one of a closed set of tags. Values outside the set are legal
// on a Card and render with the common style.
type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
	Mythic    Rarity = "mythic"
)

// Rarities lists every rarity from lowest to highest.
var Rarities = []Rarity{Common, Uncommon, Rare, Epic, Legendary, Mythic}

// ParseRarity maps a tag to its Rarity, ignoring case and surrounding space.
// Unknown tags return Common and false.
func ParseRarity(s string) (Rarity, bool) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	if r.Known() {
		return r, true
	}
	return Common, false
}

// Known reports whether r is exactly one of the defined rarities.
func (r Rarity) Known() bool {
	switch r {
	case Common, Uncommon, Rare, Epic, Legendary, Mythic:
		return true
	default:
		return false
	}
}

// Normalize returns the defined rarity r refers to, or Common.
func (r Rarity) Normalize() Rarity {
	n, _ := ParseRarity(string(r))
	return n
}

// Rank orders rarities low to high; unknown tags rank with Common.
func (r Rarity) Rank() int {
	n := r.Normalize()
	for i, v := range Rarities {
		if v == n {
			return i
		}
	}
	return 0
}

func (r Rarity) String() string {
	return string(r)
}
