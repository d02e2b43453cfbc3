package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moltimon/cardsmith/internal/art"
	"github.com/moltimon/cardsmith/internal/card"
)

// Compose renders c with rawArt into a block of exactly CardHeight lines of
// CardWidth columns. rawArt may have any shape; it is normalized first.
//
// Errors: *FieldTooLongError when a text field would not fit, and
// *ConsistencyError when the layout constants no longer add up.
func Compose(c *card.Card, rawArt string) (string, error) {
	if c == nil {
		return "", errors.New("no card to render")
	}

	normalized := art.Normalize(rawArt, ArtWidth, ArtHeight)
	if err := art.ValidateDimensions(normalized, ArtWidth, ArtHeight); err != nil {
		return "", &ConsistencyError{Detail: fmt.Sprintf("normalized art: %v", err)}
	}
	if err := CheckFieldLimits(c); err != nil {
		return "", err
	}

	lines := make([]string, 0, CardHeight)
	lines = append(lines, Header(c)...)
	lines = append(lines, EmbedArt(normalized, c.Rarity)...)
	lines = append(lines, Footer(c)...)

	if len(lines) != CardHeight {
		return "", &ConsistencyError{Detail: fmt.Sprintf("expected %d lines, got %d", CardHeight, len(lines))}
	}
	block := strings.Join(lines, "\n")
	if err := art.ValidateDimensions(block, CardWidth, CardHeight); err != nil {
		return "", &ConsistencyError{Detail: err.Error()}
	}
	return block, nil
}

// ComposeDefault renders c with the built-in banded art.
func ComposeDefault(c *card.Card) (string, error) {
	return Compose(c, DefaultArt())
}

// Render composes c with rawArt, or with the default art when rawArt is
// empty.
func Render(c *card.Card, rawArt string) (string, error) {
	if rawArt == "" {
		return ComposeDefault(c)
	}
	return Compose(c, rawArt)
}

// MustCompose is like Compose but panics on a *ConsistencyError. Other
// errors are returned.
func MustCompose(c *card.Card, rawArt string) (string, error) {
	block, err := Compose(c, rawArt)
	if errors.Is(err, ErrInternalConsistency) {
		panic(err)
	}
	return block, err
}

// DefaultArt returns the art used when a card has none of its own.
func DefaultArt() string {
	return art.Banding(ArtWidth, ArtHeight)
}

// ValidateArt checks that a block is usable as card art without
// normalization. It is meant for ingestion pipelines that want to reject
// off-size art before storing it.
func ValidateArt(block string) error {
	return art.ValidateDimensions(block, ArtWidth, ArtHeight)
}

// ValidateFrame checks that a block has the dimensions of a whole card.
func ValidateFrame(block string) error {
	return art.ValidateDimensions(block, CardWidth, CardHeight)
}
