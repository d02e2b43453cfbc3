package art

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Mode selects how FromImage encodes pixels.
type Mode int

const (
	// TrueColor emits 24-bit foreground/background pairs on upper half blocks.
	TrueColor Mode = iota
	// Shade emits uncoloured shading glyphs picked by lightness.
	Shade
)

var shadeRamp = []rune{' ', '░', '▒', '▓', '█'}

// LoadImage decodes a png, jpeg or gif file
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// FromImage converts img to art of exactly width columns by height lines.
// Every cell covers a 2x2 block of the resized image: the top pair sets the
// foreground of an upper half block and the bottom pair its background.
func FromImage(img image.Image, width, height int, mode Mode) string {
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		if y > 0 {
			buffer.WriteString("\n")
		}
		for x := 0; x < width*2; x += 2 {
			upper := averageColor(colorAt(resized, x, y), colorAt(resized, x+1, y))
			lower := averageColor(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))

			if mode == Shade {
				buffer.WriteRune(shadeFor(averageColor(upper, lower)))
				continue
			}
			buffer.WriteString(cellString('▀', upper, lower))
		}
	}
	return buffer.String()
}

// colorAt returns the colour at a coordinate, black when out of bounds
func colorAt(img image.Image, x, y int) colorful.Color {
	bounds := img.Bounds()
	var c color.Color = color.RGBA{0, 0, 0, 255}
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		c = img.At(x, y)
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent pixel
		return colorful.Color{}
	}
	return cf
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func shadeFor(c colorful.Color) rune {
	l, _, _ := c.Lab()
	i := int(l * float64(len(shadeRamp)))
	if i >= len(shadeRamp) {
		i = len(shadeRamp) - 1
	}
	if i < 0 {
		i = 0
	}
	return shadeRamp[i]
}

// cellString formats one character with truecolor foreground and background
func cellString(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// Load reads an ANSI art file
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
