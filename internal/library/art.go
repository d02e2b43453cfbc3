package library

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/art"
	"github.com/moltimon/cardsmith/internal/render"
)

// ArtExtension is the extension of hand-made art files.
const ArtExtension = ".ansi"

// ImageExtensions lists the image formats that can be converted to art.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// ArtPath returns the art file for a card, or "" if there is none
func (l *Library) ArtPath(id string) string {
	path := filepath.Join(l.Path, ArtDir, id+ArtExtension)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// ImagePath returns the first image found for a card, or "" if there is none
func (l *Library) ImagePath(id string) string {
	for _, ext := range ImageExtensions {
		path := filepath.Join(l.Path, ImagesDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ArtFor returns the raw art for a card. Hand-made art wins over a
// converted image; a card with neither gets "" and is drawn with the
// default art.
func (l *Library) ArtFor(id string) (string, error) {
	if path := l.ArtPath(id); path != "" {
		l.logger.Debug("Using art file", zap.String("card", id), zap.String("path", path))
		return art.Load(path)
	}

	imagePath := l.ImagePath(id)
	if imagePath == "" {
		l.logger.Debug("No art for card, using default", zap.String("card", id))
		return "", nil
	}
	return l.convertImage(imagePath)
}

// convertImage renders an image to art, reusing a cached conversion that is
// newer than the image.
func (l *Library) convertImage(imagePath string) (string, error) {
	var cachePath string
	if l.CacheDir != "" {
		cachePath = filepath.Join(l.CacheDir, cacheKey(imagePath))
		if fresh(cachePath, imagePath) {
			l.logger.Debug("Using cached art", zap.String("image", imagePath), zap.String("cache", cachePath))
			return art.Load(cachePath)
		}
	}

	img, err := art.LoadImage(imagePath)
	if err != nil {
		return "", err
	}
	converted := art.FromImage(img, render.ArtWidth, render.ArtHeight, art.TrueColor)

	if cachePath != "" {
		if err := os.MkdirAll(l.CacheDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create art cache directory: %w", err)
		}
		if err := os.WriteFile(cachePath, []byte(converted), 0644); err != nil {
			// a read-only cache only costs a reconversion next time
			l.logger.Warn("Could not cache converted art", zap.String("path", cachePath), zap.Error(err))
		}
	}
	return converted, nil
}

func cacheKey(imagePath string) string {
	abs, err := filepath.Abs(imagePath)
	if err != nil {
		abs = imagePath
	}
	return fmt.Sprintf("%x%s", md5.Sum([]byte(abs)), ArtExtension)
}

func fresh(cachePath, sourcePath string) bool {
	cached, err := os.Stat(cachePath)
	if err != nil {
		return false
	}
	source, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}
	return !cached.ModTime().Before(source.ModTime())
}
