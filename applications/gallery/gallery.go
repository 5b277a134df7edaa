package gallery

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Rachana0206/dream-frame-studio/logger"
)

// Image is one portfolio descriptor served to the frontend filter.
type Image struct {
	URL         string `json:"url"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Source serves the configured descriptor list. An unset or unreadable file
// is not an error: the frontend falls back to placeholder images on an empty
// list.
type Source struct {
	images []Image
}

func NewSource(path string) *Source {
	s := &Source{}

	if path == "" {
		logger.Log.Info("[gallery] No gallery file configured; serving an empty image list.")
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[gallery] Could not read gallery file %s: %v", path, err))
		return s
	}
	if err := json.Unmarshal(data, &s.images); err != nil {
		logger.Log.Warn(fmt.Sprintf("[gallery] Could not parse gallery file %s: %v", path, err))
		s.images = nil
		return s
	}

	logger.Log.Info(fmt.Sprintf("[gallery] Loaded %d gallery images from %s.", len(s.images), path))
	return s
}

// Images never returns nil so the JSON response is always an array.
func (s *Source) Images() []Image {
	if s.images == nil {
		return []Image{}
	}
	return s.images
}
