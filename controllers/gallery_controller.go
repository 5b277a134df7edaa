package controllers

import (
	"net/http"

	"github.com/Rachana0206/dream-frame-studio/applications/gallery"

	"github.com/labstack/echo/v4"
)

// GalleryController serves the portfolio image descriptors.
type GalleryController struct {
	source *gallery.Source
}

func NewGalleryController(source *gallery.Source) *GalleryController {
	return &GalleryController{source: source}
}

// Instagram handles GET /api/instagram. An empty list is a valid response;
// the frontend substitutes placeholders.
func (gc *GalleryController) Instagram(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"images":  gc.source.Images(),
	})
}
