package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Rachana0206/dream-frame-studio/applications/contact"
	"github.com/Rachana0206/dream-frame-studio/logger"

	"github.com/labstack/echo/v4"
)

// ContactController adapts HTTP requests to the contact service.
type ContactController struct {
	service *contact.Service
}

func NewContactController(service *contact.Service) *ContactController {
	return &ContactController{service: service}
}

// Submit handles POST /api/contact. Only a validation failure can reach the
// caller as an error; anything that goes wrong past validation is logged and
// the submitter still sees success, so a broken email setup never confuses a
// legitimate sender.
func (cc *ContactController) Submit(c echo.Context) error {
	var p contact.Params
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload."})
	}

	if err := cc.service.SubmitContact(p); err != nil {
		if errors.Is(err, contact.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		}
		logger.Log.Error(fmt.Sprintf("[controllers] Contact submission error (reported as success): %v", err))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully! We will get back to you soon.",
	})
}
