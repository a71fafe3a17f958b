package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"fleetforge-server/models"
	"fleetforge-server/services"

	"github.com/gin-gonic/gin"
)

// SubmitContactForm validates and relays the contact form.
func SubmitContactForm(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	relayForm(c, models.FormNameContact, form.Fields(), nil)
}

// SubmitServiceRequestForm validates and relays the mobile service
// request form.
func SubmitServiceRequestForm(c *gin.Context) {
	var form models.ServiceRequestForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	relayForm(c, models.FormNameServiceRequest, form.Fields(), nil)
}

// SubmitPartsRequestForm validates and relays the custom part request.
// The photo attachment is optional; when present the relay switches to a
// multipart POST carrying the binary.
func SubmitPartsRequestForm(c *gin.Context) {
	var form models.PartsRequestForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil
	}

	relayForm(c, models.FormNamePartsRequest, form.Fields(), photo)
}

// relayForm hands a validated form to the relay and translates the
// outcome. Failures carry the call/text fallback so the user always has
// a second channel; the client keeps its field values for a retry.
func relayForm(c *gin.Context, formName string, fields map[string]string, photo *multipart.FileHeader) {
	sid := sessionID(c)

	var err error
	if photo != nil {
		err = Relay.SubmitWithPhoto(c.Request.Context(), formName, sid, fields, photo)
	} else {
		err = Relay.Submit(c.Request.Context(), formName, sid, fields)
	}

	if errors.Is(err, services.ErrSubmissionInFlight) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "A submission is already in progress"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    "Submission failed",
			"fallback": "Please try again or call/text us at " + models.Business.Phone + ".",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": successMessage(formName)})
}

// successMessage mirrors the confirmation copy shown per form.
func successMessage(formName string) string {
	switch formName {
	case models.FormNameContact:
		return "Message sent. We'll get back to you as soon as possible."
	case models.FormNameServiceRequest:
		return "Service request submitted. We'll get back to you within 30 minutes during business hours."
	case models.FormNamePartsRequest:
		return "Part request submitted. We got it — we'll contact you with availability and pricing soon."
	}
	return "Submitted."
}
