package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/clubboard/backend/dto"
	"github.com/clubboard/backend/utils"
	"github.com/gin-gonic/gin"
)

// POST /api/send-email
func SendEmail(mailer *utils.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SendEmailDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		to := strings.TrimSpace(body.To)
		if to == "" || strings.TrimSpace(body.Subject) == "" || strings.TrimSpace(body.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required (to, subject, content)"})
			return
		}
		if !utils.IsValidEmail(to) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipient address"})
			return
		}

		if mailer == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "email is not configured"})
			return
		}

		if err := mailer.Send(to, body.Subject, body.Content); err != nil {
			log.Println("Error sending email:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "email sent successfully"})
	}
}
