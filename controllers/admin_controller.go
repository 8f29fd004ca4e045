package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/clubboard/backend/database"
	"github.com/clubboard/backend/dto"
	"github.com/clubboard/backend/models"
	"github.com/clubboard/backend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// POST /adm/signup
func RegisterAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RegisterAdminDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))
		if !utils.IsValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		if !utils.IsValidAdminID(body.AdminID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "admin ID must start with ADB followed by 5 digits"})
			return
		}
		if err := utils.ValidateSignupPassword(body.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		adminsCol := database.OpenCollection("admins")

		// Name the conflicting field(s); neither is secret.
		emailTaken, err := adminsCol.CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		idTaken, err := adminsCol.CountDocuments(ctx, bson.M{"adminId": body.AdminID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		switch {
		case emailTaken > 0 && idTaken > 0:
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and admin ID are already registered"})
			return
		case emailTaken > 0:
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is already registered"})
			return
		case idTaken > 0:
			c.JSON(http.StatusBadRequest, gin.H{"error": "admin ID is already registered"})
			return
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		admin := models.Admin{
			ID:           bson.NewObjectID(),
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Email:        email,
			AdminID:      body.AdminID,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}

		if _, err := adminsCol.InsertOne(ctx, admin); err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "email or admin ID is already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "admin registered successfully"})
	}
}

// POST /adm/signin
func LoginAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))
		adminsCol := database.OpenCollection("admins")

		var admin models.Admin
		if err := adminsCol.FindOne(c.Request.Context(), bson.M{"email": email}).Decode(&admin); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		if err := utils.CheckPassword(admin.PasswordHash, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		token, err := utils.GenerateToken(admin.ID.Hex(), admin.Email, string(models.RoleAdmin), utils.TokenTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": token})
	}
}

// POST /adm/reset-password
func ResetAdminPassword() gin.HandlerFunc {
	return resetPassword("admins", "admin with this email does not exist")
}
