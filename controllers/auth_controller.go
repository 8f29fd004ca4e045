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

// POST /api/auth/register
func RegisterStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RegisterStudentDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))
		if !utils.IsValidEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return
		}
		if !utils.IsValidRollNumber(body.RollNumber) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roll number must be 13 digits"})
			return
		}
		if body.Course == "B.Tech" && strings.TrimSpace(body.SubField) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "branch is required for B.Tech"})
			return
		}
		if err := utils.ValidateSignupPassword(body.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		studentsCol := database.OpenCollection("students")

		// Friendly pre-check; the unique indexes are the real guarantee.
		count, err := studentsCol.CountDocuments(ctx, bson.M{
			"$or": bson.A{bson.M{"email": email}, bson.M{"rollNumber": body.RollNumber}},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "student already registered with this email or roll number"})
			return
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		student := models.Student{
			ID:           bson.NewObjectID(),
			FirstName:    body.FirstName,
			LastName:     body.LastName,
			Email:        email,
			Course:       body.Course,
			SubField:     body.SubField,
			Year:         body.Year,
			RollNumber:   body.RollNumber,
			Gender:       body.Gender,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}

		if _, err := studentsCol.InsertOne(ctx, student); err != nil {
			if utils.IsDuplicateKey(err) {
				// Lost the race against a concurrent registration.
				c.JSON(http.StatusBadRequest, gin.H{"error": "student already registered with this email or roll number"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "registered successfully"})
	}
}

// POST /api/auth/login
func LoginStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))
		studentsCol := database.OpenCollection("students")

		var student models.Student
		if err := studentsCol.FindOne(c.Request.Context(), bson.M{"email": email}).Decode(&student); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		if err := utils.CheckPassword(student.PasswordHash, body.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		token, err := utils.GenerateToken(student.ID.Hex(), "", string(models.RoleStudent), utils.TokenTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "login successful", "token": token})
	}
}

// POST /api/auth/logout
//
// Tokens are self-contained, so there is nothing to revoke server-side; the
// client discards its copy.
func LogoutStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "logout successful"})
	}
}

// GET /api/auth/members
func StudentProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr, ok := c.Get("userID")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			return
		}
		id, err := bson.ObjectIDFromHex(idStr.(string))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth context"})
			return
		}

		studentsCol := database.OpenCollection("students")
		var student models.Student
		if err := studentsCol.FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&student); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}

		c.JSON(http.StatusOK, student)
	}
}

// POST /api/auth/reset-password
func ResetStudentPassword() gin.HandlerFunc {
	return resetPassword("students", "email not found")
}

// resetPassword is the shared reset flow for both principal kinds. It is
// deliberately unauthenticated (the caller may have lost access); knowledge
// of the registered email is the only guard.
func resetPassword(collection string, notFoundMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ResetPasswordDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))
		if email == "" || body.NewPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and new password are required"})
			return
		}
		if err := utils.ValidateResetPassword(body.NewPassword); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection(collection)

		count, err := col.CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
			return
		}

		hash, err := utils.HashPassword(strings.TrimSpace(body.NewPassword))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return
		}

		if _, err := col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"passwordHash": hash}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "password reset successfully"})
	}
}
