package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/clubboard/backend/database"
	"github.com/clubboard/backend/dto"
	"github.com/clubboard/backend/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /api/notices
func GetNotices() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		noticesCol := database.OpenCollection("notices")

		findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := noticesCol.Find(ctx, bson.M{}, findOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		defer cursor.Close(ctx)

		notices := make([]models.Notice, 0)
		for cursor.Next(ctx) {
			var n models.Notice
			if err := cursor.Decode(&n); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			notices = append(notices, n)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusOK, notices)
	}
}

// POST /api/notices
func AddNotice() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.NoticeDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		message := strings.TrimSpace(body.Message)
		if message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		notice := models.Notice{
			ID:        bson.NewObjectID(),
			Message:   message,
			CreatedAt: time.Now().UTC(),
		}

		noticesCol := database.OpenCollection("notices")
		if _, err := noticesCol.InsertOne(c.Request.Context(), notice); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusCreated, notice)
	}
}

// DELETE /api/notices/:id
func DeleteNotice() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notice id"})
			return
		}

		noticesCol := database.OpenCollection("notices")
		res, err := noticesCol.DeleteOne(c.Request.Context(), bson.M{"_id": id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "notice deleted successfully"})
	}
}
