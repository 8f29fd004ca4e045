package controllers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/clubboard/backend/database"
	"github.com/clubboard/backend/models"
	"github.com/clubboard/backend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /api/students
func GetStudents() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		maxLimit, defaultLimit := utils.GetDefaultQueryLimits()
		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), defaultLimit)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = defaultLimit
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		skip := int64((page - 1) * limit)

		filter := bson.M{}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			pattern := regexp.QuoteMeta(search)
			fields := []string{"firstName", "lastName", "email", "rollNumber"}
			or := make(bson.A, 0, len(fields))
			for _, f := range fields {
				or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
			}
			filter["$or"] = or
		}

		findOpts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		studentsCol := database.OpenCollection("students")
		cursor, err := studentsCol.Find(ctx, filter, findOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		students := make([]models.Student, 0)
		for cursor.Next(ctx) {
			var s models.Student
			if err := cursor.Decode(&s); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			students = append(students, s)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := studentsCol.CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": students,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

// DELETE /api/students/:id
func DeleteStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
			return
		}

		studentsCol := database.OpenCollection("students")
		if _, err := studentsCol.DeleteOne(c.Request.Context(), bson.M{"_id": id}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting student"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
