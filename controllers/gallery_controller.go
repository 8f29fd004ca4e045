package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/clubboard/backend/database"
	"github.com/clubboard/backend/models"
	"github.com/clubboard/backend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GET /api/gallery
func GetGalleryImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		galleryCol := database.OpenCollection("gallery")

		findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := galleryCol.Find(ctx, bson.M{}, findOpts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		defer cursor.Close(ctx)

		images := make([]models.GalleryImage, 0)
		for cursor.Next(ctx) {
			var img models.GalleryImage
			if err := cursor.Decode(&img); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			images = append(images, img)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusOK, images)
	}
}

// POST /adm/gallery
func AddGalleryImage(v *utils.FileValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		caption := strings.TrimSpace(c.PostForm("caption"))
		if caption == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "caption is required"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
			return
		}
		mimeType, err := v.ValidateFile(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		gcs, bucket, err := utils.NewGCSClient(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create storage client"})
			return
		}
		defer gcs.Close()

		slug := utils.GenerateSlug(caption)
		publicURL, objectName, err := utils.UploadGalleryImage(ctx, gcs, bucket, slug, mimeType, fileHeader)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}

		image := models.GalleryImage{
			ID:         bson.NewObjectID(),
			Caption:    caption,
			Slug:       slug,
			ImageURL:   publicURL,
			ObjectName: objectName,
			MimeType:   mimeType,
			SizeBytes:  fileHeader.Size,
			CreatedAt:  time.Now().UTC(),
		}

		galleryCol := database.OpenCollection("gallery")
		if _, err := galleryCol.InsertOne(ctx, image); err != nil {
			// Don't leave an orphaned blob behind.
			if delErr := utils.DeleteGCSObject(ctx, gcs, bucket, objectName); delErr != nil {
				log.Println("gallery cleanup failed:", delErr)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.JSON(http.StatusCreated, image)
	}
}

// DELETE /adm/gallery/:id
func DeleteGalleryImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gallery image id"})
			return
		}

		ctx := c.Request.Context()
		galleryCol := database.OpenCollection("gallery")

		var image models.GalleryImage
		if err := galleryCol.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&image); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "gallery image not found"})
			return
		}

		// Best-effort blob removal; the document is already gone.
		if gcs, bucket, err := utils.NewGCSClient(ctx); err == nil {
			defer gcs.Close()
			if err := utils.DeleteGCSObject(ctx, gcs, bucket, image.ObjectName); err != nil {
				log.Println("gallery blob delete failed:", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "gallery image deleted"})
	}
}
