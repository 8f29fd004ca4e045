package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clubboard/backend/controllers"
	"github.com/clubboard/backend/database"
	"github.com/clubboard/backend/middleware"
	"github.com/clubboard/backend/models"
	"github.com/clubboard/backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	ctx := context.Background()
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatal("creating indexes: ", err)
	}
	if err := utils.SeedAdminUser(ctx, database.OpenCollection("admins")); err != nil {
		log.Fatal(err)
	}

	mailer, err := utils.NewMailerFromEnv()
	if err != nil {
		log.Println("Email disabled:", err)
	}
	v := utils.NewImageValidator()

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.RegisterStudent())
		auth.POST("/login", controllers.LoginStudent())
		auth.POST("/reset-password", controllers.ResetStudentPassword())
		auth.POST("/logout", middleware.RequireAuth(models.RoleStudent), controllers.LogoutStudent())
		auth.GET("/members", middleware.RequireAuth(models.RoleStudent), controllers.StudentProfile())
	}

	adm := r.Group("/adm")
	{
		adm.POST("/signup", controllers.RegisterAdmin())
		adm.POST("/signin", controllers.LoginAdmin())
		adm.POST("/reset-password", controllers.ResetAdminPassword())

		gallery := adm.Group("/gallery", middleware.RequireAuth(models.RoleAdmin))
		gallery.POST("", controllers.AddGalleryImage(v))
		gallery.DELETE("/:id", controllers.DeleteGalleryImage())
	}

	r.GET("/api/notices", controllers.GetNotices())
	r.GET("/api/gallery", controllers.GetGalleryImages())

	adminAPI := r.Group("/api", middleware.RequireAuth(models.RoleAdmin))
	{
		adminAPI.POST("/notices", controllers.AddNotice())
		adminAPI.DELETE("/notices/:id", controllers.DeleteNotice())
		adminAPI.GET("/students", controllers.GetStudents())
		adminAPI.DELETE("/students/:id", controllers.DeleteStudent())
		adminAPI.POST("/send-email", controllers.SendEmail(mailer))
	}

	// Listens on PORT if set, 8080 otherwise
	r.Run()
}
