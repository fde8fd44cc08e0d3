package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"candidateportal/internal/database"
	"candidateportal/internal/domain"
	"candidateportal/internal/filestore"
	"candidateportal/internal/middleware"
	"candidateportal/internal/modules/candidate"
	"candidateportal/internal/modules/media"
	"candidateportal/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "candidate_portal.db"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.Candidate{},
		&domain.FileDescriptor{},
		&domain.FileChunk{},
	); err != nil {
		log.Fatal(err)
	}

	store := filestore.NewStore(db, 0)
	candidateRepo := repository.NewCandidateRepository(db)

	candidateService := candidate.NewService(candidateRepo, store)
	candidateHandler := candidate.NewHandler(candidateService)
	mediaHandler := media.NewHandler(store)

	r := gin.New()
	r.Use(middleware.CORS(), middleware.ErrorLogger(), gin.Logger())
	// videos may run to 200 MB; let multipart parsing spill to disk early
	r.MaxMultipartMemory = 32 << 20

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		candidateHandler.RegisterRoutes(api)
		mediaHandler.RegisterRoutes(api)
	}

	log.Printf("Server running on http://127.0.0.1:%s", port)
	if err := r.Run("127.0.0.1:" + port); err != nil {
		log.Fatal(err)
	}
}
