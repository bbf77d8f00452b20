package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
)

// RegisterRoutes attaches the post CRUD routes and health probes to the
// provided Fiber app. Handlers stay free of business logic; status mapping
// only.
func RegisterRoutes(app *fiber.App, db *sql.DB, postSvc service.PostService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/posts", ListPosts(postSvc))
	app.Post("/posts", CreatePost(postSvc))
	app.Get("/posts/:id", GetPost(postSvc))
	app.Put("/posts/:id", UpdatePost(postSvc))
	app.Delete("/posts/:id", DeletePost(postSvc))
}

// RegisterImageRoutes attaches the hosted-image routes. Called only when
// object storage is configured.
func RegisterImageRoutes(app *fiber.App, imgSvc service.ImageService) {
	app.Post("/images", UploadImage(imgSvc))
	app.Get("/images/:key", GetImage(imgSvc))
}
