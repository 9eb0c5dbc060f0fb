package handler

import (
	"github.com/gofiber/fiber/v2"

	"insurance-portal-api/internal/repository"
	"insurance-portal-api/internal/service"
	"insurance-portal-api/internal/store"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin; everything beyond request/response shaping lives in
// the access layer and services.
func RegisterRoutes(app *fiber.App, st store.Store, repo *repository.Records, dash service.Dashboard) {
	app.Get("/", Root())

	app.Get("/health", HealthCheck(st))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/notification", GetNotification())
	api.Get("/dashboard", GetDashboard(dash))
	api.Get("/policies", ListPolicies(repo))
	api.Post("/documents/upload", UploadDocument(repo))
	api.Get("/documents", ListDocuments(repo))
	api.Get("/invoices", ListInvoices(repo))
	api.Get("/renewals", ListRenewals(repo))
	api.Get("/updates", ListUpdates(repo))
	api.Get("/team", ListTeam(repo))
	api.Get("/activities", ListActivities(repo))
}
