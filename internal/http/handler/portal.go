package handler

import (
	"github.com/gofiber/fiber/v2"

	"insurance-portal-api/internal/model"
	"insurance-portal-api/internal/repository"
	"insurance-portal-api/internal/service"
	"insurance-portal-api/internal/store"
)

// Root is the index endpoint.
// @Summary Service banner
// @Success 200 {object} map[string]string
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Insurance Portal Backend Running"})
	}
}

// GetNotification returns the notification bar content. It is computed
// per request, never read from the store.
// @Summary Notification bar content
// @Success 200 {object} model.Notification
// @Router /api/notification [get]
func GetNotification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Notification{
			Title:   "Outstanding Invoices",
			Message: "Outstanding Invoices: $24,500 – Payment due Nov 15 & Nov 20",
			Level:   "warning",
		})
	}
}

// GetDashboard returns the aggregate dashboard counts.
// @Summary Dashboard summary counts
// @Success 200 {object} model.DashboardCounts
// @Router /api/dashboard [get]
func GetDashboard(dash service.Dashboard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := dash.Counts(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(counts)
	}
}

// ListPolicies returns all policies, or an empty list when the store has
// none to offer.
// @Summary List policies
// @Success 200 {array} model.Policy
// @Router /api/policies [get]
func ListPolicies(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		policies, err := repo.ListPolicies(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(policies)
	}
}

// UploadDocument accepts a multipart upload and stores its metadata only;
// the binary itself is acknowledged and discarded.
// @Summary Upload a document
// @Accept multipart/form-data
// @Param file formData file true "document file"
// @Param policy_number formData string false "related policy number"
// @Success 200 {object} map[string]string
// @Router /api/documents/upload [post]
func UploadDocument(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		size := fh.Size
		item := model.DocumentItem{
			Filename:     fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			SizeBytes:    &size,
			Category:     "Uploaded",
			PolicyNumber: c.FormValue("policy_number"),
		}

		if err := repo.CreateDocument(c.UserContext(), item); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"status": "ok", "filename": fh.Filename})
	}
}

// ListDocuments returns uploaded document metadata.
// @Summary List documents
// @Success 200 {array} model.DocumentItem
// @Router /api/documents [get]
func ListDocuments(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := repo.ListDocuments(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(docs)
	}
}

// ListInvoices returns all invoices.
// @Summary List invoices
// @Success 200 {array} model.Invoice
// @Router /api/invoices [get]
func ListInvoices(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		invoices, err := repo.ListInvoices(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(invoices)
	}
}

// ListRenewals returns all renewals.
// @Summary List renewals
// @Success 200 {array} model.Renewal
// @Router /api/renewals [get]
func ListRenewals(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		renewals, err := repo.ListRenewals(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(renewals)
	}
}

// ListUpdates returns risk updates; never empty, the literal fallback
// record stands in when the store has nothing.
// @Summary List risk updates
// @Success 200 {array} model.Update
// @Router /api/updates [get]
func ListUpdates(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		updates, err := repo.ListUpdatesOrDefault(c.UserContext(), repository.DefaultUpdates())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(updates)
	}
}

// ListTeam returns the broker team; never empty.
// @Summary List team members
// @Success 200 {array} model.TeamMember
// @Router /api/team [get]
func ListTeam(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		team, err := repo.ListTeamOrDefault(c.UserContext(), repository.DefaultTeam())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(team)
	}
}

// ListActivities returns the activity feed; never empty.
// @Summary List activity feed
// @Success 200 {array} model.Activity
// @Router /api/activities [get]
func ListActivities(repo *repository.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activities, err := repo.ListActivitiesOrDefault(c.UserContext(), repository.DefaultActivities())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(activities)
	}
}

// HealthCheck reports process health. A missing store is a supported
// degraded mode, not an outage, so the endpoint always answers 200 and
// carries the availability flag instead.
// @Summary Health check
// @Success 200 {object} map[string]any
// @Router /health [get]
func HealthCheck(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "healthy",
			"store_available": st.Available(),
		})
	}
}

// LivenessProbe is a bare liveness endpoint.
// @Summary Liveness probe
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
