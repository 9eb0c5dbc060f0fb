package repository

import (
	"time"

	"insurance-portal-api/internal/model"
)

// Fallback records for the endpoints that must never return an empty
// sequence. These mirror the portal's demo content and are returned
// whenever the store is unavailable or the collection is empty.

func DefaultUpdates() []model.Update {
	return []model.Update{
		{
			Title:       "New Cyber Insurance Requirements for 2025",
			Label:       "Latest Update",
			Description: "Multi-factor authentication and endpoint detection are now standard.",
			DateStr:     "Nov 10, 2024",
		},
	}
}

func DefaultTeam() []model.TeamMember {
	return []model.TeamMember{
		{
			Name:     "Monique Reibelt",
			Role:     "Senior Broker",
			Email:    "monique@example.com",
			Phone:    "+1 (555) 123-4567",
			Linkedin: "https://linkedin.com/in/moniquereibelt",
		},
		{
			Name:     "Stuart Madden",
			Role:     "Service Agent",
			Email:    "stuart@example.com",
			Phone:    "+1 (555) 987-6543",
			Linkedin: "https://linkedin.com/in/stuartmadden",
		},
	}
}

func DefaultActivities() []model.Activity {
	now := time.Now().UTC()
	return []model.Activity{
		{Type: "policy_renewal", Message: "Commercial Property Insurance renewed for another year", Actor: "system", OccurredAt: &now},
		{Type: "payment_made", Message: "Payment made", Actor: "John Smith", OccurredAt: &now},
		{Type: "document_uploaded", Message: "Document uploaded", Actor: "John Smith", OccurredAt: &now},
	}
}
