package seed

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"insurance-portal-api/internal/model"
	"insurance-portal-api/internal/store"
)

// Status of one collection's seed step.
type Status string

const (
	StatusSeeded  Status = "seeded"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// CollectionResult is the outcome of seeding a single collection.
type CollectionResult struct {
	Collection string
	Status     Status
	Inserted   int
	Reason     string
}

// Result is the explicit outcome of the whole seed step. Seeding is
// best-effort and never fatal to startup, but the outcome is reported
// rather than swallowed.
type Result struct {
	StoreUnavailable bool
	Collections      []CollectionResult
}

// Run populates each empty collection with the portal's demo records.
// Collections that already hold data are skipped, so restarts do not
// duplicate rows. A failure in one collection is recorded and the rest
// are still attempted.
func Run(ctx context.Context, st store.Store) Result {
	if !st.Available() {
		res := Result{StoreUnavailable: true}
		logResult(res)
		return res
	}

	var res Result
	res.Collections = append(res.Collections, seedCollection(ctx, st, model.CollectionPolicy, asAny(seedPolicies())))
	res.Collections = append(res.Collections, seedCollection(ctx, st, model.CollectionInvoice, asAny(seedInvoices())))
	res.Collections = append(res.Collections, seedCollection(ctx, st, model.CollectionRenewal, asAny(seedRenewals())))
	res.Collections = append(res.Collections, seedCollection(ctx, st, model.CollectionUpdate, asAny(seedUpdates())))
	res.Collections = append(res.Collections, seedCollection(ctx, st, model.CollectionTeamMember, asAny(seedTeam())))
	res.Collections = append(res.Collections, seedCollection(ctx, st, model.CollectionActivity, asAny(seedActivities())))
	logResult(res)
	return res
}

func seedCollection(ctx context.Context, st store.Store, collection string, records []any) CollectionResult {
	n, err := st.Count(ctx, collection, nil)
	if err != nil {
		return CollectionResult{Collection: collection, Status: StatusFailed, Reason: "count: " + err.Error()}
	}
	if n > 0 {
		return CollectionResult{Collection: collection, Status: StatusSkipped, Reason: "collection not empty"}
	}

	inserted := 0
	for _, rec := range records {
		if err := st.Insert(ctx, collection, rec); err != nil {
			return CollectionResult{Collection: collection, Status: StatusFailed, Inserted: inserted, Reason: "insert: " + err.Error()}
		}
		inserted++
	}
	return CollectionResult{Collection: collection, Status: StatusSeeded, Inserted: inserted}
}

func seedPolicies() []model.Policy {
	return []model.Policy{
		{PolicyNumber: "CP-12345", Product: "Commercial Property", Status: "active", StartDate: model.NewDate(2024, time.January, 1), EndDate: model.NewDate(2024, time.December, 31), Premium: 12000, InsuredEntity: "Acme Corp"},
		{PolicyNumber: "GL-67890", Product: "General Liability", Status: "active", StartDate: model.NewDate(2024, time.March, 1), EndDate: model.NewDate(2025, time.February, 28), Premium: 8500, InsuredEntity: "Acme Corp"},
		{PolicyNumber: "CY-22222", Product: "Cyber", Status: "active", StartDate: model.NewDate(2024, time.June, 1), EndDate: model.NewDate(2025, time.May, 31), Premium: 4000, InsuredEntity: "Acme Corp"},
	}
}

func seedInvoices() []model.Invoice {
	return []model.Invoice{
		{InvoiceNumber: "INV-001", Amount: 15000, DueDate: model.NewDate(2025, time.November, 15), Status: "outstanding"},
		{InvoiceNumber: "INV-002", Amount: 9500, DueDate: model.NewDate(2025, time.November, 20), Status: "outstanding"},
	}
}

func seedRenewals() []model.Renewal {
	return []model.Renewal{
		{PolicyNumber: "XX-0000", Product: "Directors & Officers", RenewalDate: model.NewDate(2026, time.February, 1), Status: "not_required"},
	}
}

func seedUpdates() []model.Update {
	return []model.Update{
		{Title: "New Cyber Insurance Requirements for 2025", Label: "Latest Update", Description: "Multi-factor authentication and endpoint detection are now standard.", DateStr: "Nov 10, 2024"},
	}
}

func seedTeam() []model.TeamMember {
	return []model.TeamMember{
		{Name: "Monique Reibelt", Role: "Senior Broker", Email: "monique@example.com", Phone: "+1 (555) 123-4567", Linkedin: "https://linkedin.com/in/moniquereibelt"},
		{Name: "Stuart Madden", Role: "Service Agent", Email: "stuart@example.com", Phone: "+1 (555) 987-6543", Linkedin: "https://linkedin.com/in/stuartmadden"},
	}
}

func seedActivities() []model.Activity {
	now := time.Now().UTC()
	sixHoursAgo := now.Add(-6 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	return []model.Activity{
		{Type: "policy_renewal", Message: "Commercial Property Insurance renewed for another year", Actor: "system", OccurredAt: &now},
		{Type: "payment_made", Message: "Payment of $10,000 recorded", Actor: "John Smith", OccurredAt: &sixHoursAgo},
		{Type: "document_uploaded", Message: "Evidence.pdf uploaded", Actor: "John Smith", OccurredAt: &yesterday},
	}
}

func asAny[T any](records []T) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

// logResult emits one JSON line per collection outcome.
func logResult(res Result) {
	if res.StoreUnavailable {
		logJSON(map[string]any{"event": "seed_skipped", "status": "skipped", "reason": "store unavailable"})
		return
	}
	for _, c := range res.Collections {
		entry := map[string]any{
			"event":      "seed_collection",
			"collection": c.Collection,
			"status":     string(c.Status),
			"inserted":   c.Inserted,
		}
		if c.Reason != "" {
			entry["reason"] = c.Reason
		}
		if c.Status == StatusFailed {
			entry["level"] = "error"
		}
		logJSON(entry)
	}
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	data["component"] = "seed"
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal seed log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
