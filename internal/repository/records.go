package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"insurance-portal-api/internal/model"
	"insurance-portal-api/internal/store"
)

// Records is the record access layer: it reads raw documents through the
// store adapter, strips the internal identifier, coerces date fields into
// the entity's declared representation, applies entity defaults and
// validates the result. It never exposes loosely-typed data outward.
//
// When the store is unavailable the List methods read as empty; the
// ListXOrDefault variants substitute the caller's fallback records both in
// that case and when the collection holds zero rows.
type Records struct {
	store store.Store
}

// NewRecords constructs the access layer over the given store adapter.
func NewRecords(st store.Store) *Records {
	return &Records{store: st}
}

func (r *Records) ListPolicies(ctx context.Context) ([]model.Policy, error) {
	return listRecords[model.Policy](ctx, r.store, model.CollectionPolicy)
}

func (r *Records) ListDocuments(ctx context.Context) ([]model.DocumentItem, error) {
	return listRecords[model.DocumentItem](ctx, r.store, model.CollectionDocument)
}

func (r *Records) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	return listRecords[model.Invoice](ctx, r.store, model.CollectionInvoice)
}

func (r *Records) ListRenewals(ctx context.Context) ([]model.Renewal, error) {
	return listRecords[model.Renewal](ctx, r.store, model.CollectionRenewal)
}

func (r *Records) ListUpdates(ctx context.Context) ([]model.Update, error) {
	return listRecords[model.Update](ctx, r.store, model.CollectionUpdate)
}

func (r *Records) ListTeam(ctx context.Context) ([]model.TeamMember, error) {
	return listRecords[model.TeamMember](ctx, r.store, model.CollectionTeamMember)
}

func (r *Records) ListActivities(ctx context.Context) ([]model.Activity, error) {
	return listRecords[model.Activity](ctx, r.store, model.CollectionActivity)
}

func (r *Records) ListUpdatesOrDefault(ctx context.Context, defaults []model.Update) ([]model.Update, error) {
	return listOrDefault(ctx, r.store, model.CollectionUpdate, defaults)
}

func (r *Records) ListTeamOrDefault(ctx context.Context, defaults []model.TeamMember) ([]model.TeamMember, error) {
	return listOrDefault(ctx, r.store, model.CollectionTeamMember, defaults)
}

func (r *Records) ListActivitiesOrDefault(ctx context.Context, defaults []model.Activity) ([]model.Activity, error) {
	return listOrDefault(ctx, r.store, model.CollectionActivity, defaults)
}

func (r *Records) ListPoliciesOrDefault(ctx context.Context, defaults []model.Policy) ([]model.Policy, error) {
	return listOrDefault(ctx, r.store, model.CollectionPolicy, defaults)
}

func (r *Records) ListInvoicesOrDefault(ctx context.Context, defaults []model.Invoice) ([]model.Invoice, error) {
	return listOrDefault(ctx, r.store, model.CollectionInvoice, defaults)
}

func (r *Records) ListRenewalsOrDefault(ctx context.Context, defaults []model.Renewal) ([]model.Renewal, error) {
	return listOrDefault(ctx, r.store, model.CollectionRenewal, defaults)
}

func (r *Records) ListDocumentsOrDefault(ctx context.Context, defaults []model.DocumentItem) ([]model.DocumentItem, error) {
	return listOrDefault(ctx, r.store, model.CollectionDocument, defaults)
}

// CreateDocument stores uploaded document metadata. With no store
// configured the upload is still acknowledged, so this is a silent no-op
// when the adapter is unavailable.
func (r *Records) CreateDocument(ctx context.Context, item model.DocumentItem) error {
	if err := model.Validate(item); err != nil {
		return fmt.Errorf("document item: %w", err)
	}
	if !r.store.Available() {
		return nil
	}
	return r.store.Insert(ctx, model.CollectionDocument, item)
}

// defaulter lets the generic decode path apply per-entity defaults.
type defaulter interface{ ApplyDefaults() }

// listRecords reads and normalizes a whole collection. An unavailable
// store reads as empty. A stored record that fails validation is a
// data-integrity bug in seed data and surfaces as an error on this
// request only.
func listRecords[T any](ctx context.Context, st store.Store, collection string) ([]T, error) {
	out := make([]T, 0)
	if !st.Available() {
		return out, nil
	}

	docs, err := st.FindAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}

	for _, raw := range docs {
		v, err := decodeRecord[T](raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", collection, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func listOrDefault[T any](ctx context.Context, st store.Store, collection string, defaults []T) ([]T, error) {
	if !st.Available() {
		return defaults, nil
	}
	items, err := listRecords[T](ctx, st, collection)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return defaults, nil
	}
	return items, nil
}

// decodeRecord turns one raw stored document into a validated entity
// value. The database-assigned _id is stripped so it is never exposed;
// date coercion happens inside the entity's BSON unmarshaling.
func decodeRecord[T any](raw bson.M) (T, error) {
	var v T

	delete(raw, "_id")

	data, err := bson.Marshal(raw)
	if err != nil {
		return v, fmt.Errorf("re-encode record: %w", err)
	}
	if err := bson.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode record: %w", err)
	}

	if d, ok := any(&v).(defaulter); ok {
		d.ApplyDefaults()
	}
	if err := model.Validate(v); err != nil {
		return v, fmt.Errorf("stored record failed validation: %w", err)
	}
	return v, nil
}
