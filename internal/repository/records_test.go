package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"insurance-portal-api/internal/model"
	"insurance-portal-api/internal/store"
	storeMocks "insurance-portal-api/internal/store/mocks"
)

func TestListPoliciesUnavailableStore(t *testing.T) {
	repo := NewRecords(store.Unavailable())

	policies, err := repo.ListPolicies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, policies)
}

func TestListPoliciesStripsIDAndCoercesDates(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("FindAll", ctx, "policy").Return([]bson.M{
		{
			"_id":            primitive.NewObjectID(),
			"policy_number":  "CP-12345",
			"product":        "Commercial Property",
			"status":         "active",
			"start_date":     time.Date(2024, time.January, 1, 9, 15, 0, 0, time.UTC),
			"end_date":       time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			"premium":        float64(12000),
			"insured_entity": "Acme Corp",
		},
	}, nil)

	repo := NewRecords(mStore)
	policies, err := repo.ListPolicies(ctx)
	require.NoError(t, err)
	require.Len(t, policies, 1)

	p := policies[0]
	assert.Equal(t, "CP-12345", p.PolicyNumber)
	assert.Equal(t, model.NewDate(2024, time.January, 1).Time, p.StartDate.Time)
	assert.Equal(t, model.NewDate(2024, time.December, 31).Time, p.EndDate.Time)
	mStore.AssertExpectations(t)
}

func TestListAppliesStoredRecordDefaults(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("FindAll", ctx, "renewal").Return([]bson.M{
		{
			// no status stored: defaults to "due"
			"policy_number": "XX-0000",
			"product":       "Directors & Officers",
			"renewal_date":  time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	repo := NewRecords(mStore)
	renewals, err := repo.ListRenewals(ctx)
	require.NoError(t, err)
	require.Len(t, renewals, 1)
	assert.Equal(t, "due", renewals[0].Status)
}

func TestListRejectsMalformedStoredRecord(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("FindAll", ctx, "invoice").Return([]bson.M{
		{
			"invoice_number": "INV-BAD",
			"amount":         float64(100),
			"due_date":       time.Now(),
			"status":         "overdue", // outside the enum
		},
	}, nil)

	repo := NewRecords(mStore)
	_, err := repo.ListInvoices(ctx)
	assert.ErrorContains(t, err, "failed validation")
}

func TestInsertedRecordRoundTrips(t *testing.T) {
	ctx := context.Background()
	in := model.Invoice{
		InvoiceNumber: "INV-001",
		Amount:        15000,
		DueDate:       model.NewDate(2025, time.November, 15),
		Status:        "outstanding",
	}

	// Simulate what the store hands back: the inserted document plus a
	// database-assigned _id.
	data, err := bson.Marshal(in)
	require.NoError(t, err)
	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	raw["_id"] = primitive.NewObjectID()

	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("FindAll", ctx, "invoice").Return([]bson.M{raw}, nil)

	repo := NewRecords(mStore)
	invoices, err := repo.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, in, invoices[0], "logical values survive the round trip, identifier excluded")
}

func TestListOrDefault(t *testing.T) {
	ctx := context.Background()
	defaults := DefaultUpdates()

	t.Run("store unavailable returns defaults", func(t *testing.T) {
		repo := NewRecords(store.Unavailable())
		updates, err := repo.ListUpdatesOrDefault(ctx, defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, updates)
	})

	t.Run("empty collection returns defaults", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mStore.On("Available").Return(true)
		mStore.On("FindAll", ctx, "update").Return([]bson.M{}, nil)

		repo := NewRecords(mStore)
		updates, err := repo.ListUpdatesOrDefault(ctx, defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, updates)
	})

	t.Run("stored rows win over defaults", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mStore.On("Available").Return(true)
		mStore.On("FindAll", ctx, "update").Return([]bson.M{
			{"title": "Flood cover changes", "date_str": "Jan 5, 2025"},
		}, nil)

		repo := NewRecords(mStore)
		updates, err := repo.ListUpdatesOrDefault(ctx, defaults)
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, "Flood cover changes", updates[0].Title)
		assert.Equal(t, "Latest Update", updates[0].Label)
	})
}

func TestCreateDocument(t *testing.T) {
	ctx := context.Background()
	item := model.DocumentItem{
		Filename:     "evidence.pdf",
		ContentType:  "application/pdf",
		Category:     "Uploaded",
		PolicyNumber: "CP-12345",
	}

	t.Run("stores metadata when available", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		mStore.On("Available").Return(true)
		mStore.On("Insert", ctx, "documentitem", item).Return(nil)

		repo := NewRecords(mStore)
		require.NoError(t, repo.CreateDocument(ctx, item))
		mStore.AssertExpectations(t)
	})

	t.Run("no-op when unavailable", func(t *testing.T) {
		repo := NewRecords(store.Unavailable())
		assert.NoError(t, repo.CreateDocument(ctx, item))
	})

	t.Run("rejects invalid metadata before insert", func(t *testing.T) {
		mStore := new(storeMocks.MockStore)
		repo := NewRecords(mStore)
		err := repo.CreateDocument(ctx, model.DocumentItem{})
		assert.Error(t, err)
		mStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPerCollectionIndependence(t *testing.T) {
	// A failure reading one collection must not affect another.
	ctx := context.Background()
	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("FindAll", ctx, "invoice").Return(nil, assert.AnError)
	mStore.On("FindAll", ctx, "policy").Return([]bson.M{}, nil)

	repo := NewRecords(mStore)

	_, err := repo.ListInvoices(ctx)
	assert.Error(t, err)

	policies, err := repo.ListPolicies(ctx)
	require.NoError(t, err)
	assert.Empty(t, policies)
}
