package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"insurance-portal-api/internal/model"
	"insurance-portal-api/internal/store"
	storeMocks "insurance-portal-api/internal/store/mocks"
)

func TestRunUnavailableStore(t *testing.T) {
	res := Run(context.Background(), store.Unavailable())

	assert.True(t, res.StoreUnavailable)
	assert.Empty(t, res.Collections)
}

func TestRunSeedsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("Count", ctx, mock.Anything, bson.M(nil)).Return(int64(0), nil)
	mStore.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

	res := Run(ctx, mStore)

	require.Len(t, res.Collections, 6)
	inserted := map[string]int{}
	for _, c := range res.Collections {
		assert.Equal(t, StatusSeeded, c.Status)
		inserted[c.Collection] = c.Inserted
	}
	assert.Equal(t, 3, inserted[model.CollectionPolicy])
	assert.Equal(t, 2, inserted[model.CollectionInvoice])
	assert.Equal(t, 1, inserted[model.CollectionRenewal])
	assert.Equal(t, 1, inserted[model.CollectionUpdate])
	assert.Equal(t, 2, inserted[model.CollectionTeamMember])
	assert.Equal(t, 3, inserted[model.CollectionActivity])
}

func TestRunSkipsPopulatedCollections(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("Count", ctx, mock.Anything, bson.M(nil)).Return(int64(5), nil)

	res := Run(ctx, mStore)

	for _, c := range res.Collections {
		assert.Equal(t, StatusSkipped, c.Status)
		assert.Zero(t, c.Inserted)
	}
	mStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunContinuesPastFailedCollection(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStore)
	mStore.On("Available").Return(true)
	mStore.On("Count", ctx, mock.Anything, bson.M(nil)).Return(int64(0), nil)
	mStore.On("Insert", ctx, model.CollectionPolicy, mock.Anything).Return(assert.AnError)
	mStore.On("Insert", ctx, mock.Anything, mock.Anything).Return(nil)

	res := Run(ctx, mStore)

	byCollection := map[string]CollectionResult{}
	for _, c := range res.Collections {
		byCollection[c.Collection] = c
	}
	assert.Equal(t, StatusFailed, byCollection[model.CollectionPolicy].Status)
	assert.Contains(t, byCollection[model.CollectionPolicy].Reason, "insert")
	assert.Equal(t, StatusSeeded, byCollection[model.CollectionInvoice].Status)
	assert.Equal(t, StatusSeeded, byCollection[model.CollectionActivity].Status)
}

func TestSeedRecordsAreValid(t *testing.T) {
	// Seed data must satisfy the same constraints stored records are
	// validated against on read.
	for _, p := range seedPolicies() {
		assert.NoError(t, model.Validate(p))
	}
	for _, i := range seedInvoices() {
		assert.NoError(t, model.Validate(i))
	}
	for _, r := range seedRenewals() {
		assert.NoError(t, model.Validate(r))
	}
	for _, u := range seedUpdates() {
		assert.NoError(t, model.Validate(u))
	}
	for _, m := range seedTeam() {
		assert.NoError(t, model.Validate(m))
	}
	for _, a := range seedActivities() {
		assert.NoError(t, model.Validate(a))
	}
}
