package pilots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func listingDoc(t *testing.T, l PilotListing) bson.D {
	t.Helper()
	raw, err := bson.Marshal(l)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list decodes documents", func(mt *mtest.T) {
		samples := SampleListings()
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, listingDoc(t, samples[0]), listingDoc(t, samples[2]))
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, end)

		items, err := NewRepository(mt.Coll).List(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "PayFlow", items[0].Company)
		assert.Equal(t, RiskHigh, items[1].Risk)
		assert.Equal(t, "12h response", items[1].Readiness.SupportSLA)
		assert.Equal(t, samples[0].Exclusions, items[0].Exclusions)
	})

	mt.Run("list surfaces server errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "unauthorized",
			Name:    "Unauthorized",
		}))

		_, err := NewRepository(mt.Coll).List(context.Background())
		require.Error(t, err)
	})

	mt.Run("upsert replaces by id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := NewRepository(mt.Coll).Upsert(context.Background(), SampleListings()[1])
		require.NoError(t, err)
	})

	mt.Run("load store validates documents", func(mt *mtest.T) {
		bad := SampleListings()[0]
		bad.Risk = "Severe"
		ns := mt.DB.Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, listingDoc(t, bad)),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		_, err := LoadStore(context.Background(), NewRepository(mt.Coll))
		assert.ErrorIs(t, err, ErrInvalidListing)
	})
}

func TestLoadStoreWithoutRepositoryUsesSamples(t *testing.T) {
	store, err := LoadStore(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())
}

var _ Repository = (*MongoRepository)(nil)
