package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates pilot indexes", func(mt *mtest.T) {
		cols := NewCollections(mt.DB)
		assert.Equal(t, "pilots", cols.Pilots.Name())

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "createdCollectionAutomatically", Value: true}))
		require.NoError(t, EnsureIndexes(context.Background(), cols))
	})

	mt.Run("surfaces errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "duplicate key",
			Name:    "DuplicateKey",
		}))
		require.Error(t, EnsureIndexes(context.Background(), NewCollections(mt.DB)))
	})
}
