package pilots

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the catalog source read once at startup. Listings are never written at
// request time; Upsert exists for the seed command.
type Repository interface {
	List(ctx context.Context) ([]PilotListing, error)
	Upsert(ctx context.Context, listing PilotListing) error
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]PilotListing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]PilotListing, 0)
	for cursor.Next(ctx) {
		var item PilotListing
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, listing PilotListing) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": listing.ID}, listing, opts)
	return err
}

// LoadStore builds the catalog from repo, or from SampleListings when repo is nil.
func LoadStore(ctx context.Context, repo Repository) (*Store, error) {
	if repo == nil {
		return NewStore(SampleListings())
	}
	items, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(items)
}
