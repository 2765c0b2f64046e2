// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/internal/platform/dberr"
)

// MongoRepository implements [Repository] over a MongoDB collection.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: database.Collection(constants.PokemonCollection)}
}

// Collection exposes the underlying collection for startup index provisioning.
func (repository *MongoRepository) Collection() *mongo.Collection {
	return repository.collection
}

// readProjection strips the legacy mongoose version field from every read.
func readProjection() bson.M {
	return bson.M{constants.LegacyVersionField: 0}
}

func (repository *MongoRepository) List(ctx context.Context, limit, offset int) ([]*Pokemon, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: FieldNo, Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetProjection(readProjection())

	cursor, err := repository.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, dberr.Wrap(err, "list_pokemon")
	}
	defer cursor.Close(ctx)

	var records []*Pokemon
	if err := cursor.All(ctx, &records); err != nil {
		return nil, dberr.Wrap(err, "decode_pokemon_list")
	}

	return records, nil
}

func (repository *MongoRepository) FindByNo(ctx context.Context, no int) (*Pokemon, error) {
	return repository.findOne(ctx, bson.M{FieldNo: no}, "find_pokemon_by_no")
}

func (repository *MongoRepository) FindByID(ctx context.Context, id string) (*Pokemon, error) {
	// A malformed hex string can never match a stored _id; checking here
	// avoids a guaranteed-empty round-trip and a driver-level error.
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	return repository.findOne(ctx, bson.M{"_id": objectID}, "find_pokemon_by_id")
}

func (repository *MongoRepository) FindByName(ctx context.Context, name string) (*Pokemon, error) {
	return repository.findOne(ctx, bson.M{FieldName: name}, "find_pokemon_by_name")
}

// findOne runs a single-document lookup, translating "no documents" into the
// (nil, nil) absence contract of [Repository].
func (repository *MongoRepository) findOne(ctx context.Context, filter bson.M, action string) (*Pokemon, error) {
	record := &Pokemon{}

	err := repository.collection.
		FindOne(ctx, filter, options.FindOne().SetProjection(readProjection())).
		Decode(record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return record, nil
}

func (repository *MongoRepository) Insert(ctx context.Context, record *Pokemon) error {
	result, err := repository.collection.InsertOne(ctx, record)
	if err != nil {
		return dberr.Wrap(err, "insert_pokemon")
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = objectID
	}
	return nil
}

func (repository *MongoRepository) UpdatePartial(ctx context.Context, id primitive.ObjectID, patch UpdateInput) error {
	set := bson.M{}
	if patch.No != nil {
		set[FieldNo] = *patch.No
	}
	if patch.Name != nil {
		set[FieldName] = *patch.Name
	}
	if len(set) == 0 {
		return nil
	}

	_, err := repository.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	return dberr.Wrap(err, "update_pokemon")
}

func (repository *MongoRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	result, err := repository.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, dberr.Wrap(err, "delete_pokemon")
	}

	return result.DeletedCount, nil
}

func (repository *MongoRepository) DeleteAll(ctx context.Context) error {
	_, err := repository.collection.DeleteMany(ctx, bson.M{})
	return dberr.Wrap(err, "delete_all_pokemon")
}

func (repository *MongoRepository) InsertMany(ctx context.Context, records []*Pokemon) error {
	if len(records) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(records))
	for _, record := range records {
		documents = append(documents, record)
	}

	_, err := repository.collection.InsertMany(ctx, documents)
	return dberr.Wrap(err, "bulk_insert_pokemon")
}
