// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexTimeout bounds the startup index provisioning step.
const ensureIndexTimeout = 10 * time.Second

// EnsureCatalogIndexes provisions the unique indexes the catalog relies on
// for duplicate rejection: one on the sequence number, one on the name.
//
// CreateMany is idempotent — existing indexes with identical definitions are
// left untouched, so this runs unconditionally on every startup (the same
// role the migration runner played for the relational deployments).
func EnsureCatalogIndexes(ctx context.Context, collection *mongo.Collection, logger *slog.Logger) error {
	indexCtx, cancel := context.WithTimeout(ctx, ensureIndexTimeout)
	defer cancel()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "no", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	names, err := collection.Indexes().CreateMany(indexCtx, models)
	if err != nil {
		return fmt.Errorf("mongodb: failed to ensure catalog indexes: %w", err)
	}

	logger.Info("catalog_indexes_ensured", slog.Any("indexes", names))
	return nil
}
