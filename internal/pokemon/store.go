// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the typed accessor over the catalog collection.
//
// The lookup methods return (nil, nil) when no record matches: absence is a
// domain outcome the service's precedence chain branches on, not an error.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]*Pokemon, error)
	FindByNo(ctx context.Context, no int) (*Pokemon, error)
	// FindByID treats a structurally invalid id as absent without querying.
	FindByID(ctx context.Context, id string) (*Pokemon, error)
	FindByName(ctx context.Context, name string) (*Pokemon, error)

	// Insert assigns the record's ID from the store on success.
	Insert(ctx context.Context, record *Pokemon) error
	UpdatePartial(ctx context.Context, id primitive.ObjectID, patch UpdateInput) error
	DeleteByID(ctx context.Context, id string) (int64, error)

	// Seed primitives. DeleteAll followed by InsertMany is deliberately not
	// atomic: a failure between the two leaves the catalog empty.
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, records []*Pokemon) error
}
