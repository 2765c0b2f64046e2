// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pokemon implements the Pokemon catalog domain: the persisted
// entity, the store accessor, the service with its flexible lookup, and the
// HTTP handler set.
package pokemon

import "go.mongodb.org/mongo-driver/bson/primitive"

// Pokemon is a single catalog record.
//
// # Invariants
//
//   - No is a positive integer, unique across the catalog.
//   - Name is never empty and stored lowercase (the seed path trusts the
//     external source's casing and skips normalization).
//   - Uniqueness of No and Name is enforced by the store's unique indexes,
//     not pre-checked in memory; concurrent duplicates lose the race at the
//     index.
type Pokemon struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	No   int                `bson:"no"            json:"no"`
	Name string             `bson:"name"          json:"name"`
}

// CreateInput is the request DTO for creating a record.
type CreateInput struct {
	No   int    `json:"no"`
	Name string `json:"name"`
}

// UpdateInput is the request DTO for a partial update. Nil fields are left
// untouched.
type UpdateInput struct {
	No   *int    `json:"no,omitempty"`
	Name *string `json:"name,omitempty"`
}

// ListParams mirrors the optional limit/offset query of the list endpoint.
type ListParams struct {
	Limit  *int
	Offset *int
}

// Field names shared by validation and patch building.
const (
	FieldNo   = "no"
	FieldName = "name"
)
