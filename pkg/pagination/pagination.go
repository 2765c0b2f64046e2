// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how limit/offset navigation is requested via query
// parameters and how the resulting metadata is delivered in the API response
// envelope. Handlers parse optional query values with [OptionalInt]; the
// service resolves them against its process-wide default via [Resolve], so
// the default lives in exactly one place.
package pagination

import (
	"net/http"
	"strconv"
)

// Params holds a fully resolved limit and offset.
type Params struct {
	Limit  int
	Offset int
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(params Params, count int) Meta {
	return Meta{
		Limit:  params.Limit,
		Offset: params.Offset,
		Count:  count,
	}
}

// Resolve applies defaults to optional limit/offset values.
//
// # Defaults
//
// A nil or non-positive limit falls back to defaultLimit; a nil or negative
// offset falls back to 0. No upper bound is applied to the limit — the store
// decides what it accepts.
func Resolve(limit, offset *int, defaultLimit int) Params {
	params := Params{Limit: defaultLimit, Offset: 0}

	if limit != nil && *limit >= 1 {
		params.Limit = *limit
	}

	if offset != nil && *offset > 0 {
		params.Offset = *offset
	}

	return params
}

// OptionalInt parses a single integer query parameter.
// It returns nil when the parameter is absent or unparsable.
func OptionalInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &n
}
