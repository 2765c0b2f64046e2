// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/pokemon"
	"github.com/taibuivan/pokedex/internal/seed"
)

// catalogFake implements [pokemon.Repository] with just enough behavior for
// the seed path: a record slice wiped by DeleteAll and extended by InsertMany.
type catalogFake struct {
	records   []*pokemon.Pokemon
	deleteErr error
	insertErr error
}

func (f *catalogFake) DeleteAll(context.Context) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.records = nil
	return nil
}

func (f *catalogFake) InsertMany(_ context.Context, records []*pokemon.Pokemon) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, records...)
	return nil
}

func (f *catalogFake) List(context.Context, int, int) ([]*pokemon.Pokemon, error) {
	return f.records, nil
}

func (f *catalogFake) FindByNo(context.Context, int) (*pokemon.Pokemon, error)      { return nil, nil }
func (f *catalogFake) FindByID(context.Context, string) (*pokemon.Pokemon, error)   { return nil, nil }
func (f *catalogFake) FindByName(context.Context, string) (*pokemon.Pokemon, error) { return nil, nil }
func (f *catalogFake) Insert(context.Context, *pokemon.Pokemon) error               { return nil }
func (f *catalogFake) UpdatePartial(context.Context, primitive.ObjectID, pokemon.UpdateInput) error {
	return nil
}
func (f *catalogFake) DeleteByID(context.Context, string) (int64, error) { return 0, nil }

// fetcherFunc adapts a function to the [seed.Fetcher] interface.
type fetcherFunc func(ctx context.Context, limit int) ([]seed.Summary, error)

func (f fetcherFunc) FetchPage(ctx context.Context, limit int) ([]seed.Summary, error) {
	return f(ctx, limit)
}

func newTestSeedService(repo pokemon.Repository, fetcher seed.Fetcher, fetchLimit int) *seed.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return seed.NewService(repo, fetcher, logger, fetchLimit)
}

/*
TestService_Execute verifies the wipe-then-reload sequence and its
transformation of summary URLs into sequence numbers.
*/
func TestService_Execute(t *testing.T) {
	t.Run("replaces_catalog", func(t *testing.T) {
		repo := &catalogFake{records: []*pokemon.Pokemon{
			{No: 999, Name: "stale-record"},
		}}

		fetcher := fetcherFunc(func(_ context.Context, limit int) ([]seed.Summary, error) {
			assert.Equal(t, 650, limit)
			return []seed.Summary{
				{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
				{Name: "ivysaur", URL: "https://pokeapi.co/api/v2/pokemon/2/"},
			}, nil
		})

		service := newTestSeedService(repo, fetcher, 650)

		message, err := service.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, seed.StatusMessage, message)

		// Prior contents gone, fresh records in place.
		require.Len(t, repo.records, 2)
		assert.Equal(t, 1, repo.records[0].No)
		assert.Equal(t, "bulbasaur", repo.records[0].Name)
		assert.Equal(t, 2, repo.records[1].No)
		assert.Equal(t, "ivysaur", repo.records[1].Name)
	})

	t.Run("names_not_normalized", func(t *testing.T) {
		// Unlike create/update, the seed path trusts the source's casing.
		repo := &catalogFake{}
		fetcher := fetcherFunc(func(context.Context, int) ([]seed.Summary, error) {
			return []seed.Summary{
				{Name: "MixedCase", URL: "https://pokeapi.co/api/v2/pokemon/7/"},
			}, nil
		})

		service := newTestSeedService(repo, fetcher, 650)

		_, err := service.Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, repo.records, 1)
		assert.Equal(t, "MixedCase", repo.records[0].Name)
	})

	t.Run("fetch_failure_is_upstream_error", func(t *testing.T) {
		repo := &catalogFake{records: []*pokemon.Pokemon{{No: 1, Name: "bulbasaur"}}}
		fetcher := fetcherFunc(func(context.Context, int) ([]seed.Summary, error) {
			return nil, fmt.Errorf("dial tcp: connection refused")
		})

		service := newTestSeedService(repo, fetcher, 650)

		_, err := service.Execute(context.Background())
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UPSTREAM_ERROR", ae.Code)

		// The wipe already ran: the catalog is empty until a re-seed succeeds.
		assert.Empty(t, repo.records)
	})

	t.Run("malformed_url_is_upstream_error", func(t *testing.T) {
		repo := &catalogFake{}
		fetcher := fetcherFunc(func(context.Context, int) ([]seed.Summary, error) {
			return []seed.Summary{
				{Name: "glitch", URL: "https://pokeapi.co/api/v2/pokemon/not-a-number/"},
			}, nil
		})

		service := newTestSeedService(repo, fetcher, 650)

		_, err := service.Execute(context.Background())
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UPSTREAM_ERROR", ae.Code)
		assert.Contains(t, ae.Message, "not-a-number")
	})

	t.Run("wipe_failure_is_internal", func(t *testing.T) {
		repo := &catalogFake{deleteErr: fmt.Errorf("connection reset")}
		fetcher := fetcherFunc(func(context.Context, int) ([]seed.Summary, error) {
			t.Fatal("fetch must not run when the wipe fails")
			return nil, nil
		})

		service := newTestSeedService(repo, fetcher, 650)

		_, err := service.Execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
	})

	t.Run("insert_failure_is_internal", func(t *testing.T) {
		repo := &catalogFake{insertErr: fmt.Errorf("write concern error")}
		fetcher := fetcherFunc(func(context.Context, int) ([]seed.Summary, error) {
			return []seed.Summary{
				{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
			}, nil
		})

		service := newTestSeedService(repo, fetcher, 650)

		_, err := service.Execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
	})
}
