// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/pokedex/internal/pokemon"
)

func newTestRouter(repo *fakeRepo) http.Handler {
	handler := pokemon.NewHandler(newTestService(repo, 7))

	router := chi.NewRouter()
	router.Mount("/api/v2/pokemon", handler.Routes())
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buffer bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buffer).Encode(body))
	}

	request := httptest.NewRequest(method, path, &buffer)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Create covers boundary validation and the created response shape.
*/
func TestHandler_Create(t *testing.T) {
	t.Run("valid_input_created", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		response := doJSON(t, router, http.MethodPost, "/api/v2/pokemon", map[string]any{
			"no":   25,
			"name": "Pikachu",
		})

		require.Equal(t, http.StatusCreated, response.Code)

		var envelope struct {
			Data pokemon.Pokemon `json:"data"`
		}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))
		assert.Equal(t, 25, envelope.Data.No)
		assert.Equal(t, "pikachu", envelope.Data.Name)
	})

	t.Run("rejects_non_positive_no", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		response := doJSON(t, router, http.MethodPost, "/api/v2/pokemon", map[string]any{
			"no":   0,
			"name": "pikachu",
		})

		require.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, response.Body.String(), `"no"`)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		response := doJSON(t, router, http.MethodPost, "/api/v2/pokemon", map[string]any{
			"no":   25,
			"name": "   ",
		})

		require.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), `"name"`)
	})

	t.Run("duplicate_maps_to_bad_request", func(t *testing.T) {
		repo := &fakeRepo{}
		router := newTestRouter(repo)
		seedRepo(t, repo, &pokemon.Pokemon{No: 25, Name: "pikachu"})

		response := doJSON(t, router, http.MethodPost, "/api/v2/pokemon", map[string]any{
			"no":   25,
			"name": "raichu",
		})

		require.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "already exists")
	})
}

/*
TestHandler_FindOne covers term routing and the 404 shape.
*/
func TestHandler_FindOne(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)

	ditto := &pokemon.Pokemon{No: 132, Name: "ditto"}
	seedRepo(t, repo, ditto)

	t.Run("by_term", func(t *testing.T) {
		for _, term := range []string{"132", "ditto", ditto.ID.Hex()} {
			response := doJSON(t, router, http.MethodGet, "/api/v2/pokemon/"+term, nil)
			require.Equal(t, http.StatusOK, response.Code, "term %q", term)

			var envelope struct {
				Data pokemon.Pokemon `json:"data"`
			}
			require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))
			assert.Equal(t, ditto.ID, envelope.Data.ID)
		}
	})

	t.Run("unknown_term_is_404", func(t *testing.T) {
		response := doJSON(t, router, http.MethodGet, "/api/v2/pokemon/arceus", nil)

		require.Equal(t, http.StatusNotFound, response.Code)
		assert.Contains(t, response.Body.String(), "NOT_FOUND")
		assert.Contains(t, response.Body.String(), "arceus")
	})
}

/*
TestHandler_List checks pagination wiring through the HTTP layer.
*/
func TestHandler_List(t *testing.T) {
	repo := &fakeRepo{}
	router := newTestRouter(repo)
	seedRepo(t, repo,
		&pokemon.Pokemon{No: 1, Name: "bulbasaur"},
		&pokemon.Pokemon{No: 2, Name: "ivysaur"},
		&pokemon.Pokemon{No: 3, Name: "venusaur"},
	)

	response := doJSON(t, router, http.MethodGet, "/api/v2/pokemon?limit=2&offset=1", nil)
	require.Equal(t, http.StatusOK, response.Code)

	var envelope struct {
		Data []pokemon.Pokemon `json:"data"`
		Meta struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
			Count  int `json:"count"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))

	require.Len(t, envelope.Data, 2)
	assert.Equal(t, 2, envelope.Data[0].No)
	assert.Equal(t, 3, envelope.Data[1].No)
	assert.Equal(t, 2, envelope.Meta.Limit)
	assert.Equal(t, 1, envelope.Meta.Offset)
	assert.Equal(t, 2, envelope.Meta.Count)
}

/*
TestHandler_Update verifies patch decoding and per-field validation.
*/
func TestHandler_Update(t *testing.T) {
	t.Run("partial_patch", func(t *testing.T) {
		repo := &fakeRepo{}
		router := newTestRouter(repo)
		seedRepo(t, repo, &pokemon.Pokemon{No: 133, Name: "eevee"})

		response := doJSON(t, router, http.MethodPatch, "/api/v2/pokemon/eevee", map[string]any{
			"name": "Flareon",
		})

		require.Equal(t, http.StatusOK, response.Code)

		var envelope struct {
			Data pokemon.Pokemon `json:"data"`
		}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))
		assert.Equal(t, 133, envelope.Data.No)
		assert.Equal(t, "flareon", envelope.Data.Name)
	})

	t.Run("present_fields_validated", func(t *testing.T) {
		repo := &fakeRepo{}
		router := newTestRouter(repo)
		seedRepo(t, repo, &pokemon.Pokemon{No: 133, Name: "eevee"})

		response := doJSON(t, router, http.MethodPatch, "/api/v2/pokemon/eevee", map[string]any{
			"no": -1,
		})

		require.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), `"no"`)
	})
}

/*
TestHandler_Remove verifies id-shape validation and deletion outcomes.
*/
func TestHandler_Remove(t *testing.T) {
	t.Run("malformed_id_rejected_before_store", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		response := doJSON(t, router, http.MethodDelete, "/api/v2/pokemon/not-an-id", nil)

		require.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("existing_id_deleted", func(t *testing.T) {
		repo := &fakeRepo{}
		router := newTestRouter(repo)

		snorlax := &pokemon.Pokemon{No: 143, Name: "snorlax"}
		seedRepo(t, repo, snorlax)

		response := doJSON(t, router, http.MethodDelete, "/api/v2/pokemon/"+snorlax.ID.Hex(), nil)
		require.Equal(t, http.StatusNoContent, response.Code)

		found, err := repo.FindByName(context.Background(), "snorlax")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("unknown_id_is_bad_request", func(t *testing.T) {
		router := newTestRouter(&fakeRepo{})

		response := doJSON(t, router, http.MethodDelete, "/api/v2/pokemon/"+primitive.NewObjectID().Hex(), nil)

		require.Equal(t, http.StatusBadRequest, response.Code)
		assert.Contains(t, response.Body.String(), "does not exist")
	})
}
