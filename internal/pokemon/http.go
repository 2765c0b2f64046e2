// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/pokedex/internal/platform/request"
	"github.com/taibuivan/pokedex/internal/platform/respond"
	"github.com/taibuivan/pokedex/internal/platform/validate"
	"github.com/taibuivan/pokedex/pkg/pagination"
)

// Handler is the HTTP boundary for the catalog. It owns request validation:
// the service trusts that inputs passing through here are well-formed.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{term}", handler.findOne)
	router.Patch("/{term}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := ListParams{
		Limit:  pagination.OptionalInt(request, "limit"),
		Offset: pagination.OptionalInt(request, "offset"),
	}

	records, meta, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, meta)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldNo, input.No).Required(FieldName, input.Name)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

func (handler *Handler) findOne(writer http.ResponseWriter, request *http.Request) {
	term := requestutil.Param(request, "term")

	record, err := handler.service.FindOne(request.Context(), term)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	term := requestutil.Param(request, "term")

	var patch UpdateInput
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Only fields present in the patch are validated.
	validator := &validate.Validator{}
	if patch.No != nil {
		validator.Positive(FieldNo, *patch.No)
	}
	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), term, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	// Deletion accepts store ids only — never a sequence number or name.
	validator := &validate.Validator{}
	validator.ObjectID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
