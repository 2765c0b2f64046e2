// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokedex/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// GET mirrors the original API surface: hitting the endpoint runs the seed.
	router.Get("/", handler.execute)

	return router
}

func (handler *Handler) execute(writer http.ResponseWriter, request *http.Request) {
	message, err := handler.service.Execute(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, message)
}
