// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/pokemon"
)

// StatusMessage is returned to the caller after a successful seed.
const StatusMessage = "Seed executed"

// Fetcher retrieves one page of summary records from the external catalog.
type Fetcher interface {
	FetchPage(ctx context.Context, limit int) ([]Summary, error)
}

// Service performs the full-catalog reset: wipe everything, fetch one page
// from the external source, bulk-insert the transformed records.
//
// The wipe and the insert are not transactional. A failure after the wipe
// leaves the catalog empty until the seed is re-run — an accepted limitation
// of this operation.
type Service struct {
	repo    pokemon.Repository
	fetcher Fetcher
	logger  *slog.Logger

	// fetchLimit is the page size requested from the external API,
	// captured once from configuration.
	fetchLimit int
}

func NewService(repo pokemon.Repository, fetcher Fetcher, logger *slog.Logger, fetchLimit int) *Service {
	return &Service{
		repo:       repo,
		fetcher:    fetcher,
		logger:     logger,
		fetchLimit: fetchLimit,
	}
}

// Execute runs the seed and returns its status message.
//
// Names are inserted exactly as the external source provides them — unlike
// the create/update paths, no lowercasing is applied here; the source is
// trusted to deliver lowercase names.
func (service *Service) Execute(ctx context.Context) (string, error) {
	if err := service.repo.DeleteAll(ctx); err != nil {
		service.logger.Error("seed_wipe_failed", slog.Any("error", err))
		return "", apperr.Internal(err)
	}

	summaries, err := service.fetcher.FetchPage(ctx, service.fetchLimit)
	if err != nil {
		service.logger.Error("seed_fetch_failed", slog.Any("error", err))
		return "", apperr.BadGateway("Could not fetch the seed source", err)
	}

	records := make([]*pokemon.Pokemon, 0, len(summaries))
	for _, summary := range summaries {
		no, err := summary.SequenceNumber()
		if err != nil {
			service.logger.Error("seed_malformed_record", slog.Any("error", err))
			return "", apperr.BadGateway(fmt.Sprintf("Seed source returned a malformed record url %q", summary.URL), err)
		}

		records = append(records, &pokemon.Pokemon{No: no, Name: summary.Name})
	}

	if err := service.repo.InsertMany(ctx, records); err != nil {
		service.logger.Error("seed_insert_failed", slog.Any("error", err))
		return "", apperr.Internal(err)
	}

	service.logger.Info("seed_executed", slog.Int("count", len(records)))
	return StatusMessage, nil
}
