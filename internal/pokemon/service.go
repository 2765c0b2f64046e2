// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/dberr"
	"github.com/taibuivan/pokedex/pkg/normalize"
	"github.com/taibuivan/pokedex/pkg/pagination"
)

// Service implements the catalog operations over a [Repository].
//
// It trusts the HTTP boundary to have validated its inputs (positive no,
// non-empty name); its own job is normalization, lookup resolution, and
// mapping store failures to domain error kinds.
type Service struct {
	repo   Repository
	logger *slog.Logger

	// defaultLimit is captured once at construction from configuration and
	// never mutated afterwards.
	defaultLimit int
}

func NewService(repo Repository, logger *slog.Logger, defaultLimit int) *Service {
	return &Service{
		repo:         repo,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// List returns catalog records in ascending sequence order.
// A nil limit falls back to the process-wide default; a nil offset to 0.
func (service *Service) List(ctx context.Context, params ListParams) ([]*Pokemon, pagination.Meta, error) {
	resolved := pagination.Resolve(params.Limit, params.Offset, service.defaultLimit)

	records, err := service.repo.List(ctx, resolved.Limit, resolved.Offset)
	if err != nil {
		return nil, pagination.Meta{}, service.internalError(err)
	}

	return records, pagination.NewMeta(resolved, len(records)), nil
}

// Create inserts a new record with the name normalized to lowercase.
// A duplicate no or name is a request fault, reported with the offending values.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Pokemon, error) {
	record := &Pokemon{
		No:   input.No,
		Name: normalize.Name(input.Name),
	}

	if err := service.repo.Insert(ctx, record); err != nil {
		return nil, service.mapStoreError(err, fmt.Sprintf("no=%d, name=%q", record.No, record.Name))
	}

	service.logger.Info("pokemon_created",
		slog.Int("no", record.No),
		slog.String("name", record.Name),
	)
	return record, nil
}

// FindOne resolves a lookup term against the catalog.
//
// # Precedence
//
//  1. If the term parses as an integer, look up by sequence number.
//  2. If still unmatched and the term is a structurally valid store id,
//     look up by id.
//  3. If still unmatched, look up by name (term lowercased and trimmed).
//
// First successful match wins — an earlier step that queried but found
// nothing does not stop the chain.
func (service *Service) FindOne(ctx context.Context, term string) (*Pokemon, error) {
	var record *Pokemon

	if no, parseErr := strconv.Atoi(term); parseErr == nil {
		found, err := service.repo.FindByNo(ctx, no)
		if err != nil {
			return nil, service.internalError(err)
		}
		record = found
	}

	if record == nil && primitive.IsValidObjectID(term) {
		found, err := service.repo.FindByID(ctx, term)
		if err != nil {
			return nil, service.internalError(err)
		}
		record = found
	}

	if record == nil {
		found, err := service.repo.FindByName(ctx, normalize.Term(term))
		if err != nil {
			return nil, service.internalError(err)
		}
		record = found
	}

	if record == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Pokemon with id, name or no %q not found", term))
	}

	return record, nil
}

// Update resolves term via [Service.FindOne] (its NotFound propagates
// unchanged), applies the patch, and returns the prior record overlaid with
// the patch fields.
//
// The returned view is a local merge, not a re-fetch: if the store applies
// server-side transformations it may diverge from persisted truth.
func (service *Service) Update(ctx context.Context, term string, patch UpdateInput) (*Pokemon, error) {
	existing, err := service.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		lowered := normalize.Name(*patch.Name)
		patch.Name = &lowered
	}

	if err := service.repo.UpdatePartial(ctx, existing.ID, patch); err != nil {
		return nil, service.mapStoreError(err, describePatch(patch))
	}

	merged := *existing
	if patch.No != nil {
		merged.No = *patch.No
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}

	service.logger.Info("pokemon_updated", slog.String("id", merged.ID.Hex()))
	return &merged, nil
}

// Remove deletes a record by its store id only.
//
// Zero deletions mean the id matched nothing; since existence was never
// verified first, that is reported as a request fault rather than NotFound.
func (service *Service) Remove(ctx context.Context, id string) error {
	deleted, err := service.repo.DeleteByID(ctx, id)
	if err != nil {
		return service.internalError(err)
	}

	if deleted == 0 {
		return apperr.ValidationError(fmt.Sprintf("Pokemon %q does not exist in the database", id))
	}

	service.logger.Warn("pokemon_deleted", slog.String("id", id))
	return nil
}

// mapStoreError classifies a store failure once, at the outermost point of
// the operation: duplicate keys become client faults naming the conflicting
// values, everything else is logged and surfaced as a generic internal error.
func (service *Service) mapStoreError(err error, conflict string) error {
	if dberr.IsDuplicate(err) {
		return apperr.ValidationError("Pokemon already exists in the database: " + conflict)
	}
	return service.internalError(err)
}

func (service *Service) internalError(err error) error {
	service.logger.Error("pokemon_store_error", slog.Any("error", err))
	return apperr.Internal(err)
}

// describePatch names the patched fields for duplicate-key diagnostics.
func describePatch(patch UpdateInput) string {
	conflict := ""
	if patch.No != nil {
		conflict = fmt.Sprintf("no=%d", *patch.No)
	}
	if patch.Name != nil {
		if conflict != "" {
			conflict += ", "
		}
		conflict += fmt.Sprintf("name=%q", *patch.Name)
	}
	return conflict
}
