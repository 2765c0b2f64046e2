// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level MongoDB driver errors and
// the classifications the service layer acts on.
//
// The service layer never inspects driver types directly: the store wraps
// every failure through [Wrap], and callers branch on [IsDuplicate] or treat
// the error as an internal store failure.
package dberr

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey marks a unique-index violation detected by the store.
var ErrDuplicateKey = errors.New("duplicate key violation")

// Wrap classifies a MongoDB driver error, tagging unique-constraint
// violations with [ErrDuplicateKey] and annotating everything else with the
// attempted action. A nil error passes through unchanged.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %v", action, ErrDuplicateKey, err)
	}

	return fmt.Errorf("%s: %w", action, err)
}

// IsDuplicate reports whether err was classified as a unique-index violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
