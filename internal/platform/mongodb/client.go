// Copyright (c) 2026 Pokedex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mongodb provides a managed MongoDB client and the index
// provisioning step for the Pokedex application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It manages the physical
// database connection (the driver owns its internal connection pool) and
// hosts the startup provisioning of the unique indexes the catalog relies on.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated client settings for the Pokedex workload.
const (
	// maxPoolSize is the maximum number of connections in the driver pool.
	maxPoolSize = 25
	// minPoolSize keeps a warm set of connections to avoid cold-start latency.
	minPoolSize = 5
	// maxConnIdleTime closes connections that have been idle too long.
	maxConnIdleTime = 10 * time.Minute
	// connectTimeout is the maximum time allowed to establish a new connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// NewClient creates and validates a new MongoDB client.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// connection string.
//   - logger: Structured logger for client-level events.
func NewClient(ctx context.Context, uri string, logger *slog.Logger) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdleTime).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to create client: %w", err)
	}

	// Validate that we can actually reach the database.
	if err := Ping(ctx, client); err != nil {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	logger.Info("mongodb_connected")
	return client, nil
}

// Ping verifies connectivity to the primary node within a bounded timeout.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}
	return nil
}

// Disconnect closes the client within a bounded timeout. Used during
// graceful shutdown.
func Disconnect(client *mongo.Client, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("mongodb_disconnect_error", slog.Any("error", err))
	}
}
