// Package store persists finished validation reports so repeated runs
// over the same dataset can be compared later.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BartekS5/cellcheck/internal/validate"
	"github.com/BartekS5/cellcheck/pkg/logger"
)

const (
	defaultDatabase   = "cellcheck"
	defaultCollection = "reports"
)

// MongoArchive upserts reports into a MongoDB collection, keyed by the
// report's check id.
type MongoArchive struct {
	Client     *mongo.Client
	Database   string
	Collection string
}

func NewMongoArchive(client *mongo.Client) *MongoArchive {
	return &MongoArchive{
		Client:     client,
		Database:   defaultDatabase,
		Collection: defaultCollection,
	}
}

// Store writes one report. The upsert keeps retries idempotent: storing
// the same report twice leaves a single document behind.
func (a *MongoArchive) Store(ctx context.Context, report *validate.Report) error {
	if report.CheckID == "" {
		return fmt.Errorf("report has no check id")
	}
	coll := a.Client.Database(a.Database).Collection(a.Collection)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{"check_id": report.CheckID}
	update := bson.M{"$set": report}
	res, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to archive report %s: %w", report.CheckID, err)
	}

	logger.Infof("archived report %s (matched %d, upserted %d)",
		report.CheckID, res.MatchedCount, res.UpsertedCount)
	return nil
}
