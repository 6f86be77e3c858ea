package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Abaneee/social-pulse/config"
	"github.com/Abaneee/social-pulse/internal/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := cfg.Mongo.URI
		if uri == "" {
			// Fallback for local docker-compose default
			uri = "mongodb://localhost:27017"
		}
		dbName := cfg.Mongo.Database
		if dbName == "" {
			dbName = "socialpulse"
		}

		cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(dbName)

		// Ensure indexes for all collections
		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client { return client }

func Database() *mongo.Database { return db }

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// users: unique index on email
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}
		if _, err := d.Collection("users").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// datasets: (user_id, is_active) for active-dataset lookups,
	// uploaded_at desc for listing
	{
		if _, err := d.Collection("datasets").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("idx_user_active"),
		}); err != nil {
			return err
		}
		if _, err := d.Collection("datasets").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "uploaded_at", Value: -1}},
			Options: options.Index().SetName("idx_user_uploaded_at_desc"),
		}); err != nil {
			return err
		}
	}

	// preprocessing_logs: one log per dataset
	{
		if _, err := d.Collection("preprocessing_logs").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "dataset_id", Value: 1}},
			Options: options.Index().SetName("uniq_dataset").SetUnique(true),
		}); err != nil {
			return err
		}
	}

	// eda_histories: reports listed newest first per dataset
	{
		if _, err := d.Collection("eda_histories").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "dataset_id", Value: 1}, {Key: "generated_at", Value: -1}},
			Options: options.Index().SetName("idx_dataset_generated_at_desc"),
		}); err != nil {
			return err
		}
	}

	// ml_models: one model per (dataset, model_type)
	{
		if _, err := d.Collection("ml_models").Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "dataset_id", Value: 1}, {Key: "model_type", Value: 1}},
			Options: options.Index().SetName("uniq_dataset_model_type").SetUnique(true),
		}); err != nil {
			return err
		}
	}
	return nil
}
