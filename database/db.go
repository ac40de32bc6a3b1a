package database

import (
	"context"
	"time"

	"wayfarer/config"
	"wayfarer/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects to Mongo and exits the process when the primary is not
// reachable within connectTimeout.
func InitDB() {
	logger := utils.GetLogger().Named("mongo")
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetAppName("wayfarer").
		SetServerSelectionTimeout(connectTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	MongoClient = client
	logger.Info("connected", zap.String("database", config.AppConfig.DatabaseName))
}

// Database returns the application database handle.
func Database() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Disconnect closes the global client if one was opened.
func Disconnect(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
