package utils

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoClient is the shared MongoDB client, set once at startup.
var MongoClient *mongo.Client

// MongoDatabase returns the configured application database.
func MongoDatabase() *mongo.Database {
	return MongoClient.Database(GetEnvAsString("MONGODB_DB_NAME", "habitflow"))
}
