package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	connectOnce sync.Once
	dbClient    *mongo.Client
)

func Connect() *mongo.Client {
	connectOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
		serverAPI := options.ServerAPI(options.ServerAPIVersion1)
		uri := os.Getenv("MONGODB_URI")
		opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
		client, err := mongo.Connect(opts)
		if err != nil {
			panic(err)
		}
		if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
			panic(err)
		}
		dbClient = client
	})
	return dbClient
}

func OpenCollection(collectionName string) *mongo.Collection {
	databaseName := os.Getenv("DATABASE_NAME")
	return Connect().Database(databaseName).Collection(collectionName)
}

// EnsureIndexes creates the unique indexes the registration flows rely on.
// Two concurrent registrations with the same email race here, not in the
// application: the second insert fails with a duplicate-key error.
func EnsureIndexes(ctx context.Context) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
	}

	students := OpenCollection("students")
	if _, err := students.Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("email"),
		unique("rollNumber"),
	}); err != nil {
		return err
	}

	admins := OpenCollection("admins")
	if _, err := admins.Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique("email"),
		unique("adminId"),
	}); err != nil {
		return err
	}

	return nil
}
