// Package database provides the MongoDB connection and the per-entity stores
// used by the quota engine. Writes are committed before the call returns and
// reads always go to the database, so the stores are the single source of
// truth for guild, moderator, action and vacation state.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database manages the MongoDB connection.
type Database struct {
	client      *mongo.Client
	db          *mongo.Database
	isConnected bool
	mu          sync.RWMutex
	collections map[string]*mongo.Collection
}

var (
	database *Database
	dbOnce   sync.Once
)

// Init initializes the global database instance.
func Init(mongoURL, dbName string) (*Database, error) {
	var err error
	dbOnce.Do(func() {
		database = NewDatabase()
		err = database.Connect(mongoURL, dbName)
	})
	return database, err
}

// Get returns the global database instance.
func Get() *Database {
	return database
}

// NewDatabase creates a new Database instance.
func NewDatabase() *Database {
	return &Database{
		collections: make(map[string]*mongo.Collection),
	}
}

// Connect establishes a connection to MongoDB and verifies it with a ping.
func (d *Database) Connect(mongoURL, dbName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isConnected {
		return nil
	}

	logger.System("Connecting to the database...", "DB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Critical("Failed to connect to the database.", "DB")
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Critical("Failed to verify the database connection.", "DB")
		return err
	}

	d.client = client
	d.db = client.Database(dbName)
	d.isConnected = true

	logger.Success("Connected to the database.", "DB")
	return nil
}

// Disconnect closes the database connection.
func (d *Database) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.client.Disconnect(ctx); err != nil {
			return err
		}
		d.isConnected = false
		logger.Warn("Database disconnected", "DB")
	}
	return nil
}

// Connected reports whether the database connection is established.
func (d *Database) Connected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.isConnected
}

// Ping measures the database response time.
func (d *Database) Ping() (time.Duration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.isConnected || d.client == nil {
		return 0, fmt.Errorf("not connected to database")
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := d.client.Ping(ctx, readpref.Primary())
	return time.Since(start), err
}

// GetStatus returns a human-readable connection status.
func (d *Database) GetStatus() (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.client == nil {
		return "offline", false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return "offline", false
	}
	return "online", true
}

// GetCollection returns a MongoDB collection, caching the handle.
func (d *Database) GetCollection(name string) *mongo.Collection {
	d.mu.RLock()
	if col, exists := d.collections[name]; exists {
		d.mu.RUnlock()
		return col
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	col := d.db.Collection(name)
	d.collections[name] = col
	return col
}

// Client returns the underlying MongoDB client.
func (d *Database) Client() *mongo.Client {
	return d.client
}

// DB returns the underlying MongoDB database.
func (d *Database) DB() *mongo.Database {
	return d.db
}

// EnsureIndexes creates the indexes the stores rely on: composite identity
// for moderators, the uniqueness rule for vacation weeks and the range-scan
// index for the action ledger.
func (d *Database) EnsureIndexes(ctx context.Context) error {
	mods := d.GetCollection(moderatorsCollection)
	if mods == nil {
		return fmt.Errorf("database not connected")
	}

	_, err := mods.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "guildId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating moderators index: %w", err)
	}

	actions := d.GetCollection(actionsCollection)
	_, err = actions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "guildId", Value: 1},
			{Key: "modId", Value: 1},
			{Key: "type", Value: 1},
			{Key: "timestamp", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("creating actions index: %w", err)
	}

	vacations := d.GetCollection(vacationsCollection)
	_, err = vacations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "guildId", Value: 1},
			{Key: "userId", Value: 1},
			{Key: "week", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating vacation_weeks index: %w", err)
	}

	return nil
}
