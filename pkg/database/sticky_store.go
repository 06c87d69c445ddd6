package database

import (
	"context"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StickyStore persists sticky messages, one per channel.
type StickyStore struct {
	db *Database
}

func (s *StickyStore) col() *mongo.Collection {
	return s.db.GetCollection(stickiesCollection)
}

// Create adds a sticky for a channel. A channel holds at most one sticky.
func (s *StickyStore) Create(ctx context.Context, sticky *models.StickyMessage) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.col().InsertOne(ctx, sticky); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrStickyExists
		}
		return fmt.Errorf("inserting sticky: %w", err)
	}
	return nil
}

// UpdateMessageID points the channel's sticky at its freshly reposted copy.
func (s *StickyStore) UpdateMessageID(ctx context.Context, channelID, messageID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col().UpdateOne(ctx, bson.M{"_id": channelID},
		bson.M{"$set": bson.M{"messageId": messageID}})
	if err != nil {
		return fmt.Errorf("updating sticky for channel %s: %w", channelID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the channel's sticky.
func (s *StickyStore) Delete(ctx context.Context, channelID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col().DeleteOne(ctx, bson.M{"_id": channelID})
	if err != nil {
		return fmt.Errorf("deleting sticky for channel %s: %w", channelID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns the channel's sticky, or ErrNotFound.
func (s *StickyStore) Get(ctx context.Context, channelID string) (*models.StickyMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var sticky models.StickyMessage
	err := s.col().FindOne(ctx, bson.M{"_id": channelID}).Decode(&sticky)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading sticky for channel %s: %w", channelID, err)
	}
	return &sticky, nil
}

// List returns every sticky in the database.
func (s *StickyStore) List(ctx context.Context) ([]*models.StickyMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing stickies: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var stickies []*models.StickyMessage
	for cursor.Next(ctx) {
		var sticky models.StickyMessage
		if err := cursor.Decode(&sticky); err != nil {
			return nil, fmt.Errorf("decoding sticky: %w", err)
		}
		stickies = append(stickies, &sticky)
	}
	return stickies, cursor.Err()
}
