package database

import (
	"context"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActionStore is the append-only ledger of recorded moderation actions.
type ActionStore struct {
	db   *Database
	mods *ModeratorStore
}

func (s *ActionStore) col() *mongo.Collection {
	return s.db.GetCollection(actionsCollection)
}

// Insert appends one action row. The referenced moderator row must already
// exist; inserts referencing an unknown moderator fail with
// ErrModeratorMissing.
func (s *ActionStore) Insert(ctx context.Context, action *models.Action) error {
	exists, err := s.mods.Exists(ctx, action.GuildID, action.ModID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrModeratorMissing
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if action.ID == "" {
		action.ID = primitive.NewObjectID().Hex()
	}

	if _, err := s.col().InsertOne(ctx, action); err != nil {
		return fmt.Errorf("inserting action: %w", err)
	}
	return nil
}

// CountByKind counts one moderator's actions of one kind with timestamps in
// the inclusive range [start, end].
func (s *ActionStore) CountByKind(ctx context.Context, guildID, userID string, kind models.ActionKind, start, end int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := s.col().CountDocuments(ctx, bson.M{
		"guildId":   guildID,
		"modId":     userID,
		"type":      kind,
		"timestamp": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return 0, fmt.Errorf("counting %s actions for %s/%s: %w", kind, guildID, userID, err)
	}
	return n, nil
}

// ListRange returns one moderator's actions with timestamps in the inclusive
// range [start, end], oldest first.
func (s *ActionStore) ListRange(ctx context.Context, guildID, userID string, start, end int64) ([]*models.Action, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.col().Find(ctx, bson.M{
		"guildId":   guildID,
		"modId":     userID,
		"timestamp": bson.M{"$gte": start, "$lte": end},
	}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("listing actions for %s/%s: %w", guildID, userID, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var actions []*models.Action
	for cursor.Next(ctx) {
		var a models.Action
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("decoding action: %w", err)
		}
		actions = append(actions, &a)
	}
	return actions, cursor.Err()
}
