package database

import (
	"context"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// VacationStore persists the weeks a moderator is exempt from evaluation.
type VacationStore struct {
	db   *Database
	mods *ModeratorStore
}

func (s *VacationStore) col() *mongo.Collection {
	return s.db.GetCollection(vacationsCollection)
}

// Add marks a week as vacation for a moderator. The moderator row must
// exist, and a week can only be marked once per moderator.
func (s *VacationStore) Add(ctx context.Context, guildID, userID, week string) error {
	if !models.ValidWeek(week) {
		return fmt.Errorf("malformed week identifier %q (want YYYY-WW)", week)
	}

	exists, err := s.mods.Exists(ctx, guildID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrModeratorMissing
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	vw := models.VacationWeek{GuildID: guildID, UserID: userID, Week: week}
	if _, err := s.col().InsertOne(ctx, vw); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrVacationExists
		}
		return fmt.Errorf("inserting vacation week: %w", err)
	}
	return nil
}

// Remove unmarks a vacation week. Removing a week that was never marked
// fails with ErrNotFound.
func (s *VacationStore) Remove(ctx context.Context, guildID, userID, week string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col().DeleteOne(ctx, bson.M{"guildId": guildID, "userId": userID, "week": week})
	if err != nil {
		return fmt.Errorf("removing vacation week: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IsVacation reports whether the given week is marked as vacation.
func (s *VacationStore) IsVacation(ctx context.Context, guildID, userID, week string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := s.col().CountDocuments(ctx, bson.M{"guildId": guildID, "userId": userID, "week": week})
	if err != nil {
		return false, fmt.Errorf("checking vacation week: %w", err)
	}
	return n > 0, nil
}

// ListForModerator returns all vacation weeks of one moderator.
func (s *VacationStore) ListForModerator(ctx context.Context, guildID, userID string) ([]*models.VacationWeek, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.col().Find(ctx, bson.M{"guildId": guildID, "userId": userID})
	if err != nil {
		return nil, fmt.Errorf("listing vacation weeks: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var weeks []*models.VacationWeek
	for cursor.Next(ctx) {
		var w models.VacationWeek
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("decoding vacation week: %w", err)
		}
		weeks = append(weeks, &w)
	}
	return weeks, cursor.Err()
}

// Count returns the total number of vacation weeks a moderator has taken.
func (s *VacationStore) Count(ctx context.Context, guildID, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := s.col().CountDocuments(ctx, bson.M{"guildId": guildID, "userId": userID})
	if err != nil {
		return 0, fmt.Errorf("counting vacation weeks: %w", err)
	}
	return n, nil
}
