package database

import (
	"context"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ModeratorStore persists moderator rows keyed by (guildId, userId).
type ModeratorStore struct {
	db *Database
}

func (s *ModeratorStore) col() *mongo.Collection {
	return s.db.GetCollection(moderatorsCollection)
}

func modKey(guildID, userID string) bson.M {
	return bson.M{"guildId": guildID, "userId": userID}
}

// Get returns the moderator row for (guildID, userID), or ErrNotFound.
func (s *ModeratorStore) Get(ctx context.Context, guildID, userID string) (*models.Moderator, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var mod models.Moderator
	err := s.col().FindOne(ctx, modKey(guildID, userID)).Decode(&mod)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading moderator %s/%s: %w", guildID, userID, err)
	}
	return &mod, nil
}

// Exists reports whether a moderator row exists at all, active or not.
func (s *ModeratorStore) Exists(ctx context.Context, guildID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	n, err := s.col().CountDocuments(ctx, modKey(guildID, userID))
	if err != nil {
		return false, fmt.Errorf("checking moderator %s/%s: %w", guildID, userID, err)
	}
	return n > 0, nil
}

// Register creates a moderator row, or reactivates a previously deregistered
// one in place so the row identity survives the register/deregister cycle.
// Registering a currently active moderator fails with ErrAlreadyRegistered.
func (s *ModeratorStore) Register(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error {
	existing, err := s.Get(ctx, guildID, userID)
	if err != nil && err != ErrNotFound {
		return err
	}

	if existing != nil {
		if existing.Active {
			return ErrAlreadyRegistered
		}

		ctx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()

		_, err := s.col().UpdateOne(ctx, modKey(guildID, userID), bson.M{"$set": bson.M{
			"sendQuota":    quotas.Sent,
			"editQuota":    quotas.Edited,
			"deleteQuota":  quotas.Deleted,
			"vacationDays": 0,
			"active":       true,
		}})
		if err != nil {
			return fmt.Errorf("reactivating moderator %s/%s: %w", guildID, userID, err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	mod := models.Moderator{
		GuildID: guildID,
		UserID:  userID,
		Active:  true,
	}
	mod.SetQuotas(quotas)

	if _, err := s.col().InsertOne(ctx, mod); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyRegistered
		}
		return fmt.Errorf("inserting moderator %s/%s: %w", guildID, userID, err)
	}
	return nil
}

// Deregister soft-deletes a moderator: the active flag flips off, quotas and
// the streak are zeroed, and the row stays behind for history.
func (s *ModeratorStore) Deregister(ctx context.Context, guildID, userID string) error {
	existing, err := s.Get(ctx, guildID, userID)
	if err == ErrNotFound {
		return ErrNotRegistered
	}
	if err != nil {
		return err
	}
	if !existing.Active {
		return ErrNotRegistered
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err = s.col().UpdateOne(ctx, modKey(guildID, userID), bson.M{"$set": bson.M{
		"active":                    false,
		"consecutiveCompletedWeeks": 0,
		"sendQuota":                 0,
		"editQuota":                 0,
		"deleteQuota":               0,
	}})
	if err != nil {
		return fmt.Errorf("deregistering moderator %s/%s: %w", guildID, userID, err)
	}
	return nil
}

// SetQuotas updates the weekly quotas for one moderator.
func (s *ModeratorStore) SetQuotas(ctx context.Context, guildID, userID string, quotas models.QuotaSet) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col().UpdateOne(ctx, modKey(guildID, userID), bson.M{"$set": bson.M{
		"sendQuota":   quotas.Sent,
		"editQuota":   quotas.Edited,
		"deleteQuota": quotas.Deleted,
	}})
	if err != nil {
		return fmt.Errorf("updating quotas for %s/%s: %w", guildID, userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAllQuotas updates the quotas of every active moderator in a guild.
// Deregistered rows are left alone.
func (s *ModeratorStore) SetAllQuotas(ctx context.Context, guildID string, quotas models.QuotaSet) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.col().UpdateMany(ctx,
		bson.M{"guildId": guildID, "active": true},
		bson.M{"$set": bson.M{
			"sendQuota":   quotas.Sent,
			"editQuota":   quotas.Edited,
			"deleteQuota": quotas.Deleted,
		}})
	if err != nil {
		return fmt.Errorf("updating quotas for guild %s: %w", guildID, err)
	}
	return nil
}

// IncrementStreak bumps the consecutive-completed-weeks counter by one.
func (s *ModeratorStore) IncrementStreak(ctx context.Context, guildID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col().UpdateOne(ctx, modKey(guildID, userID),
		bson.M{"$inc": bson.M{"consecutiveCompletedWeeks": 1}})
	if err != nil {
		return fmt.Errorf("incrementing streak for %s/%s: %w", guildID, userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetStreak sets the consecutive-completed-weeks counter back to zero.
func (s *ModeratorStore) ResetStreak(ctx context.Context, guildID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col().UpdateOne(ctx, modKey(guildID, userID),
		bson.M{"$set": bson.M{"consecutiveCompletedWeeks": 0}})
	if err != nil {
		return fmt.Errorf("resetting streak for %s/%s: %w", guildID, userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddVacationDays adjusts the lifetime vacation-days counter, clamping at
// zero: debiting a week that was credited before a deregister cycle must not
// drive the counter negative.
func (s *ModeratorStore) AddVacationDays(ctx context.Context, guildID, userID string, days int) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.A{bson.M{"$set": bson.M{
		"vacationDays": bson.M{"$max": bson.A{0, bson.M{"$add": bson.A{"$vacationDays", days}}}},
	}}}
	res, err := s.col().UpdateOne(ctx, modKey(guildID, userID), update)
	if err != nil {
		return fmt.Errorf("adding vacation days for %s/%s: %w", guildID, userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActive returns the active moderators of a guild.
func (s *ModeratorStore) ListActive(ctx context.Context, guildID string) ([]*models.Moderator, error) {
	return s.list(ctx, bson.M{"guildId": guildID, "active": true})
}

// ListInactive returns the deregistered moderators of a guild.
func (s *ModeratorStore) ListInactive(ctx context.Context, guildID string) ([]*models.Moderator, error) {
	return s.list(ctx, bson.M{"guildId": guildID, "active": false})
}

func (s *ModeratorStore) list(ctx context.Context, filter bson.M) ([]*models.Moderator, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.col().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing moderators: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var mods []*models.Moderator
	for cursor.Next(ctx) {
		var mod models.Moderator
		if err := cursor.Decode(&mod); err != nil {
			return nil, fmt.Errorf("decoding moderator: %w", err)
		}
		mods = append(mods, &mod)
	}
	return mods, cursor.Err()
}
