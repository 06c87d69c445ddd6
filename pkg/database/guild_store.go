package database

import (
	"context"
	"fmt"

	"github.com/BTStudios/ModTrackGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GuildStore persists per-guild configuration rows.
type GuildStore struct {
	db *Database
}

func (s *GuildStore) col() *mongo.Collection {
	return s.db.GetCollection(configCollection)
}

// Add creates the settings row for a guild. Setup runs once per guild;
// adding an already-configured guild fails with ErrGuildExists.
func (s *GuildStore) Add(ctx context.Context, settings *models.GuildSettings) error {
	if settings.CheckInterval <= 0 {
		return fmt.Errorf("check interval must be positive, got %d", settings.CheckInterval)
	}
	if _, err := settings.DefaultQuotaSet(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.col().InsertOne(ctx, settings); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrGuildExists
		}
		return fmt.Errorf("inserting guild settings: %w", err)
	}
	return nil
}

// Get returns a guild's settings row, or ErrNotFound for a guild that never
// completed setup.
func (s *GuildStore) Get(ctx context.Context, guildID string) (*models.GuildSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var settings models.GuildSettings
	err := s.col().FindOne(ctx, bson.M{"_id": guildID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading guild settings %s: %w", guildID, err)
	}
	return &settings, nil
}

// List returns every configured guild.
func (s *GuildStore) List(ctx context.Context) ([]*models.GuildSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing guild settings: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var guilds []*models.GuildSettings
	for cursor.Next(ctx) {
		var g models.GuildSettings
		if err := cursor.Decode(&g); err != nil {
			return nil, fmt.Errorf("decoding guild settings: %w", err)
		}
		guilds = append(guilds, &g)
	}
	return guilds, cursor.Err()
}

func (s *GuildStore) setField(ctx context.Context, guildID, field string, value interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col().UpdateOne(ctx, bson.M{"_id": guildID}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("updating %s for guild %s: %w", field, guildID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetModCategory updates the exempt moderator category of a guild.
func (s *GuildStore) SetModCategory(ctx context.Context, guildID, categoryID string) error {
	return s.setField(ctx, guildID, "modCategoryId", categoryID)
}

// SetLastCheck advances the last-quota-check timestamp of a guild.
func (s *GuildStore) SetLastCheck(ctx context.Context, guildID string, timestamp int64) error {
	return s.setField(ctx, guildID, "lastModCheck", timestamp)
}

// SetCheckInterval updates the seconds between quota checks.
func (s *GuildStore) SetCheckInterval(ctx context.Context, guildID string, seconds int64) error {
	if seconds <= 0 {
		return fmt.Errorf("check interval must be positive, got %d", seconds)
	}
	return s.setField(ctx, guildID, "timeBetweenChecks", seconds)
}

// SetDefaultQuotas updates the default quota triple handed to newly
// registered moderators. Existing moderators keep their quotas.
func (s *GuildStore) SetDefaultQuotas(ctx context.Context, guildID string, quotas models.QuotaSet) error {
	return s.setField(ctx, guildID, "defaultQuotas", quotas.Serialize())
}

// SetOutputChannel updates the channel quota-check summaries are posted to.
func (s *GuildStore) SetOutputChannel(ctx context.Context, guildID, channelID string) error {
	return s.setField(ctx, guildID, "outputChannelId", channelID)
}

// SetMemberCountChannel updates the voice channel renamed with the member count.
func (s *GuildStore) SetMemberCountChannel(ctx context.Context, guildID, channelID string) error {
	return s.setField(ctx, guildID, "memberCountChannelId", channelID)
}
