package models

// StickyMessage keeps an embed pinned to the bottom of a channel by
// reposting it after every new message. One sticky per channel.
type StickyMessage struct {
	ChannelID   string `bson:"_id" json:"channelId"`
	GuildID     string `bson:"guildId" json:"guildId"`
	MessageID   string `bson:"messageId" json:"messageId"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}
