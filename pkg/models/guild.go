package models

// GuildSettings holds the per-guild tracking configuration
type GuildSettings struct {
	GuildID              string `bson:"_id" json:"guildId"`
	ModCategoryID        string `bson:"modCategoryId" json:"modCategoryId"`
	LastCheck            int64  `bson:"lastModCheck" json:"lastModCheck"`
	CheckInterval        int64  `bson:"timeBetweenChecks" json:"timeBetweenChecks"`
	DefaultQuotas        string `bson:"defaultQuotas" json:"defaultQuotas"`
	OutputChannelID      string `bson:"outputChannelId" json:"outputChannelId"`
	MemberCountChannelID string `bson:"memberCountChannelId" json:"memberCountChannelId"`
}

// DefaultQuotaSet parses the guild's default quota string. An empty
// string means no defaults were configured and parses as all zeros.
func (g *GuildSettings) DefaultQuotaSet() (QuotaSet, error) {
	if g.DefaultQuotas == "" {
		return QuotaSet{}, nil
	}
	return ParseQuotaSet(g.DefaultQuotas)
}
