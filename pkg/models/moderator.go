package models

import "fmt"

// QuotaSet groups the weekly minimums for each action kind
type QuotaSet struct {
	Sent    int `json:"sent"`
	Edited  int `json:"edited"`
	Deleted int `json:"deleted"`
}

// Serialize renders the quota set in the "sent,edited,deleted" form
// stored on guild settings.
func (q QuotaSet) Serialize() string {
	return fmt.Sprintf("%d,%d,%d", q.Sent, q.Edited, q.Deleted)
}

func (q QuotaSet) String() string {
	return q.Serialize()
}

// ParseQuotaSet parses a "sent,edited,deleted" string into a QuotaSet.
func ParseQuotaSet(s string) (QuotaSet, error) {
	var q QuotaSet
	n, err := fmt.Sscanf(s, "%d,%d,%d", &q.Sent, &q.Edited, &q.Deleted)
	if err != nil || n != 3 {
		return QuotaSet{}, fmt.Errorf("quotas must be three comma-separated numbers, got %q", s)
	}
	if q.Sent < 0 || q.Edited < 0 || q.Deleted < 0 {
		return QuotaSet{}, fmt.Errorf("quotas cannot be negative, got %q", s)
	}
	return q, nil
}

// Moderator represents a tracked moderator within one guild. The same
// user tracked in two guilds is two independent documents.
type Moderator struct {
	GuildID          string `bson:"guildId" json:"guildId"`
	UserID           string `bson:"userId" json:"userId"`
	SendQuota        int    `bson:"sendQuota" json:"sendQuota"`
	EditQuota        int    `bson:"editQuota" json:"editQuota"`
	DeleteQuota      int    `bson:"deleteQuota" json:"deleteQuota"`
	ConsecutiveWeeks int    `bson:"consecutiveCompletedWeeks" json:"consecutiveCompletedWeeks"`
	VacationDays     int    `bson:"vacationDays" json:"vacationDays"`
	Active           bool   `bson:"active" json:"active"`
}

// Quotas returns the moderator's weekly quotas as a QuotaSet.
func (m *Moderator) Quotas() QuotaSet {
	return QuotaSet{Sent: m.SendQuota, Edited: m.EditQuota, Deleted: m.DeleteQuota}
}

// SetQuotas overwrites the moderator's weekly quotas.
func (m *Moderator) SetQuotas(q QuotaSet) {
	m.SendQuota = q.Sent
	m.EditQuota = q.Edited
	m.DeleteQuota = q.Deleted
}
