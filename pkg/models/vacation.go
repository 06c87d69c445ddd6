package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// VacationWeek marks one ISO week a moderator is excused from quota checks
type VacationWeek struct {
	GuildID string `bson:"guildId" json:"guildId"`
	UserID  string `bson:"userId" json:"userId"`
	Week    string `bson:"week" json:"week"`
}

var weekPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ValidWeek reports whether week is a well-formed "YYYY-WW" ISO week label.
func ValidWeek(week string) bool {
	m := weekPattern.FindStringSubmatch(week)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	return n >= 1 && n <= 53
}

// WeekOf returns the "YYYY-WW" ISO week label containing t.
func WeekOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-%02d", year, week)
}

// MondayOfWeek returns 00:00 UTC on the Monday of the given ISO week.
// January 4th always falls in week 1, which anchors the calculation.
func MondayOfWeek(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	return monday.AddDate(0, 0, (week-1)*7)
}
