package database

import (
	"errors"
	"time"
)

const (
	configCollection     = "config"
	moderatorsCollection = "moderators"
	actionsCollection    = "actions"
	vacationsCollection  = "vacation_weeks"
	stickiesCollection   = "stickies"
)

// opTimeout bounds every single store call so a stalled query cannot block a
// scheduler pass indefinitely.
const opTimeout = 5 * time.Second

// Sentinel errors returned by the stores. ErrNotFound signals an absent row;
// it is never used to paper over a storage failure, which comes back as its
// own error.
var (
	ErrNotFound          = errors.New("database: not found")
	ErrAlreadyRegistered = errors.New("database: moderator is already registered")
	ErrNotRegistered     = errors.New("database: moderator is not registered")
	ErrModeratorMissing  = errors.New("database: referenced moderator does not exist")
	ErrVacationExists    = errors.New("database: vacation week already marked")
	ErrGuildExists       = errors.New("database: guild is already configured")
	ErrStickyExists      = errors.New("database: channel already has a sticky")
)

// Stores bundles the per-entity stores over one database handle.
type Stores struct {
	Guilds     *GuildStore
	Moderators *ModeratorStore
	Actions    *ActionStore
	Vacations  *VacationStore
	Stickies   *StickyStore
}

// NewStores creates all entity stores on top of db.
func NewStores(db *Database) *Stores {
	mods := &ModeratorStore{db: db}
	return &Stores{
		Guilds:     &GuildStore{db: db},
		Moderators: mods,
		Actions:    &ActionStore{db: db, mods: mods},
		Vacations:  &VacationStore{db: db, mods: mods},
		Stickies:   &StickyStore{db: db},
	}
}
