package quota

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/BTStudios/ModTrackGo/pkg/models"
)

// Notifier receives the results of a completed guild quota check. The
// scheduler fans results out to every registered notifier (Discord summary
// embed, MQTT publisher, ...).
type Notifier interface {
	QuotaCheckCompleted(settings *models.GuildSettings, results []EvaluationResult)
}

// Scheduler drives the recurring quota checks. It polls on a short fixed
// interval and fires a guild's check whenever that guild's own configured
// interval has elapsed since its last check.
type Scheduler struct {
	svc       *Service
	poll      time.Duration
	notifiers []Notifier
	now       func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewScheduler creates a scheduler polling at the given interval.
func NewScheduler(svc *Service, poll time.Duration, notifiers ...Notifier) *Scheduler {
	if poll <= 0 {
		poll = time.Minute
	}
	return &Scheduler{
		svc:       svc,
		poll:      poll,
		notifiers: notifiers,
		now:       time.Now,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the polling loop in its own goroutine.
func (sch *Scheduler) Start() {
	logger.System(fmt.Sprintf("Quota scheduler started (poll every %s)", sch.poll), "Scheduler")

	go func() {
		defer close(sch.done)

		ticker := time.NewTicker(sch.poll)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sch.Tick(context.Background())
			case <-sch.stop:
				return
			}
		}
	}()
}

// Stop terminates the polling loop and waits for it to exit.
func (sch *Scheduler) Stop() {
	sch.stopOnce.Do(func() { close(sch.stop) })
	<-sch.done
	logger.System("Quota scheduler stopped", "Scheduler")
}

// Tick runs one pass over all configured guilds. Guilds are independent: a
// failure in one guild's check is logged and the pass moves on to the next.
func (sch *Scheduler) Tick(ctx context.Context) {
	guilds, err := sch.svc.store.AllGuilds(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to list guilds for quota pass: %v", err), "Scheduler")
		return
	}

	now := sch.now().Unix()
	for _, settings := range guilds {
		if settings.CheckInterval <= 0 {
			// Setup never finished for this guild.
			continue
		}
		if now-settings.LastCheck < settings.CheckInterval {
			continue
		}

		results, err := sch.svc.RunGuildCheck(ctx, settings, now)
		if err != nil {
			logger.Error(fmt.Sprintf("Quota check failed for guild %s: %v", settings.GuildID, err), "Scheduler")
			continue
		}

		for _, n := range sch.notifiers {
			n.QuotaCheckCompleted(settings, results)
		}
	}
}

// RunGuildCheck evaluates every active moderator of one guild over the
// window since the guild's last check, then advances the last-check mark to
// now. One moderator's failure does not stop the rest of the guild.
func (s *Service) RunGuildCheck(ctx context.Context, settings *models.GuildSettings, now int64) ([]EvaluationResult, error) {
	mods, err := s.store.ActiveModerators(ctx, settings.GuildID)
	if err != nil {
		return nil, err
	}

	results := make([]EvaluationResult, 0, len(mods))
	for _, mod := range mods {
		result, err := s.EvaluateModerator(ctx, mod, settings.LastCheck, now)
		if err != nil {
			logger.Error(fmt.Sprintf("Evaluation failed for moderator %s/%s: %v",
				mod.GuildID, mod.UserID, err), "Scheduler")
			continue
		}
		results = append(results, result)
	}

	if err := s.store.SetGuildLastCheck(ctx, settings.GuildID, now); err != nil {
		return results, err
	}
	settings.LastCheck = now

	logger.Info(fmt.Sprintf("Quota check done for guild %s: %d moderators evaluated",
		settings.GuildID, len(results)), "Scheduler")
	return results, nil
}
