package habit

import (
	"context"
	"sync"
	"time"

	"github.com/fitpulse/fitpulse/internal/telemetry/metrics"
	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type snapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}

type activityArchive interface {
	Add(ctx context.Context, entry ActivityEntry) error
}

// Engine owns the user profile, the streak state and the activity log.
// In-memory state is the source of truth; the snapshot store is a
// best-effort shadow copy, written whole on every mutation by a
// background persister. Save failures are logged and counted, never
// surfaced - the next mutation re-persists the then-current state.
type Engine struct {
	mu sync.Mutex

	store   snapshotStore
	archive activityArchive
	clock   Clock
	instr   *metrics.Manager

	onboarded   bool
	profile     *UserProfile
	state       StreakState
	activityLog []ActivityEntry

	persistCh chan struct{}
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewEngine creates an engine around the given snapshot store.
// Archive, clock and metrics manager may be nil (no archive mirror,
// system clock, no metrics).
func NewEngine(
	store snapshotStore,
	archive activityArchive,
	clock Clock,
	instr *metrics.Manager,
) *Engine {
	if clock == nil {
		clock = realClock{}
	}
	return &Engine{
		store:     store,
		archive:   archive,
		clock:     clock,
		instr:     instr,
		persistCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Init hydrates the engine from the snapshot store, reconciles the streak
// against the current date and starts the background persister.
// A missing or unreadable snapshot means fresh-install defaults.
func (e *Engine) Init(ctx context.Context) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.habit.init")
	defer span.End()

	snapshot, err := e.store.Load(ctx)
	if err != nil {
		log.Errorf("habit engine: load snapshot: %s, starting with defaults", err)
		snapshot = nil
	}

	e.mu.Lock()
	if snapshot != nil {
		e.onboarded = snapshot.Onboarded
		e.profile = snapshot.Profile
		e.state = StreakState{
			Streak:           snapshot.Streak,
			BestStreak:       snapshot.BestStreak,
			LastActivityDate: snapshot.LastActivityDate,
		}
		e.activityLog = snapshot.ActivityLog
	}
	e.reconcileLocked()
	streak := e.state.Streak
	e.mu.Unlock()

	span.SetAttributes(attribute.Int("streak", streak))
	if e.instr != nil {
		e.instr.GaugeCurrentStreak.Set(float64(streak))
	}

	e.wg.Add(1)
	go e.persister()
}

// Dispose stops the persister and does a final synchronous flush,
// so the last in-memory state survives process exit.
func (e *Engine) Dispose() {
	close(e.stopCh)
	e.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	e.persistNow(ctx)
}

// CompleteToday marks the habit as done for the current date.
// Idempotent within a calendar day - a second call is a no-op.
func (e *Engine) CompleteToday(ctx context.Context) StreakState {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.habit.completeToday")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	today := DateKey(now)

	if e.state.LastActivityDate == today {
		// already completed today, a repeated call must not double-increment
		return e.state
	}

	if e.state.LastActivityDate == yesterdayKey(now) {
		e.state.Streak++
	} else {
		// gap of 2+ days, or first completion ever - completing today
		// always yields at least a streak of 1
		e.state.Streak = 1
	}
	if e.state.Streak > e.state.BestStreak {
		e.state.BestStreak = e.state.Streak
	}
	e.state.LastActivityDate = today
	e.state.TodayCompleted = true

	span.SetAttributes(attribute.Int("streak", e.state.Streak))
	if e.instr != nil {
		e.instr.CounterCompletions.Inc()
		e.instr.GaugeCurrentStreak.Set(float64(e.state.Streak))
	}

	e.notifyPersist()
	return e.state
}

// Reconcile recomputes streak validity against the current date. Run on
// init and on app resume. Read-only against storage: a lapsed streak is
// zeroed in memory but nothing is persisted until the next mutation.
func (e *Engine) Reconcile(ctx context.Context) StreakState {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.habit.reconcile")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.reconcileLocked()

	if e.instr != nil {
		e.instr.GaugeCurrentStreak.Set(float64(e.state.Streak))
	}
	return e.state
}

func (e *Engine) reconcileLocked() {
	now := e.clock.Now()
	today := DateKey(now)

	e.state.TodayCompleted = e.state.LastActivityDate == today

	if e.state.LastActivityDate == today || e.state.LastActivityDate == yesterdayKey(now) {
		// grace window extends through yesterday, streak still alive
		return
	}
	if e.state.Streak != 0 {
		log.Debugf("habit engine: streak of %d lapsed, last activity: %s", e.state.Streak, e.state.LastActivityDate)
		e.state.Streak = 0
		if e.instr != nil {
			e.instr.CounterStreakResets.Inc()
		}
	}
	// bestStreak is never decreased by reconciliation
}

// AddActivityEntry appends a session to the activity log. Does not touch
// the streak - callers invoke CompleteToday separately when a workout
// counts towards the daily habit.
func (e *Engine) AddActivityEntry(ctx context.Context, entry ActivityEntry) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.habit.addActivityEntry")
	defer span.End()

	if err := entry.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.activityLog = append(e.activityLog, entry)
	e.notifyPersist()
	e.mu.Unlock()

	if e.instr != nil {
		e.instr.CounterActivityEntries.Inc()
	}

	// best effort mirror to the postgres archive, the snapshot log
	// stays authoritative
	if e.archive != nil {
		if err := e.archive.Add(ctx, entry); err != nil {
			log.Errorf("habit engine: archive activity entry: %s", err)
		}
	}

	return nil
}

func (e *Engine) SetProfile(ctx context.Context, profile UserProfile) error {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.habit.setProfile")
	defer span.End()

	if err := profile.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile = &profile
	e.notifyPersist()
	return nil
}

func (e *Engine) SetOnboarded(ctx context.Context, onboarded bool) {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.habit.setOnboarded")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.onboarded = onboarded
	e.notifyPersist()
}

func (e *Engine) State() StreakState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Engine) Onboarded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.onboarded
}

// Profile returns a copy of the current profile, or nil before onboarding.
func (e *Engine) Profile() *UserProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.profile == nil {
		return nil
	}
	profile := *e.profile
	return &profile
}

func (e *Engine) ActivityLog() []ActivityEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	logCopy := make([]ActivityEntry, len(e.activityLog))
	copy(logCopy, e.activityLog)
	return logCopy
}

func (e *Engine) TotalActivityCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.activityLog)
}

// Snapshot returns a deep enough copy of the whole engine state
// for serialization.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() *Snapshot {
	snapshot := &Snapshot{
		Onboarded:        e.onboarded,
		Streak:           e.state.Streak,
		BestStreak:       e.state.BestStreak,
		LastActivityDate: e.state.LastActivityDate,
		ActivityLog:      make([]ActivityEntry, len(e.activityLog)),
	}
	if e.profile != nil {
		profile := *e.profile
		snapshot.Profile = &profile
	}
	copy(snapshot.ActivityLog, e.activityLog)
	return snapshot
}

// notifyPersist pokes the persister, coalescing rapid mutation bursts
// into a single write of the then-current snapshot.
func (e *Engine) notifyPersist() {
	select {
	case e.persistCh <- struct{}{}:
	default:
	}
}

func (e *Engine) persister() {
	defer e.wg.Done()
	for {
		select {
		case <-e.stopCh:
			return
		case <-e.persistCh:
			e.persistNow(context.Background())
		}
	}
}

func (e *Engine) persistNow(ctx context.Context) {
	snapshot := e.Snapshot()
	if err := e.store.Save(ctx, snapshot); err != nil {
		// swallowed on purpose: never block or bother the user over
		// a failed shadow write, the next mutation retries
		log.Errorf("habit engine: save snapshot: %s", err)
		if e.instr != nil {
			e.instr.CounterSnapshotSaveErrors.Inc()
		}
		return
	}
	if e.instr != nil {
		e.instr.CounterSnapshotSaves.Inc()
	}
}
