package habit

import (
	"fmt"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalGain     Goal = "gain"
	GoalMaintain Goal = "maintain"
)

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// UserProfile is set once at onboarding completion and mutated
// only through an explicit profile edit in the app.
type UserProfile struct {
	Name           string     `json:"name"`
	Gender         Gender     `json:"gender"`
	Age            int        `json:"age"`
	HeightCm       float64    `json:"height"`
	WeightKg       float64    `json:"weight"`
	TargetWeightKg float64    `json:"targetWeight"`
	Goal           Goal       `json:"goal"`
	Experience     Experience `json:"experience"`
	// days of week selected for workouts, 0 = Sunday
	WorkoutDays []int `json:"workoutDays"`
}

func (p *UserProfile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("invalid age: %d", p.Age)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("invalid height: %f", p.HeightCm)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("invalid weight: %f", p.WeightKg)
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	switch p.Goal {
	case GoalLose, GoalGain, GoalMaintain:
	default:
		return fmt.Errorf("invalid goal: %s", p.Goal)
	}
	for _, day := range p.WorkoutDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("invalid workout day: %d", day)
		}
	}
	return nil
}

// StreakState holds the consecutive-day completion counters.
// TodayCompleted is derived on every load or reconcile and is
// never taken from storage as authoritative.
type StreakState struct {
	Streak           int    `json:"streak"`
	BestStreak       int    `json:"bestStreak"`
	LastActivityDate string `json:"lastActivityDate,omitempty"`
	TodayCompleted   bool   `json:"todayCompleted"`
}

// ActivityEntry is one finished workout session. The log is append-only;
// entries sharing a date are allowed (the archive dedups per day, the
// snapshot log does not).
type ActivityEntry struct {
	Date            string  `json:"date"`
	Completed       bool    `json:"completed"`
	ExerciseCount   int     `json:"exerciseCount"`
	DurationMinutes float64 `json:"durationMinutes"`
	CaloriesBurned  float64 `json:"caloriesBurned"`
}

func (e *ActivityEntry) Validate() error {
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", e.Date, err)
	}
	if e.ExerciseCount < 0 {
		return fmt.Errorf("invalid exercise count: %d", e.ExerciseCount)
	}
	if e.DurationMinutes < 0 {
		return fmt.Errorf("invalid duration: %f", e.DurationMinutes)
	}
	if e.CaloriesBurned < 0 {
		return fmt.Errorf("invalid calories: %f", e.CaloriesBurned)
	}
	return nil
}

// Snapshot is the complete engine state, persisted as a single record.
type Snapshot struct {
	Onboarded        bool            `json:"onboarded"`
	Profile          *UserProfile    `json:"profile"`
	Streak           int             `json:"streak"`
	BestStreak       int             `json:"bestStreak"`
	LastActivityDate string          `json:"lastActivityDate,omitempty"`
	ActivityLog      []ActivityEntry `json:"activityLog"`
}

// DateLayout is the load-bearing date format: zero padded, local timezone,
// no time component. Streak continuity is decided by string equality
// of these keys, the only date arithmetic is computing "yesterday".
const DateLayout = "2006-01-02"

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func yesterdayKey(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// Clock is injected into the engine so tests can control "today".
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewRealClock returns a Clock backed by the system wall clock.
func NewRealClock() Clock { return realClock{} }
