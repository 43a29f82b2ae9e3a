package projection

import (
	"math"

	"github.com/fitpulse/fitpulse/internal/habit"
)

// Input is a static profile snapshot for one projection run. Pure value,
// same inputs always produce the same trajectory.
type Input struct {
	WeightKg           float64          `json:"weight"`
	TargetWeightKg     float64          `json:"targetWeight"`
	HeightCm           float64          `json:"height"`
	AgeYears           int              `json:"age"`
	Gender             habit.Gender     `json:"gender"`
	Goal               habit.Goal       `json:"goal"`
	StreakDays         int              `json:"streakDays"`
	TotalActivityCount int              `json:"totalActivityCount"`
	Experience         habit.Experience `json:"experience,omitempty"`
}

// Point is one month on the projected trajectory. Month 0 is today.
type Point struct {
	Month          int     `json:"month"`
	WeightKg       float64 `json:"weight"`
	BodyFatPercent float64 `json:"bodyFatPercent"`
	MuscleMassKg   float64 `json:"muscleMassKg"`
	Narrative      string  `json:"narrative"`
}

const projectionMonths = 6

// narratives holds the fixed milestone description per month index.
// Exactly 7 slots, month 0 through 6, in fixed order.
var narratives = [projectionMonths + 1]string{
	"Your starting point. Every journey begins with a single workout.",
	"First month done. Your body is adapting and new habits are forming.",
	"Two months in. Changes are becoming visible in the mirror.",
	"Three months strong. Your metabolism is working with you now.",
	"Four months of consistency. Friends are starting to notice.",
	"Five months committed. You have built a routine that sticks.",
	"Six months transformed. This is the new you.",
}

// BMI computes the body mass index from weight in kilograms and
// height in centimeters.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BodyFatEstimate is the anthropometric Deurenberg-style approximation
// used by the simulation screen. Clamped to [5, 45].
func BodyFatEstimate(bmi float64, ageYears int, gender habit.Gender) float64 {
	bodyFat := 1.20*bmi + 0.23*float64(ageYears) - 16.2
	if gender == habit.GenderFemale {
		bodyFat = 1.20*bmi + 0.23*float64(ageYears) - 5.4
	}
	return clamp(bodyFat, 5, 45)
}

// MuscleMassEstimate derives lean muscle mass in kilograms from total
// weight and the body fat percentage.
func MuscleMassEstimate(weightKg, bodyFatPercent float64) float64 {
	return weightKg * (1 - bodyFatPercent/100) * 0.75
}

// EffortFactor maps habit history to a progress multiplier in [0.5, 1.0].
// Sustained streaks and logged activity speed up the projected progress,
// capped at double the baseline rate.
func EffortFactor(streakDays, totalActivityCount int) float64 {
	consistency := float64(streakDays)*0.05 + float64(totalActivityCount)*0.02
	if consistency > 1.0 {
		consistency = 1.0
	}
	return 0.5 + consistency*0.5
}

// monthly per-goal deltas, scaled by the effort factor
type goalRates struct {
	weight  float64
	bodyFat float64
	muscle  float64
}

var ratesPerGoal = map[habit.Goal]goalRates{
	habit.GoalLose:     {weight: -0.8, bodyFat: -0.7, muscle: 0.15},
	habit.GoalGain:     {weight: 0.4, bodyFat: -0.3, muscle: 0.35},
	habit.GoalMaintain: {weight: -0.2, bodyFat: -0.4, muscle: 0.2},
}

// Simulate produces the 7-point monthly trajectory used by the
// simulation screen. Deterministic: identical inputs always yield
// bit-identical output. This is an approximation model, not a medical
// calculation.
func Simulate(in Input) []Point {
	bmi := BMI(in.WeightKg, in.HeightCm)
	bodyFat := BodyFatEstimate(bmi, in.AgeYears, in.Gender)
	muscle := MuscleMassEstimate(in.WeightKg, bodyFat)
	effort := EffortFactor(in.StreakDays, in.TotalActivityCount)

	rates, ok := ratesPerGoal[in.Goal]
	if !ok {
		rates = ratesPerGoal[habit.GoalMaintain]
	}

	points := make([]Point, 0, projectionMonths+1)
	for month := 0; month <= projectionMonths; month++ {
		m := float64(month)
		monthBodyFat := bodyFat + m*rates.bodyFat*effort
		if monthBodyFat < 5 {
			monthBodyFat = 5
		}
		points = append(points, Point{
			Month:          month,
			WeightKg:       round1(in.WeightKg + m*rates.weight*effort),
			BodyFatPercent: round1(monthBodyFat),
			MuscleMassKg:   round1(muscle + m*rates.muscle*effort),
			Narrative:      narratives[month],
		})
	}
	return points
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
