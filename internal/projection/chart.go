package projection

import (
	"math/rand"

	"github.com/fitpulse/fitpulse/internal/habit"
)

// ChartModel is the second, independent projection variant, consumed by
// the chart visualization. It estimates body fat from a different constant
// pair and applies percentage-based decay over the six month window
// instead of additive points. The two variants are deliberately kept as
// distinct named computations and are not expected to agree bit-for-bit.
//
// The "maintain" goal perturbs weight with a small random jitter so the
// chart line does not render perfectly flat. That one branch is a named
// exception to determinism; Jitter is injectable so tests can pin it.
type ChartModel struct {
	// Jitter returns a weight perturbation in kilograms for the
	// maintain path. Defaults to a uniform value in [-0.3, 0.3).
	Jitter func() float64
}

func NewChartModel() *ChartModel {
	return &ChartModel{
		Jitter: func() float64 { return (rand.Float64() - 0.5) * 0.6 },
	}
}

// ChartBodyFatEstimate computes the chart-variant body fat estimate,
// clamped to [5, 40] for males and [10, 50] for females.
func ChartBodyFatEstimate(bmi float64, gender habit.Gender) float64 {
	if gender == habit.GenderFemale {
		return clamp(bmi*1.2-1.8, 10, 50)
	}
	return clamp(bmi*1.2-10.8, 5, 40)
}

// body fat decay share applied over the full six months, per goal
var chartDecayPerGoal = map[habit.Goal]float64{
	habit.GoalLose:     0.25,
	habit.GoalGain:     0.10,
	habit.GoalMaintain: 0.05,
}

// Project computes the chart trajectory: weight interpolates linearly
// towards the target over six months, body fat decays by a percentage of
// its current value scaled with progress = month/6.
func (c *ChartModel) Project(in Input) []Point {
	bmi := BMI(in.WeightKg, in.HeightCm)
	bodyFat := ChartBodyFatEstimate(bmi, in.Gender)
	decay := chartDecayPerGoal[in.Goal]

	points := make([]Point, 0, projectionMonths+1)
	for month := 0; month <= projectionMonths; month++ {
		progress := float64(month) / projectionMonths

		weight := in.WeightKg + (in.TargetWeightKg-in.WeightKg)*progress
		if in.Goal == habit.GoalMaintain {
			weight = in.WeightKg
			if month > 0 && c.Jitter != nil {
				weight += c.Jitter()
			}
		}

		monthBodyFat := bodyFat - bodyFat*decay*progress
		muscle := MuscleMassEstimate(weight, monthBodyFat)

		points = append(points, Point{
			Month:          month,
			WeightKg:       round1(weight),
			BodyFatPercent: round1(monthBodyFat),
			MuscleMassKg:   round1(muscle),
			Narrative:      narratives[month],
		})
	}
	return points
}
