package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fitpulse/fitpulse/internal/habit"
	"github.com/fitpulse/fitpulse/internal/projection"

	log "github.com/sirupsen/logrus"
)

// small CLI to eyeball projection trajectories without running the service
func main() {
	weight := flag.Float64("weight", 0, "current weight in kg")
	targetWeight := flag.Float64("target", 0, "target weight in kg")
	height := flag.Float64("height", 0, "height in cm")
	age := flag.Int("age", 0, "age in years")
	gender := flag.String("gender", "male", "male | female")
	goal := flag.String("goal", "maintain", "lose | gain | maintain")
	streak := flag.Int("streak", 0, "current streak in days")
	activityCount := flag.Int("activities", 0, "total logged activity count")
	variant := flag.String("variant", "simulate", "simulate | chart")
	flag.Parse()

	if *weight <= 0 || *height <= 0 || *age <= 0 {
		fmt.Println("weight, height and age are required")
		flag.Usage()
		os.Exit(1)
	}

	in := projection.Input{
		WeightKg:           *weight,
		TargetWeightKg:     *targetWeight,
		HeightCm:           *height,
		AgeYears:           *age,
		Gender:             habit.Gender(*gender),
		Goal:               habit.Goal(*goal),
		StreakDays:         *streak,
		TotalActivityCount: *activityCount,
	}

	var points []projection.Point
	switch *variant {
	case "simulate":
		points = projection.Simulate(in)
	case "chart":
		points = projection.NewChartModel().Project(in)
	default:
		log.Fatalf("unknown variant: %s", *variant)
	}

	out, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		log.Fatalf("marshal points: %s", err)
	}
	fmt.Println(string(out))
}
