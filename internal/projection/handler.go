package projection

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fitpulse/fitpulse/internal/habit"
	"github.com/fitpulse/fitpulse/internal/telemetry/metrics"
	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"
	"github.com/fitpulse/fitpulse/pkg"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=projection_test

type habitSource interface {
	State() habit.StreakState
	Profile() *habit.UserProfile
	TotalActivityCount() int
}

const (
	oneHour               = 60 * 60
	projectionCacheExpire = oneHour * 12
)

// Handler serves the two projection variants. Results for deterministic
// inputs are cached; the chart-variant "maintain" path is jittered and
// therefore never cached.
type Handler struct {
	source habitSource
	chart  *ChartModel
	cache  *freecache.Cache
	instr  *metrics.Manager
}

func NewHandler(source habitSource, chart *ChartModel, instr *metrics.Manager) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		source: source,
		chart:  chart,
		cache:  freecache.NewCache(10 * megabyte),
		instr:  instr,
	}
}

func (handler *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.projection.simulate")
	defer span.End()

	in, ok := handler.projectionInput(w, r)
	if !ok {
		return
	}

	if cached, err := handler.cache.Get(cacheKey("simulate", in)); err == nil {
		log.Tracef("found cached simulation for weight %.1f, goal %s", in.WeightKg, in.Goal)
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	startedAt := time.Now()
	points := Simulate(in)
	if handler.instr != nil {
		handler.instr.HistProjectionDuration.Observe(time.Since(startedAt).Seconds())
	}

	handler.writePoints(w, "simulate", in, points, true)
}

func (handler *Handler) HandleChart(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.projection.chart")
	defer span.End()

	in, ok := handler.projectionInput(w, r)
	if !ok {
		return
	}

	// the maintain path is jittered per request, caching it would
	// freeze the noise
	cacheable := in.Goal != habit.GoalMaintain

	if cacheable {
		if cached, err := handler.cache.Get(cacheKey("chart", in)); err == nil {
			log.Tracef("found cached chart projection for weight %.1f, goal %s", in.WeightKg, in.Goal)
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
			return
		}
	}

	startedAt := time.Now()
	points := handler.chart.Project(in)
	if handler.instr != nil {
		handler.instr.HistProjectionDuration.Observe(time.Since(startedAt).Seconds())
	}

	handler.writePoints(w, "chart", in, points, cacheable)
}

// projectionInput decodes the request and backfills profile and habit
// fields from the engine, so the app can post an empty body to project
// the current user as-is.
func (handler *Handler) projectionInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var in Input
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			log.Errorf("projection, unmarshal json params: %s", err)
			http.Error(w, "invalid projection input", http.StatusBadRequest)
			return Input{}, false
		}
	}

	if profile := handler.source.Profile(); profile != nil {
		if in.WeightKg == 0 {
			in.WeightKg = profile.WeightKg
		}
		if in.TargetWeightKg == 0 {
			in.TargetWeightKg = profile.TargetWeightKg
		}
		if in.HeightCm == 0 {
			in.HeightCm = profile.HeightCm
		}
		if in.AgeYears == 0 {
			in.AgeYears = profile.Age
		}
		if in.Gender == "" {
			in.Gender = profile.Gender
		}
		if in.Goal == "" {
			in.Goal = profile.Goal
		}
		if in.Experience == "" {
			in.Experience = profile.Experience
		}
	}
	if in.StreakDays == 0 {
		in.StreakDays = handler.source.State().Streak
	}
	if in.TotalActivityCount == 0 {
		in.TotalActivityCount = handler.source.TotalActivityCount()
	}

	if in.WeightKg <= 0 || in.HeightCm <= 0 || in.AgeYears <= 0 {
		http.Error(w, "incomplete projection input", http.StatusBadRequest)
		return Input{}, false
	}

	return in, true
}

func (handler *Handler) writePoints(
	w http.ResponseWriter,
	variant string,
	in Input,
	points []Point,
	cacheable bool,
) {
	pointsJson, err := json.Marshal(points)
	if err != nil {
		log.Errorf("failed to marshal projection points: %s", err)
		http.Error(w, "projection failed", http.StatusInternalServerError)
		return
	}

	if cacheable {
		if err := handler.cache.Set(cacheKey(variant, in), pointsJson, projectionCacheExpire); err != nil {
			log.Errorf("failed to cache %s projection: %s", variant, err)
		}
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pointsJson, http.StatusOK)
}

func cacheKey(variant string, in Input) []byte {
	inJson, err := json.Marshal(in)
	if err != nil {
		return []byte(variant)
	}
	return append([]byte(variant+"||"), inJson...)
}
