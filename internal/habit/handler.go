package habit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"
	"github.com/fitpulse/fitpulse/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=habit_test

type habitEngine interface {
	CompleteToday(ctx context.Context) StreakState
	Reconcile(ctx context.Context) StreakState
	AddActivityEntry(ctx context.Context, entry ActivityEntry) error
	SetProfile(ctx context.Context, profile UserProfile) error
	SetOnboarded(ctx context.Context, onboarded bool)
	State() StreakState
	Profile() *UserProfile
	Onboarded() bool
	ActivityLog() []ActivityEntry
}

type StateResponse struct {
	StreakState
	Onboarded bool         `json:"onboarded"`
	Profile   *UserProfile `json:"profile,omitempty"`
}

type SetOnboardedRequest struct {
	Onboarded bool `json:"onboarded"`
}

type Handler struct {
	engine habitEngine
}

func NewHandler(engine habitEngine) *Handler {
	return &Handler{
		engine: engine,
	}
}

func (handler *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.habit.state")
	defer span.End()

	resp := StateResponse{
		StreakState: handler.engine.State(),
		Onboarded:   handler.engine.Onboarded(),
		Profile:     handler.engine.Profile(),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal habit state: %s", err)
		http.Error(w, "failed to get habit state", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habit.complete")
	defer span.End()

	state := handler.engine.CompleteToday(ctx)

	log.Debugf("habit completed for today, streak: %d", state.Streak)

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal streak state: %s", err)
		http.Error(w, "failed to complete today", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func (handler *Handler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habit.reconcile")
	defer span.End()

	state := handler.engine.Reconcile(ctx)

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal streak state: %s", err)
		http.Error(w, "failed to reconcile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func (handler *Handler) HandleAddActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habit.addActivity")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry ActivityEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("add activity, unmarshal json params: %s", err)
		http.Error(w, "add activity failed", http.StatusBadRequest)
		return
	}

	if err := handler.engine.AddActivityEntry(ctx, entry); err != nil {
		log.Errorf("failed to add activity entry [%s]: %s", entry.Date, err)
		http.Error(w, "error, invalid activity entry", http.StatusBadRequest)
		return
	}

	log.Debugf("new activity entry added: [%s]", entry.Date)

	pkg.WriteTextResponseOK(w, "added")
}

func (handler *Handler) HandleGetActivityLog(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.habit.activityLog")
	defer span.End()

	activityLog := handler.engine.ActivityLog()
	if activityLog == nil {
		activityLog = []ActivityEntry{}
	}

	logJson, err := json.Marshal(activityLog)
	if err != nil {
		log.Errorf("failed to marshal activity log: %s", err)
		http.Error(w, "failed to get activity log", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusOK)
}

func (handler *Handler) HandleSetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habit.setProfile")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var profile UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Errorf("set profile, unmarshal json params: %s", err)
		http.Error(w, "set profile failed", http.StatusBadRequest)
		return
	}

	if err := handler.engine.SetProfile(ctx, profile); err != nil {
		log.Errorf("failed to set profile: %s", err)
		http.Error(w, "error, invalid profile", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleSetOnboarded(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habit.setOnboarded")
	defer span.End()

	var req SetOnboardedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set onboarded, unmarshal json params: %s", err)
		http.Error(w, "set onboarded failed", http.StatusBadRequest)
		return
	}

	handler.engine.SetOnboarded(ctx, req.Onboarded)

	pkg.WriteTextResponseOK(w, "updated")
}
