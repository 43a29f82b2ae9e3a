package archive

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fitpulse/fitpulse/internal/habit"
	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"
	"github.com/fitpulse/fitpulse/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=handler_mocks_test.go -package=archive_test

type activityRepo interface {
	List(ctx context.Context, params ListParams) ([]habit.ActivityEntry, int, error)
}

type ListResponse struct {
	Entries []habit.ActivityEntry `json:"entries"`
	Total   int                   `json:"total"`
}

type Handler struct {
	repo activityRepo
}

func NewHandler(repo activityRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.habitarchive.list")
	defer span.End()

	vars := mux.Vars(r)

	pageStr := vars["page"]
	if pageStr == "" {
		http.Error(w, "error, page empty", http.StatusBadRequest)
		return
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		http.Error(w, "error, page NaN", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	if sizeStr == "" {
		http.Error(w, "error, size empty", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		http.Error(w, "error, size NaN", http.StatusBadRequest)
		return
	}
	if page < 1 || size < 1 {
		http.Error(w, "error, page and size must be positive", http.StatusBadRequest)
		return
	}

	params := ListParams{
		Page: page,
		Size: size,
	}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(habit.DateLayout, fromStr)
		if err != nil {
			http.Error(w, "error, invalid from date", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(habit.DateLayout, toStr)
		if err != nil {
			http.Error(w, "error, invalid to date", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	entries, total, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("failed to list activity entries: %s", err)
		http.Error(w, "error, failed to list activity entries", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []habit.ActivityEntry{}
	}

	respJson, err := json.Marshal(ListResponse{
		Entries: entries,
		Total:   total,
	})
	if err != nil {
		log.Errorf("failed to marshal activity entries: %s", err)
		http.Error(w, "error, failed to list activity entries", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
