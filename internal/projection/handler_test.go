package projection_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fitpulse/fitpulse/internal/habit"
	"github.com/fitpulse/fitpulse/internal/projection"
	"github.com/fitpulse/fitpulse/internal/telemetry/metrics"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loseInputJson = `{
	"weight": 75, "targetWeight": 70, "height": 175, "age": 25,
	"gender": "male", "goal": "lose", "streakDays": 10, "totalActivityCount": 20
}`

func newProjectionHandler(source *MockhabitSource) *projection.Handler {
	return projection.NewHandler(source, projection.NewChartModel(), metrics.NewTestManager())
}

func TestHandler_HandleSimulate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sourceMock := NewMockhabitSource(ctrl)
	sourceMock.EXPECT().Profile().Return(nil)

	handler := newProjectionHandler(sourceMock)
	req := httptest.NewRequest("POST", "/projection/simulate", strings.NewReader(loseInputJson))
	rr := httptest.NewRecorder()

	handler.HandleSimulate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var points []projection.Point
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &points))
	require.Len(t, points, 7)
	assert.InDelta(t, 70.4, points[6].WeightKg, 0.001)
	assert.NotEmpty(t, points[6].Narrative)
}

func TestHandler_HandleSimulate_BackfillFromEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sourceMock := NewMockhabitSource(ctrl)
	sourceMock.EXPECT().Profile().Return(&habit.UserProfile{
		Gender:         habit.GenderMale,
		Age:            25,
		HeightCm:       175,
		WeightKg:       75,
		TargetWeightKg: 70,
		Goal:           habit.GoalLose,
	})
	sourceMock.EXPECT().State().Return(habit.StreakState{Streak: 10})
	sourceMock.EXPECT().TotalActivityCount().Return(20)

	handler := newProjectionHandler(sourceMock)
	// no request body: project the current user as-is
	req := httptest.NewRequest("POST", "/projection/simulate", nil)
	rr := httptest.NewRecorder()

	handler.HandleSimulate(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var points []projection.Point
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &points))
	require.Len(t, points, 7)
	assert.InDelta(t, 70.4, points[6].WeightKg, 0.001)
}

func TestHandler_HandleSimulate_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sourceMock := NewMockhabitSource(ctrl)
	sourceMock.EXPECT().Profile().Return(nil).Times(2)

	handler := newProjectionHandler(sourceMock)

	firstRR := httptest.NewRecorder()
	handler.HandleSimulate(firstRR, httptest.NewRequest("POST", "/projection/simulate", strings.NewReader(loseInputJson)))
	secondRR := httptest.NewRecorder()
	handler.HandleSimulate(secondRR, httptest.NewRequest("POST", "/projection/simulate", strings.NewReader(loseInputJson)))

	require.Equal(t, http.StatusOK, firstRR.Code)
	require.Equal(t, http.StatusOK, secondRR.Code)
	assert.Equal(t, firstRR.Body.String(), secondRR.Body.String())
}

func TestHandler_HandleSimulate_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		reqBody string
		profile *habit.UserProfile
	}{
		{
			name:    "broken json",
			reqBody: `{"weight":`,
		},
		{
			name:    "no profile and no input",
			reqBody: `{}`,
		},
		{
			name:    "negative weight",
			reqBody: `{"weight": -10, "height": 175, "age": 25}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sourceMock := NewMockhabitSource(ctrl)
			sourceMock.EXPECT().Profile().Return(tc.profile).AnyTimes()
			sourceMock.EXPECT().State().Return(habit.StreakState{}).AnyTimes()
			sourceMock.EXPECT().TotalActivityCount().Return(0).AnyTimes()

			handler := newProjectionHandler(sourceMock)
			req := httptest.NewRequest("POST", "/projection/simulate", strings.NewReader(tc.reqBody))
			rr := httptest.NewRecorder()

			handler.HandleSimulate(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestHandler_HandleChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sourceMock := NewMockhabitSource(ctrl)
	sourceMock.EXPECT().Profile().Return(nil)

	handler := newProjectionHandler(sourceMock)
	req := httptest.NewRequest("POST", "/projection/chart", strings.NewReader(loseInputJson))
	rr := httptest.NewRecorder()

	handler.HandleChart(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var points []projection.Point
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &points))
	require.Len(t, points, 7)
	// chart weight interpolates to the target
	assert.InDelta(t, 70.0, points[6].WeightKg, 0.001)
}

func TestHandler_HandleChart_MaintainJittered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sourceMock := NewMockhabitSource(ctrl)
	sourceMock.EXPECT().Profile().Return(nil).Times(2)
	sourceMock.EXPECT().TotalActivityCount().Return(20).Times(2)

	jitterAt := 0
	chart := &projection.ChartModel{
		Jitter: func() float64 {
			jitterAt++
			return float64(jitterAt) * 0.1
		},
	}
	handler := projection.NewHandler(sourceMock, chart, metrics.NewTestManager())

	maintainJson := `{"weight": 75, "targetWeight": 75, "height": 175, "age": 25, "gender": "male", "goal": "maintain", "streakDays": 1}`

	firstRR := httptest.NewRecorder()
	handler.HandleChart(firstRR, httptest.NewRequest("POST", "/projection/chart", strings.NewReader(maintainJson)))
	secondRR := httptest.NewRecorder()
	handler.HandleChart(secondRR, httptest.NewRequest("POST", "/projection/chart", strings.NewReader(maintainJson)))

	require.Equal(t, http.StatusOK, firstRR.Code)
	require.Equal(t, http.StatusOK, secondRR.Code)
	// maintain responses are never served from cache, the jitter advances
	assert.NotEqual(t, firstRR.Body.String(), secondRR.Body.String())
}
