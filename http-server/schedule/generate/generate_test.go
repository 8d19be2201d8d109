package generate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cabuya-planner/internal/service/planner"
)

type MockSchedulingData struct {
	mock.Mock
}

func (m *MockSchedulingData) BuildSchedulingData(ctx context.Context) (*planner.Input, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.Input), args.Error(1)
}

type MockPlanEngine struct {
	mock.Mock
}

func (m *MockPlanEngine) Generate(ctx context.Context, in planner.Input) (*planner.Result, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.Result), args.Error(1)
}

func TestGeneratePlan_Success(t *testing.T) {
	data := new(MockSchedulingData)
	engine := new(MockPlanEngine)

	data.On("BuildSchedulingData", mock.Anything).Return(&planner.Input{}, nil)
	engine.On("Generate", mock.Anything, mock.MatchedBy(func(in planner.Input) bool {
		return in.Strategy == planner.StrategyContinuous && in.Order == planner.OrderPriorityFirst
	})).Return(&planner.Result{
		Summary: planner.Summary{DaysScheduled: 3, TotalKg: 1300},
	}, nil)

	handler := GeneratePlan(slog.Default(), data, engine)

	body := `{"estrategia":"continuous","politica_orden":"priority_first"}`
	req := httptest.NewRequest(http.MethodPost, "/api/schedule/generate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp planner.Result
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))
	assert.Equal(t, 3, resp.Summary.DaysScheduled)
	assert.InDelta(t, 1300.0, resp.Summary.TotalKg, 1e-9)

	data.AssertExpectations(t)
	engine.AssertExpectations(t)
}

func TestGeneratePlan_EmptyBodyUsesDefaults(t *testing.T) {
	data := new(MockSchedulingData)
	engine := new(MockPlanEngine)

	data.On("BuildSchedulingData", mock.Anything).Return(&planner.Input{}, nil)
	engine.On("Generate", mock.Anything, mock.MatchedBy(func(in planner.Input) bool {
		return in.Strategy == planner.StrategyFixedShift && in.Order == planner.OrderDenierDesc
	})).Return(&planner.Result{}, nil)

	handler := GeneratePlan(slog.Default(), data, engine)

	req := httptest.NewRequest(http.MethodPost, "/api/schedule/generate", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	engine.AssertExpectations(t)
}

func TestGeneratePlan_UnknownStrategy(t *testing.T) {
	handler := GeneratePlan(slog.Default(), new(MockSchedulingData), new(MockPlanEngine))

	req := httptest.NewRequest(http.MethodPost, "/api/schedule/generate",
		strings.NewReader(`{"estrategia":"quantum"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Estrategia desconocida")
}

func TestGeneratePlan_ConfigErrorIs422(t *testing.T) {
	data := new(MockSchedulingData)
	engine := new(MockPlanEngine)

	data.On("BuildSchedulingData", mock.Anything).Return(&planner.Input{}, nil)
	engine.On("Generate", mock.Anything, mock.Anything).Return(nil, &planner.ConfigError{
		Ref: "CAB-6000", Reason: "no admissible post count",
	})

	handler := GeneratePlan(slog.Default(), data, engine)

	req := httptest.NewRequest(http.MethodPost, "/api/schedule/generate", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "CAB-6000")
}

func TestGeneratePlan_StorageError(t *testing.T) {
	data := new(MockSchedulingData)
	data.On("BuildSchedulingData", mock.Anything).Return(nil, assert.AnError)

	handler := GeneratePlan(slog.Default(), data, new(MockPlanEngine))

	req := httptest.NewRequest(http.MethodPost, "/api/schedule/generate", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
