package get

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

func TestGetBacklog_Success(t *testing.T) {
	data := new(MockSchedulingData)
	data.On("BuildSchedulingData", mock.Anything).Return(&planner.Input{
		Backlog: map[string]planner.BacklogEntry{
			"CAB-6000":  {Denier: "6000", Kg: 5000, Priority: true, Description: "Cabuya 6000"},
			"CAB-12000": {Denier: "12000", Kg: 8000, Description: "Cabuya 12000"},
		},
	}, nil)

	handler := GetBacklog(slog.Default(), data)

	req := httptest.NewRequest(http.MethodGet, "/api/backlog", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp))

	require.Len(t, resp.Backlog, 2)
	// sorted by reference
	assert.Equal(t, "CAB-12000", resp.Backlog[0].Ref)
	assert.Equal(t, "CAB-6000", resp.Backlog[1].Ref)
	assert.True(t, resp.Backlog[1].Priority)
	assert.InDelta(t, 13000.0, resp.TotalKg, 1e-9)

	data.AssertExpectations(t)
}

func TestGetBacklog_StorageError(t *testing.T) {
	data := new(MockSchedulingData)
	data.On("BuildSchedulingData", mock.Anything).Return(nil, assert.AnError)

	handler := GetBacklog(slog.Default(), data)

	req := httptest.NewRequest(http.MethodGet, "/api/backlog", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
