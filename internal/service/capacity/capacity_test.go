package capacity

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cabuya-planner/internal/storage"
)

type MockSchedulingStorage struct {
	mock.Mock
}

func (m *MockSchedulingStorage) GetOrders(ctx context.Context) ([]*storage.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Order), args.Error(1)
}

func (m *MockSchedulingStorage) GetRewinderConfigs(ctx context.Context) ([]*storage.RewinderDenierConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.RewinderDenierConfig), args.Error(1)
}

func (m *MockSchedulingStorage) GetMachineDenierConfigs(ctx context.Context) ([]*storage.MachineDenierConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.MachineDenierConfig), args.Error(1)
}

func (m *MockSchedulingStorage) GetShifts(ctx context.Context) ([]*storage.Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Shift), args.Error(1)
}

func (m *MockSchedulingStorage) GetProducts(ctx context.Context) ([]*storage.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Product), args.Error(1)
}

func TestBuildSchedulingData(t *testing.T) {
	st := new(MockSchedulingStorage)

	st.On("GetOrders", mock.Anything).Return([]*storage.Order{
		{ID: "o1", CabuyaCodigo: "CAB-6000", DenierName: "6000", TotalKg: 1500, ProducedKg: 500},
		{ID: "o2", CabuyaCodigo: "", TotalKg: 999}, // no reference, skipped
	}, nil)
	st.On("GetProducts", mock.Anything).Return([]*storage.Product{
		{Codigo: "CAB-6000", Descripcion: "Cabuya 6000", ReferenciaDenier: "6000", Existencias: 800, InventarioSeguridad: 500},
		{Codigo: "CAB-12000", Descripcion: "Cabuya 12000", ReferenciaDenier: "12000", Existencias: 100, InventarioSeguridad: 400, Prioridad: true},
	}, nil)
	st.On("GetRewinderConfigs", mock.Anything).Return([]*storage.RewinderDenierConfig{
		{Denier: "6000", MPSegundos: 37, TMMinutos: 4.2},
		{Denier: "12000", MPSegundos: 37, TMMinutos: 2.4},
	}, nil)
	st.On("GetMachineDenierConfigs", mock.Anything).Return([]*storage.MachineDenierConfig{
		{MachineID: "T14", Denier: "12000", RPM: 8000, TorsionesMetro: 120, Husos: 16},
		{MachineID: "T11", Denier: "6000", RPM: 8000, TorsionesMetro: 150, Husos: 16},
		{MachineID: "T12", Denier: "6000", RPM: 0, TorsionesMetro: 150, Husos: 16}, // zero kgh, dropped
	}, nil)
	st.On("GetShifts", mock.Anything).Return([]*storage.Shift{
		{Date: "2026-03-02", WorkingHours: 16},
	}, nil)

	svc := NewService(slog.Default(), st)
	in, err := svc.BuildSchedulingData(context.Background())
	require.NoError(t, err)

	// manual order: 1000 pending, priority; CAB-6000 stock is above its
	// safety level, so no automatic requirement is added on top
	require.Contains(t, in.Backlog, "CAB-6000")
	assert.InDelta(t, 1000.0, in.Backlog["CAB-6000"].Kg, 1e-9)
	assert.True(t, in.Backlog["CAB-6000"].Priority)
	assert.Equal(t, "Cabuya 6000", in.Backlog["CAB-6000"].Description)

	// automatic requirement: safety 400 vs stock 100
	require.Contains(t, in.Backlog, "CAB-12000")
	assert.InDelta(t, 300.0, in.Backlog["CAB-12000"].Kg, 1e-9)
	assert.True(t, in.Backlog["CAB-12000"].Priority)

	assert.NotContains(t, in.Backlog, "")

	// rewinder table comes straight from the cycle formulas
	assert.Equal(t, 7, in.Rewinder["6000"].NOptimo)
	assert.InDelta(t, RewinderKgh(4.2), in.Rewinder["6000"].KgPerHour, 1e-9)

	// torsion table: one usable machine per family, the dead one dropped
	require.Contains(t, in.Torsion, "6000")
	require.Len(t, in.Torsion["6000"].Machines, 1)
	assert.Equal(t, "T11", in.Torsion["6000"].Machines[0].ID)
	require.Contains(t, in.Torsion, "12000")
	assert.InDelta(t, TorsionKghDefault(12000, 8000, 120, 16), in.Torsion["12000"].TotalKgh, 1e-9)

	require.Len(t, in.Shifts, 1)
	assert.Equal(t, 16, in.Shifts[0].WorkingHours)

	st.AssertExpectations(t)
}

func TestBuildSchedulingData_StorageError(t *testing.T) {
	st := new(MockSchedulingStorage)
	st.On("GetOrders", mock.Anything).Return(nil, assert.AnError)
	st.On("GetProducts", mock.Anything).Return([]*storage.Product{}, nil).Maybe()
	st.On("GetRewinderConfigs", mock.Anything).Return([]*storage.RewinderDenierConfig{}, nil).Maybe()
	st.On("GetMachineDenierConfigs", mock.Anything).Return([]*storage.MachineDenierConfig{}, nil).Maybe()
	st.On("GetShifts", mock.Anything).Return([]*storage.Shift{}, nil).Maybe()

	_, err := NewService(slog.Default(), st).BuildSchedulingData(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "orders")
}
