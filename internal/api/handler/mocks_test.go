package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc        func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateProfileFunc func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}

// MockWeightService is a mock implementation of WeightService
type MockWeightService struct {
	upsertFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpsertWeightRequest) (*domain.WeightEntry, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.WeightListResponse, error)
}

func (m *MockWeightService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertWeightRequest) (*domain.WeightEntry, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	date, _ := domain.ParseDate(req.Date)
	return &domain.WeightEntry{ID: uuid.New(), UserID: userID, Date: date, WeightKg: req.WeightKg}, nil
}

func (m *MockWeightService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.WeightListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.WeightListResponse{Data: []domain.WeightEntryResponse{}}, nil
}

// MockNutritionService is a mock implementation of NutritionService
type MockNutritionService struct {
	upsertFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpsertNutritionRequest) (*domain.NutritionLog, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.NutritionListResponse, error)
}

func (m *MockNutritionService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertNutritionRequest) (*domain.NutritionLog, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	date, _ := domain.ParseDate(req.Date)
	return &domain.NutritionLog{ID: uuid.New(), UserID: userID, Date: date, Calories: req.Calories}, nil
}

func (m *MockNutritionService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.NutritionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.NutritionListResponse{Data: []domain.NutritionLogResponse{}}, nil
}

// MockTargetService is a mock implementation of TargetService
type MockTargetService struct {
	createFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateTargetRequest) (*domain.MacroTarget, error)
	currentFunc func(ctx context.Context, userID uuid.UUID, date *time.Time) (*domain.MacroTarget, error)
}

func (m *MockTargetService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateTargetRequest) (*domain.MacroTarget, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	date, _ := domain.ParseDate(req.EffectiveDate)
	return &domain.MacroTarget{
		ID:            uuid.New(),
		UserID:        userID,
		EffectiveDate: date,
		Calories:      req.Calories,
		Source:        domain.TargetSourceManual,
	}, nil
}

func (m *MockTargetService) Current(ctx context.Context, userID uuid.UUID, date *time.Time) (*domain.MacroTarget, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx, userID, date)
	}
	return nil, domain.ErrNotFound
}

// MockEnergyService is a mock implementation of EnergyService
type MockEnergyService struct {
	estimateFunc      func(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*engine.TDEEEstimate, error)
	componentsFunc    func(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*service.ComponentsResponse, error)
	dataQualityFunc   func(ctx context.Context, userID uuid.UUID, windowDays int, asOf *time.Time) (*engine.DataQualityReport, error)
	recordHistoryFunc func(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*domain.ExpenditureData, error)
	listHistoryFunc   func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ExpenditureListResponse, error)
}

func (m *MockEnergyService) Snapshot(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*service.EnergySnapshot, error) {
	return nil, domain.ErrNotFound
}

func (m *MockEnergyService) Estimate(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*engine.TDEEEstimate, error) {
	if m.estimateFunc != nil {
		return m.estimateFunc(ctx, userID, asOf)
	}
	return &engine.TDEEEstimate{CurrentTDEE: 2200, Methodology: engine.MethodologyAdherenceNeutral}, nil
}

func (m *MockEnergyService) Components(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*service.ComponentsResponse, error) {
	if m.componentsFunc != nil {
		return m.componentsFunc(ctx, userID, asOf)
	}
	return &service.ComponentsResponse{EstimatedTDEE: 2200}, nil
}

func (m *MockEnergyService) DataQuality(ctx context.Context, userID uuid.UUID, windowDays int, asOf *time.Time) (*engine.DataQualityReport, error) {
	if m.dataQualityFunc != nil {
		return m.dataQualityFunc(ctx, userID, windowDays, asOf)
	}
	return &engine.DataQualityReport{WindowDays: windowDays}, nil
}

func (m *MockEnergyService) RecordHistory(ctx context.Context, userID uuid.UUID, asOf *time.Time) (*domain.ExpenditureData, error) {
	if m.recordHistoryFunc != nil {
		return m.recordHistoryFunc(ctx, userID, asOf)
	}
	return &domain.ExpenditureData{ID: uuid.New(), UserID: userID, EstimatedTDEE: 2200}, nil
}

func (m *MockEnergyService) ListHistory(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.ExpenditureListResponse, error) {
	if m.listHistoryFunc != nil {
		return m.listHistoryFunc(ctx, userID, filter)
	}
	return &domain.ExpenditureListResponse{Data: []domain.ExpenditureResponse{}}, nil
}

// MockCheckInService is a mock implementation of CheckInService
type MockCheckInService struct {
	createFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.WeeklyCheckIn, error)
	listFunc    func(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.CheckInListResponse, error)
	confirmFunc func(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error)
	rejectFunc  func(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error)
}

func (m *MockCheckInService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateCheckInRequest) (*domain.WeeklyCheckIn, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	week, _ := domain.ParseDate(req.WeekStart)
	return &domain.WeeklyCheckIn{
		ID:              uuid.New(),
		UserID:          userID,
		WeekStartDate:   week,
		EnergyLevel:     req.EnergyLevel,
		AdjustmentState: domain.AdjustmentNone,
	}, nil
}

func (m *MockCheckInService) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) (*domain.CheckInListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.CheckInListResponse{Data: []domain.CheckInResponse{}}, nil
}

func (m *MockCheckInService) Confirm(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error) {
	if m.confirmFunc != nil {
		return m.confirmFunc(ctx, userID, checkInID)
	}
	return &domain.WeeklyCheckIn{ID: checkInID, UserID: userID, AdjustmentState: domain.AdjustmentApplied}, nil
}

func (m *MockCheckInService) Reject(ctx context.Context, userID, checkInID uuid.UUID) (*domain.WeeklyCheckIn, error) {
	if m.rejectFunc != nil {
		return m.rejectFunc(ctx, userID, checkInID)
	}
	return &domain.WeeklyCheckIn{ID: checkInID, UserID: userID, AdjustmentState: domain.AdjustmentRejected}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
	feedbackFunc func(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{
		Estimate: engine.TDEEEstimate{CurrentTDEE: 2200},
		Insights: domain.LLMInsightsOutput{
			Summary:      "Your expenditure is steady.",
			Observations: []string{"Intake matched expenditure"},
			Guidance:     []string{"Keep logging weekends"},
		},
	}, nil
}

func (m *MockInsightsService) Feedback(ctx context.Context, userID uuid.UUID, req *domain.InsightsFeedbackRequest) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, req)
	}
	return nil
}

// newRequest builds a request with chi URL params attached.
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
