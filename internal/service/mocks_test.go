package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/energy-tracker/internal/domain"
	"github.com/blaisecz/energy-tracker/internal/engine"
	"github.com/blaisecz/energy-tracker/internal/langfuse"
	"github.com/blaisecz/energy-tracker/pkg/pagination"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockWeightRepository is a mock implementation of WeightRepository keyed by user and day.
type MockWeightRepository struct {
	entries map[string]*domain.WeightEntry
	err     error
}

func NewMockWeightRepository() *MockWeightRepository {
	return &MockWeightRepository{entries: make(map[string]*domain.WeightEntry)}
}

func (m *MockWeightRepository) Upsert(ctx context.Context, entry *domain.WeightEntry) error {
	if m.err != nil {
		return m.err
	}
	key := dayKey(entry.UserID, entry.Date)
	if existing, ok := m.entries[key]; ok {
		entry.ID = existing.ID
	} else if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.UpdatedAt = time.Now()
	m.entries[key] = entry
	return nil
}

func (m *MockWeightRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.WeightEntry
	for _, e := range m.entries {
		if e.UserID == userID && inRange(e.Date, from, to) {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *MockWeightRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WeightEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.WeightEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return newestFirst(result, filter, func(e domain.WeightEntry) time.Time { return e.Date }), nil
}

// MockNutritionRepository is a mock implementation of NutritionRepository keyed by user and day.
type MockNutritionRepository struct {
	logs map[string]*domain.NutritionLog
	err  error
}

func NewMockNutritionRepository() *MockNutritionRepository {
	return &MockNutritionRepository{logs: make(map[string]*domain.NutritionLog)}
}

func (m *MockNutritionRepository) Upsert(ctx context.Context, log *domain.NutritionLog) error {
	if m.err != nil {
		return m.err
	}
	key := dayKey(log.UserID, log.Date)
	if existing, ok := m.logs[key]; ok {
		log.ID = existing.ID
	} else if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.UpdatedAt = time.Now()
	m.logs[key] = log
	return nil
}

func (m *MockNutritionRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutritionLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.NutritionLog
	for _, l := range m.logs {
		if l.UserID == userID && inRange(l.Date, from, to) {
			result = append(result, *l)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *MockNutritionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.NutritionLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.NutritionLog
	for _, l := range m.logs {
		if l.UserID == userID {
			result = append(result, *l)
		}
	}
	return newestFirst(result, filter, func(l domain.NutritionLog) time.Time { return l.Date }), nil
}

// MockTargetRepository is a mock implementation of TargetRepository
type MockTargetRepository struct {
	targets []*domain.MacroTarget
	err     error
	// createErr fails Create only.
	createErr error
}

func NewMockTargetRepository() *MockTargetRepository {
	return &MockTargetRepository{}
}

func (m *MockTargetRepository) Create(ctx context.Context, target *domain.MacroTarget) error {
	if m.err != nil {
		return m.err
	}
	if m.createErr != nil {
		return m.createErr
	}
	if target.ID == uuid.Nil {
		target.ID = uuid.New()
	}
	target.CreatedAt = time.Now()
	m.targets = append(m.targets, target)
	return nil
}

func (m *MockTargetRepository) Current(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.MacroTarget, error) {
	if m.err != nil {
		return nil, m.err
	}
	var current *domain.MacroTarget
	for _, t := range m.targets {
		if t.UserID != userID || t.EffectiveDate.After(date) {
			continue
		}
		// Later creation wins on the same effective date
		if current == nil || !t.EffectiveDate.Before(current.EffectiveDate) {
			current = t
		}
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	return current, nil
}

// MockCheckInRepository is a mock implementation of CheckInRepository.
// It stores copies so callers cannot change persisted rows without Update.
type MockCheckInRepository struct {
	checkIns  map[uuid.UUID]*domain.WeeklyCheckIn
	updates   int
	err       error
	updateErr error
}

func NewMockCheckInRepository() *MockCheckInRepository {
	return &MockCheckInRepository{checkIns: make(map[uuid.UUID]*domain.WeeklyCheckIn)}
}

func (m *MockCheckInRepository) Create(ctx context.Context, checkIn *domain.WeeklyCheckIn) error {
	if m.err != nil {
		return m.err
	}
	if checkIn.ID == uuid.Nil {
		checkIn.ID = uuid.New()
	}
	checkIn.CreatedAt = time.Now()
	stored := *checkIn
	m.checkIns[checkIn.ID] = &stored
	return nil
}

func (m *MockCheckInRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WeeklyCheckIn, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.checkIns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *MockCheckInRepository) GetByWeek(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*domain.WeeklyCheckIn, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.checkIns {
		if c.UserID == userID && c.WeekStartDate.Equal(weekStart) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MockCheckInRepository) Update(ctx context.Context, checkIn *domain.WeeklyCheckIn) error {
	if m.err != nil {
		return m.err
	}
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates++
	stored := *checkIn
	m.checkIns[checkIn.ID] = &stored
	return nil
}

func (m *MockCheckInRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.WeeklyCheckIn, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.WeeklyCheckIn
	for _, c := range m.checkIns {
		if c.UserID == userID {
			result = append(result, *c)
		}
	}
	return newestFirst(result, filter, func(c domain.WeeklyCheckIn) time.Time { return c.WeekStartDate }), nil
}

// MockTransactor runs fn directly. When fn fails it calls the restore func
// returned by snapshot, standing in for a rollback.
type MockTransactor struct {
	snapshot func() (restore func())
	calls    int
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	restore := func() {}
	if m.snapshot != nil {
		restore = m.snapshot()
	}
	if err := fn(ctx); err != nil {
		restore()
		return err
	}
	return nil
}

// MockExpenditureRepository is a mock implementation of ExpenditureRepository
type MockExpenditureRepository struct {
	rows map[string]*domain.ExpenditureData
	err  error
}

func NewMockExpenditureRepository() *MockExpenditureRepository {
	return &MockExpenditureRepository{rows: make(map[string]*domain.ExpenditureData)}
}

func (m *MockExpenditureRepository) Upsert(ctx context.Context, row *domain.ExpenditureData) error {
	if m.err != nil {
		return m.err
	}
	key := dayKey(row.UserID, row.Date)
	if existing, ok := m.rows[key]; ok {
		row.ID = existing.ID
	} else if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	m.rows[key] = row
	return nil
}

func (m *MockExpenditureRepository) List(ctx context.Context, userID uuid.UUID, filter domain.ListFilter) ([]domain.ExpenditureData, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.ExpenditureData
	for _, r := range m.rows {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return newestFirst(result, filter, func(r domain.ExpenditureData) time.Time { return r.Date }), nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output   *domain.LLMInsightsOutput
	received *domain.InsightsContext
	err      error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.received = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuseClient records traces and scores instead of sending them.
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
	err     error
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, input langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, input)
	if m.err != nil {
		return "", m.err
	}
	return "trace-" + input.Name, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, input langfuse.ScoreInput) error {
	if m.err != nil {
		return m.err
	}
	m.scores = append(m.scores, input)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error {
	return nil
}

// Helper functions
func dayKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + ":" + date.Format(domain.DateLayout)
}

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// newestFirst mirrors the repositories' ordering, range filter and cursor,
// returning at most limit+1 rows.
func newestFirst[T any](rows []T, filter domain.ListFilter, date func(T) time.Time) []T {
	sort.Slice(rows, func(i, j int) bool { return date(rows[i]).After(date(rows[j])) })

	var cursor *pagination.Cursor
	if filter.Cursor != "" {
		cursor, _ = pagination.DecodeCursor(filter.Cursor)
	}

	var out []T
	for _, r := range rows {
		d := date(r)
		if filter.From != nil && d.Before(*filter.From) {
			continue
		}
		if filter.To != nil && d.After(*filter.To) {
			continue
		}
		if cursor != nil && !d.Before(cursor.Date) {
			continue
		}
		out = append(out, r)
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(out) > limit+1 {
		out = out[:limit+1]
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func floatPtr(f float64) *float64 {
	return &f
}

// newTestUser stores a 30 year old, 80 kg sedentary male.
func newTestUser(repo *MockUserRepository, mode engine.CoachingMode) *domain.User {
	user := &domain.User{
		ID:            uuid.New(),
		Timezone:      "UTC",
		Sex:           engine.SexMale,
		Age:           30,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: engine.ActivitySedentary,
		GoalType:      engine.GoalCut,
		CoachingMode:  mode,
	}
	repo.users[user.ID] = user
	return user
}

// seedDays stores a weigh-in and an intake log on each of n days ending at last.
func seedDays(weights *MockWeightRepository, nutrition *MockNutritionRepository, userID uuid.UUID, last time.Time, n int, kg, calories float64) {
	for i := 0; i < n; i++ {
		d := last.AddDate(0, 0, -i)
		weights.entries[dayKey(userID, d)] = &domain.WeightEntry{ID: uuid.New(), UserID: userID, Date: d, WeightKg: kg}
		nutrition.logs[dayKey(userID, d)] = &domain.NutritionLog{ID: uuid.New(), UserID: userID, Date: d, Calories: calories}
	}
}
