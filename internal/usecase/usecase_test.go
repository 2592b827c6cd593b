package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/internal/usecase"
	"go-career-mentor-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockPrefsRepo struct {
	mock.Mock
}

func (m *MockPrefsRepo) GetByUserID(ctx context.Context, userID int64) (*domain.UserJobPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserJobPreferences), args.Error(1)
}
func (m *MockPrefsRepo) Upsert(ctx context.Context, prefs *domain.UserJobPreferences) error {
	return m.Called(ctx, prefs).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchAllActive(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, query, location string, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, query, location, limit, offset)
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Upsert(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) DeactivateOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) UpsertBatch(ctx context.Context, userID int64, matches []domain.JobMatch) error {
	return m.Called(ctx, userID, matches).Error(0)
}
func (m *MockMatchRepo) DeleteByUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

// Match ranking

func ptr[T any](v T) *T { return &v }

func activeCatalog() []domain.JobPosting {
	posted := func(daysAgo int) *time.Time {
		t := time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour)
		return &t
	}
	return []domain.JobPosting{
		{
			ID: 1, Title: "Senior Go Engineer", CompanyName: "Acme", Location: "Berlin",
			RequiredSkills: []string{"go", "postgresql"}, Technologies: []string{"docker"},
			ExperienceLevel: ptr(domain.ExperienceSenior), RemoteType: domain.JobRemote,
			SalaryMin: ptr(90000), SalaryMax: ptr(120000), PostedDate: posted(1), IsActive: true,
		},
		{
			ID: 2, Title: "Junior PHP Developer", CompanyName: "Other", Location: "Paris",
			RequiredSkills: []string{"php", "laravel", "mysql"},
			ExperienceLevel: ptr(domain.ExperienceJunior), RemoteType: domain.JobOnsite,
			SalaryMin: ptr(30000), SalaryMax: ptr(40000), PostedDate: posted(3), IsActive: true,
		},
		{
			ID: 3, Title: "Go Backend Developer", CompanyName: "Acme", Location: "Remote",
			RequiredSkills: []string{"go"}, Technologies: []string{"kubernetes"},
			ExperienceLevel: ptr(domain.ExperienceSenior), RemoteType: domain.JobRemote,
			SalaryMin: ptr(95000), SalaryMax: ptr(130000), PostedDate: posted(2), IsActive: true,
		},
	}
}

func seniorGoProfile() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:            7,
		ExperienceLevel:   ptr(domain.ExperienceSenior),
		TechnicalSkills:   []string{"go", "postgresql", "docker", "kubernetes"},
		YearsOfExperience: 8,
	}
}

func TestFindMatchesRanksAndFilters(t *testing.T) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	prefsRepo := new(MockPrefsRepo)
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, IsActive: true}, nil)
	profileRepo.On("GetByUserID", mock.Anything, int64(7)).Return(seniorGoProfile(), nil)
	prefsRepo.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.UserJobPreferences{
		UserID:           7,
		RemotePreference: domain.RemoteOnly,
		MinimumSalary:    ptr(80000),
	}, nil)
	jobRepo.On("FetchAllActive", mock.Anything).Return(activeCatalog(), nil)
	matchRepo.On("UpsertBatch", mock.Anything, int64(7), mock.Anything).Return(nil)

	uc := usecase.NewMatchUsecase(userRepo, profileRepo, prefsRepo, jobRepo, matchRepo)
	matches, err := uc.FindMatches(context.Background(), 7, 10, 50)

	assert.NoError(t, err)
	// The junior PHP onsite job scores below 50 and is filtered out.
	assert.Len(t, matches, 2)
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Result.OverallScore, 50.0)
		assert.NotEqual(t, int64(2), m.Job.ID)
	}
	// Best score first.
	assert.GreaterOrEqual(t, matches[0].Result.OverallScore, matches[1].Result.OverallScore)
	matchRepo.AssertCalled(t, "UpsertBatch", mock.Anything, int64(7), mock.Anything)
}

func TestFindMatchesNonexistentUser(t *testing.T) {
	userRepo := new(MockUserRepo)

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	uc := usecase.NewMatchUsecase(userRepo, new(MockProfileRepo), new(MockPrefsRepo), new(MockJobRepo), new(MockMatchRepo))
	matches, err := uc.FindMatches(context.Background(), 99, 10, 50)

	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchesSkipsInactivePostings(t *testing.T) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	prefsRepo := new(MockPrefsRepo)
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)

	catalog := activeCatalog()
	retired := catalog[0]
	retired.ID = 4
	retired.IsActive = false
	catalog = append(catalog, retired)

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, IsActive: true}, nil)
	profileRepo.On("GetByUserID", mock.Anything, int64(7)).Return(seniorGoProfile(), nil)
	prefsRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)
	jobRepo.On("FetchAllActive", mock.Anything).Return(catalog, nil)
	matchRepo.On("UpsertBatch", mock.Anything, int64(7), mock.Anything).Return(nil)

	uc := usecase.NewMatchUsecase(userRepo, profileRepo, prefsRepo, jobRepo, matchRepo)
	matches, err := uc.FindMatches(context.Background(), 7, 10, 0)

	assert.NoError(t, err)
	assert.NotEmpty(t, matches)
	for _, m := range matches {
		assert.NotEqual(t, int64(4), m.Job.ID)
		assert.True(t, m.Job.IsActive)
	}
}

func TestFindMatchesMissingProfileUsesNeutral(t *testing.T) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	prefsRepo := new(MockPrefsRepo)
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	profileRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)
	prefsRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)
	jobRepo.On("FetchAllActive", mock.Anything).Return(activeCatalog(), nil)
	matchRepo.On("UpsertBatch", mock.Anything, int64(7), mock.Anything).Return(nil)

	uc := usecase.NewMatchUsecase(userRepo, profileRepo, prefsRepo, jobRepo, matchRepo)
	matches, err := uc.FindMatches(context.Background(), 7, 10, 0)

	assert.NoError(t, err)
	assert.NotEmpty(t, matches)
	for _, m := range matches {
		// Neutral location, salary and company sub-scores.
		assert.Equal(t, 50.0, m.Result.Scores.Location)
		assert.Equal(t, 50.0, m.Result.Scores.Salary)
		assert.Equal(t, 50.0, m.Result.Scores.Company)
	}
}

func TestFindMatchesLimitAppliedAfterSort(t *testing.T) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	prefsRepo := new(MockPrefsRepo)
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	profileRepo.On("GetByUserID", mock.Anything, int64(7)).Return(seniorGoProfile(), nil)
	prefsRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)
	jobRepo.On("FetchAllActive", mock.Anything).Return(activeCatalog(), nil)
	matchRepo.On("UpsertBatch", mock.Anything, int64(7), mock.Anything).Return(nil)

	uc := usecase.NewMatchUsecase(userRepo, profileRepo, prefsRepo, jobRepo, matchRepo)
	all, err := uc.FindMatches(context.Background(), 7, 10, 0)
	assert.NoError(t, err)

	top, err := uc.FindMatches(context.Background(), 7, 1, 0)
	assert.NoError(t, err)
	assert.Len(t, top, 1)
	// The single result is the global best, not the first scanned.
	assert.Equal(t, all[0].Job.ID, top[0].Job.ID)
}

func TestFindMatchesPersistFailureStillReturns(t *testing.T) {
	userRepo := new(MockUserRepo)
	profileRepo := new(MockProfileRepo)
	prefsRepo := new(MockPrefsRepo)
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)

	userRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	profileRepo.On("GetByUserID", mock.Anything, int64(7)).Return(seniorGoProfile(), nil)
	prefsRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)
	jobRepo.On("FetchAllActive", mock.Anything).Return(activeCatalog(), nil)
	matchRepo.On("UpsertBatch", mock.Anything, int64(7), mock.Anything).Return(assert.AnError)

	uc := usecase.NewMatchUsecase(userRepo, profileRepo, prefsRepo, jobRepo, matchRepo)
	matches, err := uc.FindMatches(context.Background(), 7, 10, 0)

	assert.NoError(t, err)
	assert.NotEmpty(t, matches)
}

// Auth

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	uc := usecase.NewAuthUsecase(userRepo, tokens)
	_, _, err := uc.Register(context.Background(), "Taken@Example.com", "supersecret", "Someone")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	uc := usecase.NewAuthUsecase(new(MockUserRepo), auth.NewTokenService("test-secret", time.Hour))
	_, _, err := uc.Register(context.Background(), "a@b.com", "short", "Someone")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepo)
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash), IsActive: true}, nil)

	uc := usecase.NewAuthUsecase(userRepo, auth.NewTokenService("test-secret", time.Hour))
	_, _, err := uc.Login(context.Background(), "jane@example.com", "wrong-password")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	userRepo := new(MockUserRepo)
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	tokens := auth.NewTokenService("test-secret", time.Hour)

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: 42, Email: "jane@example.com", PasswordHash: string(hash), IsActive: true}, nil)

	uc := usecase.NewAuthUsecase(userRepo, tokens)
	user, token, err := uc.Login(context.Background(), "jane@example.com", "correct-password")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)

	userID, email, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "jane@example.com", email)
}

// Profile skill merging

func TestMergeSkillsUnionsWithExisting(t *testing.T) {
	profileRepo := new(MockProfileRepo)

	profileRepo.On("GetByUserID", mock.Anything, int64(7)).Return(&domain.UserProfile{
		UserID:          7,
		TechnicalSkills: []string{"go", "docker"},
	}, nil)
	profileRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
		return assert.ObjectsAreEqual([]string{"go", "docker", "python"}, p.TechnicalSkills)
	})).Return(nil)

	uc := usecase.NewProfileUsecase(profileRepo)
	err := uc.MergeSkills(context.Background(), 7, []string{"Python", "GO", "  docker "})

	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
}

func TestMergeSkillsCreatesProfileWhenMissing(t *testing.T) {
	profileRepo := new(MockProfileRepo)

	profileRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)
	profileRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.UserProfile) bool {
		return p.UserID == 7 && assert.ObjectsAreEqual([]string{"go"}, p.TechnicalSkills)
	})).Return(nil)

	uc := usecase.NewProfileUsecase(profileRepo)
	err := uc.MergeSkills(context.Background(), 7, []string{"Go"})

	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
}

func TestMergeSkillsNoopOnEmpty(t *testing.T) {
	profileRepo := new(MockProfileRepo)

	uc := usecase.NewProfileUsecase(profileRepo)
	err := uc.MergeSkills(context.Background(), 7, []string{"  ", ""})

	assert.NoError(t, err)
	profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
