package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/capexhub/capex_planning_app/internal/apperrors"
	"github.com/capexhub/capex_planning_app/internal/core/domain"
	portssvc "github.com/capexhub/capex_planning_app/internal/core/ports/services"
	"github.com/capexhub/capex_planning_app/internal/core/services"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (domain.GlobalSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.GlobalSettings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.GlobalSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetMasterData(ctx context.Context) (domain.MasterData, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.MasterData), args.Error(1)
}

func (m *MockSettingsRepository) SaveMasterData(ctx context.Context, data domain.MasterData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

// --- Shared fixtures ---

var (
	lead    = domain.User{UserID: "u1", Name: "Carlos Silva", Role: domain.RoleProjectLead, Country: domain.CountryBR}
	manager = domain.User{UserID: "u3", Name: "Elena Rodriguez", Role: domain.RoleCountryManager, Country: domain.CountryBR}
	admin   = domain.User{UserID: "u8", Name: "Admin User", Role: domain.RoleAdmin, Country: domain.CountryBR}
)

func openSettings() domain.GlobalSettings {
	return domain.GlobalSettings{ActiveBudgetYear: 2025}
}

func draftProject(id, code string) domain.Project {
	return domain.Project{
		ProjectID:   id,
		BudgetYear:  2025,
		Country:     domain.CountryBR,
		Code:        code,
		Name:        "Pampo Platform Upgrade",
		StartDate:   "2025-01-15",
		EndDate:     "2025-11-30",
		Priority:    "Essential",
		ExpenseType: domain.CAPEX,
		Owner:       lead.Name,
		Status:      domain.StatusDraft,
		Expenditures: domain.FinanceSchedule{
			Q1: decimal.NewFromInt(200),
			Q2: decimal.NewFromInt(300),
		},
		CreatedAt: testNow.Add(-24 * time.Hour),
		UpdatedAt: testNow.Add(-24 * time.Hour),
	}
}

// --- Test Suite ---

type ProjectServiceTestSuite struct {
	suite.Suite
	projectRepo  *MockProjectRepository
	settingsRepo *MockSettingsRepository
	service      portssvc.ProjectSvcFacade
}

// newService builds the service under test with a pinned clock and
// synchronous persistence so write expectations are deterministic.
func (s *ProjectServiceTestSuite) newService(stored []domain.Project, settings domain.GlobalSettings) {
	s.projectRepo = new(MockProjectRepository)
	s.settingsRepo = new(MockSettingsRepository)
	s.projectRepo.On("ListProjects", mock.Anything).Return(stored, nil).Once()
	s.settingsRepo.On("GetSettings", mock.Anything).Return(settings, nil).Maybe()
	s.service = services.NewProjectService(s.projectRepo, s.settingsRepo,
		services.WithClock(func() time.Time { return testNow }),
		services.WithSynchronousPersistence(),
	)
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.newService([]domain.Project{}, openSettings())
}

func (s *ProjectServiceTestSuite) TestSaveProject_NewAllocatesCodeAndCreationEntry() {
	s.newService([]domain.Project{
		draftProject("p1", "BR-2025-TEdB-001"),
		draftProject("p2", "BR-2025-TEdB-002"),
		draftProject("p3", "BR-2025-TEdB-003"),
	}, openSettings())
	s.projectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	project := draftProject("", "")
	project.Status = ""

	saved, err := s.service.SaveProject(context.Background(), project, lead)

	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.NotEmpty(saved.ProjectID)
	s.Equal("BR-2025-TEdB-004", saved.Code)
	s.Equal(domain.StatusDraft, saved.Status)
	s.Equal(testNow, saved.CreatedAt)
	s.Equal(testNow, saved.UpdatedAt)

	s.Require().Len(saved.AuditTrail, 1)
	s.Equal("Project", saved.AuditTrail[0].Field)
	s.Equal("N/A", saved.AuditTrail[0].OldValue)
	s.Equal("Created", saved.AuditTrail[0].NewValue)
	s.Equal(lead.Name, saved.AuditTrail[0].User)

	s.projectRepo.AssertExpectations(s.T())
}

func (s *ProjectServiceTestSuite) TestSaveProject_UpdateAppendsDiffToTrail() {
	existing := draftProject("p1", "BR-2025-TEdB-001")
	s.newService([]domain.Project{existing}, openSettings())
	s.projectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	updated := existing
	updated.Name = "Pampo Platform Upgrade Phase II"

	saved, err := s.service.SaveProject(context.Background(), updated, lead)

	s.Require().NoError(err)
	s.Require().Len(saved.AuditTrail, 1)
	s.Equal("Name", saved.AuditTrail[0].Field)
	s.Equal(existing.Name, saved.AuditTrail[0].OldValue)
	s.Equal(updated.Name, saved.AuditTrail[0].NewValue)
	s.Equal(existing.CreatedAt, saved.CreatedAt)
	s.Equal(testNow, saved.UpdatedAt)
}

func (s *ProjectServiceTestSuite) TestSaveProject_NoOpSaveLeavesTrailAlone() {
	existing := draftProject("p1", "BR-2025-TEdB-001")
	s.newService([]domain.Project{existing}, openSettings())
	s.projectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	saved, err := s.service.SaveProject(context.Background(), existing, lead)

	s.Require().NoError(err)
	s.Empty(saved.AuditTrail)
}

func (s *ProjectServiceTestSuite) TestSaveProject_ManualOverridePreservesCode() {
	s.projectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	project := draftProject("", "")
	project.ManualCodeOverride = true
	project.Code = "BR-CUSTOM-CODE"

	saved, err := s.service.SaveProject(context.Background(), project, lead)

	s.Require().NoError(err)
	s.Equal("BR-CUSTOM-CODE", saved.Code)
}

func (s *ProjectServiceTestSuite) TestSaveProject_CodeConflictFails() {
	existing := draftProject("p1", "BR-2025-TEdB-001")
	s.newService([]domain.Project{existing}, openSettings())

	project := draftProject("", "")
	project.ManualCodeOverride = true
	project.Code = "BR-2025-TEdB-001"

	_, err := s.service.SaveProject(context.Background(), project, lead)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.projectRepo.AssertNotCalled(s.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestSaveProject_ValidationFailure() {
	project := draftProject("", "")
	project.Name = ""

	_, err := s.service.SaveProject(context.Background(), project, lead)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.projectRepo.AssertNotCalled(s.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (s *ProjectServiceTestSuite) TestSaveProject_LockedCountryRejectsNonAdmin() {
	settings := openSettings()
	settings.IsReadOnly = true
	s.newService([]domain.Project{}, settings)

	_, err := s.service.SaveProject(context.Background(), draftProject("", ""), lead)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrLocked)
}

func (s *ProjectServiceTestSuite) TestSaveProject_LockedCountryAdminBypasses() {
	settings := openSettings()
	settings.IsReadOnly = true
	s.newService([]domain.Project{}, settings)
	s.projectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	_, err := s.service.SaveProject(context.Background(), draftProject("", ""), admin)

	s.NoError(err)
}

func (s *ProjectServiceTestSuite) TestSaveProject_PersistenceFailureIsRecordedNotReturned() {
	s.projectRepo.On("SaveProject", mock.Anything, mock.AnythingOfType("domain.Project")).Return(assert.AnError).Once()

	saved, err := s.service.SaveProject(context.Background(), draftProject("", ""), lead)

	// The optimistic local mutation stands; the failure is only recorded.
	s.Require().NoError(err)
	s.Require().NotNil(saved)

	failures := s.service.FailedWrites()
	s.Require().Len(failures, 1)
	s.Equal(saved.ProjectID, failures[0].ProjectID)
	s.Equal("save", failures[0].Operation)
	s.Equal(testNow, failures[0].At)

	fetched, err := s.service.GetProjectByID(context.Background(), saved.ProjectID)
	s.Require().NoError(err)
	s.Equal(saved.Code, fetched.Code)
}

func (s *ProjectServiceTestSuite) TestGetProjectByID_NotFound() {
	_, err := s.service.GetProjectByID(context.Background(), "missing")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ProjectServiceTestSuite) TestDeleteProject() {
	existing := draftProject("p1", "BR-2025-TEdB-001")
	s.newService([]domain.Project{existing}, openSettings())
	s.projectRepo.On("DeleteProject", mock.Anything, "p1").Return(nil).Once()

	err := s.service.DeleteProject(context.Background(), "p1", lead)

	s.Require().NoError(err)
	_, err = s.service.GetProjectByID(context.Background(), "p1")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.projectRepo.AssertExpectations(s.T())
}

func (s *ProjectServiceTestSuite) TestDeleteProject_NotFound() {
	err := s.service.DeleteProject(context.Background(), "missing", lead)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ProjectServiceTestSuite) TestSuggestProjectCode() {
	s.newService([]domain.Project{draftProject("p1", "BR-2025-TEdB-001")}, openSettings())

	code, err := s.service.SuggestProjectCode(context.Background(), domain.CountryBR, "2025-02-01")

	s.Require().NoError(err)
	s.Equal("BR-2025-TEdB-002", code)
}

func (s *ProjectServiceTestSuite) TestListProjects_SortedByCreation() {
	older := draftProject("p1", "BR-2025-TEdB-001")
	older.CreatedAt = testNow.Add(-48 * time.Hour)
	newer := draftProject("p2", "BR-2025-TEdB-002")
	newer.CreatedAt = testNow.Add(-1 * time.Hour)
	s.newService([]domain.Project{newer, older}, openSettings())

	list, err := s.service.ListProjects(context.Background())

	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("p1", list[0].ProjectID)
	s.Equal("p2", list[1].ProjectID)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
