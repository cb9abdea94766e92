package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/repository"
	"github.com/richei-group/richei-backend/internal/types"
	"github.com/richei-group/richei-backend/internal/validation"
)

// fakeProjectRepo is an in-memory stand-in for the Postgres repository.
type fakeProjectRepo struct {
	created    []*repository.ProjectAggregate
	slugs      map[string]bool
	createErr  error
	expired    []*repository.Project
	statuses   map[string]string
	deadlines  map[string]time.Time
	listResult []*repository.Project
	listTotal  int64
	lastOpts   repository.ListOptions
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		slugs:     map[string]bool{},
		statuses:  map[string]string{},
		deadlines: map[string]time.Time{},
	}
}

func (f *fakeProjectRepo) CreateWithChildren(_ context.Context, agg *repository.ProjectAggregate) error {
	if f.createErr != nil {
		return f.createErr
	}
	agg.Project.ID = "p-1"
	f.created = append(f.created, agg)
	f.slugs[agg.Project.Slug] = true
	return nil
}

func (f *fakeProjectRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	return f.slugs[slug], nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id string) (*repository.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) FindBySlug(_ context.Context, slug string) (*repository.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) FindAggregateByID(_ context.Context, id string) (*repository.ProjectAggregate, error) {
	for _, agg := range f.created {
		if agg.Project.ID == id {
			return agg, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepo) List(_ context.Context, opts repository.ListOptions) ([]*repository.Project, int64, error) {
	f.lastOpts = opts
	return f.listResult, f.listTotal, nil
}

func (f *fakeProjectRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeProjectRepo) ExtendFundingDeadline(_ context.Context, id string, deadline time.Time) error {
	f.deadlines[id] = deadline
	return nil
}

func (f *fakeProjectRepo) FindExpiredFunding(_ context.Context, _ time.Time) ([]*repository.Project, error) {
	return f.expired, nil
}

func validCreateRequest() *models.CreateProjectRequest {
	return &models.CreateProjectRequest{
		Name:         "Lekki Gardens Estate Phase 2",
		Slug:         "lekki-gardens-estate-phase-2",
		Type:         types.ProjectTypeEstate,
		TargetAmount: "250000000",
		Milestones: []models.MilestoneRequest{
			{Name: "Land acquisition", SortOrder: 0},
			{Name: "Site clearing", SortOrder: 1},
		},
		RevenueStreams: []models.RevenueStreamRequest{
			{Type: types.RevenueRental, ExpectedReturnRate: "14.5"},
		},
	}
}

func TestProjectService_Create(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, nil, nil)

	agg, err := svc.Create(context.Background(), validCreateRequest(), "admin-1")
	require.NoError(t, err)
	require.NotNil(t, agg)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "lekki-gardens-estate-phase-2", agg.Project.Slug)
	assert.Equal(t, types.StatusDraft, agg.Project.Status)
	require.NotNil(t, agg.Project.CreatedBy)
	assert.Equal(t, "admin-1", *agg.Project.CreatedBy)

	// Child rows travel with the root
	assert.Len(t, agg.Milestones, 2)
	assert.Len(t, agg.RevenueStreams, 1)
	assert.Equal(t, types.MilestonePending, agg.Milestones[0].Status)
	assert.True(t, agg.RevenueStreams[0].IsActive)
}

func TestProjectService_CreateValidationFailureWritesNothing(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, nil, nil)

	req := validCreateRequest()
	req.MinInvestment = "900000000" // above the target

	agg, err := svc.Create(context.Background(), req, "admin-1")
	assert.Nil(t, agg)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("minInvestment"))
	assert.Empty(t, repo.created)
}

func TestProjectService_CreateSlugConflict(t *testing.T) {
	repo := newFakeProjectRepo()
	repo.slugs["lekki-gardens-estate-phase-2"] = true
	svc := NewProjectService(repo, nil, nil)

	agg, err := svc.Create(context.Background(), validCreateRequest(), "admin-1")
	assert.Nil(t, agg)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, repo.created)
}

func TestProjectService_CreateUniqueViolationBackstop(t *testing.T) {
	// The pre-check passes but a concurrent insert wins the race; the unique
	// index error still surfaces as a conflict.
	repo := newFakeProjectRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "project_slug_idx"}
	svc := NewProjectService(repo, nil, nil)

	agg, err := svc.Create(context.Background(), validCreateRequest(), "admin-1")
	assert.Nil(t, agg)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestProjectService_GetByIDNotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), nil, nil)

	agg, err := svc.GetByID(context.Background(), "missing")
	assert.Nil(t, agg)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_ListDefaultsToFunding(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, nil, nil)

	_, pagination, err := svc.List(context.Background(), models.ProjectListQuery{})
	require.NoError(t, err)

	assert.Equal(t, types.StatusFunding, repo.lastOpts.Status)
	assert.Equal(t, 20, repo.lastOpts.Limit)
	assert.Equal(t, 0, repo.lastOpts.Offset)
	assert.Equal(t, 1, pagination.Page)
}

func TestProjectService_ListHidesDrafts(t *testing.T) {
	repo := newFakeProjectRepo()
	repo.listResult = []*repository.Project{{ID: "p-1"}}
	repo.listTotal = 1
	svc := NewProjectService(repo, nil, nil)

	items, pagination, err := svc.List(context.Background(), models.ProjectListQuery{Status: types.StatusDraft})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, pagination.Total)
	// The repository is never consulted for a non-public status
	assert.Equal(t, repository.ListOptions{}, repo.lastOpts)
}

func TestProjectService_ListPagination(t *testing.T) {
	repo := newFakeProjectRepo()
	repo.listTotal = 45
	svc := NewProjectService(repo, nil, nil)

	_, pagination, err := svc.List(context.Background(), models.ProjectListQuery{
		Status: types.StatusActive, Page: 2, Limit: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, repo.lastOpts.Offset)
	assert.Equal(t, int64(45), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPreviousPage)
}

func TestProjectService_ResolveExpiredFunding(t *testing.T) {
	deadline := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := newFakeProjectRepo()
	repo.expired = []*repository.Project{
		{ID: "refund", Slug: "refund", UnderfundingPolicy: types.UnderfundingRefundAll},
		{ID: "partial", Slug: "partial", UnderfundingPolicy: types.UnderfundingPartialProceed},
		{ID: "extend", Slug: "extend", UnderfundingPolicy: types.UnderfundingExtendDeadline, FundingDeadline: &deadline},
	}
	svc := NewProjectService(repo, nil, nil)

	resolved, err := svc.ResolveExpiredFunding(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resolved)

	assert.Equal(t, types.StatusFailed, repo.statuses["refund"])
	assert.Equal(t, types.StatusActive, repo.statuses["partial"])
	assert.Equal(t, deadline.AddDate(0, 0, 30), repo.deadlines["extend"])
}

func TestPaginate(t *testing.T) {
	p := paginate(1, 20, 0)
	assert.Zero(t, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPreviousPage)

	p = paginate(3, 10, 21)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPreviousPage)
}

func TestAggregateFromDraft_NoActor(t *testing.T) {
	draft, errs := validation.ValidateCreateProject(validCreateRequest())
	require.Empty(t, errs)

	agg := aggregateFromDraft(draft, "")
	assert.Nil(t, agg.Project.CreatedBy)
	require.NotNil(t, agg.Project.Country)
	assert.Equal(t, "Nigeria", *agg.Project.Country)
}

func TestIsUniqueViolationDetection(t *testing.T) {
	assert.True(t, repository.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, repository.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, repository.IsUniqueViolation(errors.New("plain error")))
}
