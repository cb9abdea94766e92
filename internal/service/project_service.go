package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/richei-group/richei-backend/internal/db"
	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/repository"
	"github.com/richei-group/richei-backend/internal/socket"
	"github.com/richei-group/richei-backend/internal/types"
	"github.com/richei-group/richei-backend/internal/validation"
)

// ============================================
// Project Service
// ============================================

const (
	defaultPageSize   = 20
	maxPageSize       = 100
	listCacheTTL      = 5 * time.Minute
	deadlineExtension = 30 // days granted by the EXTEND_DEADLINE policy
)

type ProjectService interface {
	// Create validates the full wizard payload and persists the aggregate in
	// one transaction. Validation failures come back as validation.Errors;
	// a taken slug comes back as ErrConflict.
	Create(ctx context.Context, req *models.CreateProjectRequest, actorID string) (*repository.ProjectAggregate, error)

	GetByID(ctx context.Context, id string) (*repository.ProjectAggregate, error)
	GetBySlug(ctx context.Context, slug string) (*repository.ProjectAggregate, error)
	List(ctx context.Context, q models.ProjectListQuery) ([]*repository.Project, models.Pagination, error)
	AdminList(ctx context.Context, f models.AdminProjectFilter) ([]*repository.Project, models.Pagination, error)
	Search(ctx context.Context, q models.AdminProjectSearch) ([]*repository.Project, models.Pagination, error)

	// ResolveExpiredFunding applies each project's underfunding policy to
	// projects whose funding deadline passed without reaching target.
	ResolveExpiredFunding(ctx context.Context) (int, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
	cache       *db.RedisDB
	broadcaster *socket.Broadcaster
}

func NewProjectService(projectRepo repository.ProjectRepository, cache *db.RedisDB, broadcaster *socket.Broadcaster) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		cache:       cache,
		broadcaster: broadcaster,
	}
}

func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest, actorID string) (*repository.ProjectAggregate, error) {
	draft, errs := validation.ValidateCreateProject(req)
	if len(errs) > 0 {
		return nil, errs
	}

	exists, err := s.projectRepo.ExistsBySlug(ctx, draft.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return nil, ErrConflict
	}

	agg := aggregateFromDraft(draft, actorID)

	if err := s.projectRepo.CreateWithChildren(ctx, agg); err != nil {
		// The pre-check can lose a race; the unique index is authoritative.
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.invalidateListCache(ctx)
	if s.broadcaster != nil {
		s.broadcaster.ProjectCreated(agg.Project.ID, agg.Project.Slug, agg.Project.Name)
	}

	return agg, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*repository.ProjectAggregate, error) {
	agg, err := s.projectRepo.FindAggregateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return nil, ErrNotFound
	}
	return agg, nil
}

func (s *projectService) GetBySlug(ctx context.Context, slug string) (*repository.ProjectAggregate, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, project.ID)
}

// publicStatuses is what investors see when no explicit status filter is set.
// Drafts never leave the admin surface.
var publicStatuses = map[string]bool{
	types.StatusFunding:   true,
	types.StatusActive:    true,
	types.StatusCompleted: true,
}

func (s *projectService) List(ctx context.Context, q models.ProjectListQuery) ([]*repository.Project, models.Pagination, error) {
	page, limit := normalizePage(q.Page, q.Limit)

	status := q.Status
	if status != "" && !publicStatuses[status] {
		return []*repository.Project{}, emptyPagination(page, limit), nil
	}
	if status == "" {
		status = types.StatusFunding
	}

	opts := repository.ListOptions{
		Type:       q.Type,
		Status:     status,
		IsFeatured: q.IsFeatured,
		Search:     q.Search,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}

	cacheKey := fmt.Sprintf("projects:list:%s:%s:%v:%s:%s:%s:%d:%d",
		q.Type, status, q.IsFeatured, q.Search, q.SortBy, q.SortOrder, page, limit)

	if s.cache != nil {
		var cached struct {
			Items      []*repository.Project
			Pagination models.Pagination
		}
		if err := s.cache.GetCache(ctx, cacheKey, &cached); err == nil {
			return cached.Items, cached.Pagination, nil
		}
	}

	items, total, err := s.projectRepo.List(ctx, opts)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	pagination := paginate(page, limit, total)

	if s.cache != nil {
		payload := struct {
			Items      []*repository.Project
			Pagination models.Pagination
		}{items, pagination}
		if err := s.cache.SetCache(ctx, cacheKey, payload, listCacheTTL); err != nil {
			log.Printf("[Cache] failed to cache project list: %v", err)
		}
	}

	return items, pagination, nil
}

func (s *projectService) AdminList(ctx context.Context, f models.AdminProjectFilter) ([]*repository.Project, models.Pagination, error) {
	page, limit := normalizePage(f.Page, f.Limit)

	opts := repository.ListOptions{
		Type:          f.Type,
		Status:        f.Status,
		OwnershipType: f.OwnershipType,

		IsFeatured:             f.IsFeatured,
		EarlyExitAllowed:       f.EarlyExitAllowed,
		SecondaryMarketEnabled: f.SecondaryMarketEnabled,

		City:    f.City,
		State:   f.State,
		Country: f.Country,

		MinTargetAmount: f.MinTargetAmount,
		MaxTargetAmount: f.MaxTargetAmount,

		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	if t, ok := parseFilterDate(f.CreatedAfter); ok {
		opts.CreatedAfter = t
	}
	if t, ok := parseFilterDate(f.CreatedBefore); ok {
		opts.CreatedBefore = t
	}

	items, total, err := s.projectRepo.List(ctx, opts)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return items, paginate(page, limit, total), nil
}

func (s *projectService) Search(ctx context.Context, q models.AdminProjectSearch) ([]*repository.Project, models.Pagination, error) {
	page, limit := normalizePage(q.Page, q.Limit)

	opts := repository.ListOptions{
		Type:   q.Type,
		Status: q.Status,
		Search: q.Query,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	items, total, err := s.projectRepo.List(ctx, opts)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return items, paginate(page, limit, total), nil
}

func (s *projectService) ResolveExpiredFunding(ctx context.Context) (int, error) {
	expired, err := s.projectRepo.FindExpiredFunding(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to find expired funding rounds: %w", err)
	}

	resolved := 0
	for _, p := range expired {
		switch p.UnderfundingPolicy {
		case types.UnderfundingRefundAll:
			if err := s.projectRepo.UpdateStatus(ctx, p.ID, types.StatusFailed); err != nil {
				log.Printf("[Funding] failed to mark project %s failed: %v", p.ID, err)
				continue
			}
			s.notifyStatus(p, types.StatusFailed)

		case types.UnderfundingPartialProceed:
			if err := s.projectRepo.UpdateStatus(ctx, p.ID, types.StatusActive); err != nil {
				log.Printf("[Funding] failed to activate project %s: %v", p.ID, err)
				continue
			}
			s.notifyStatus(p, types.StatusActive)

		case types.UnderfundingExtendDeadline:
			if p.FundingDeadline == nil {
				continue
			}
			newDeadline := p.FundingDeadline.AddDate(0, 0, deadlineExtension)
			if err := s.projectRepo.ExtendFundingDeadline(ctx, p.ID, newDeadline); err != nil {
				log.Printf("[Funding] failed to extend deadline for project %s: %v", p.ID, err)
				continue
			}

		default:
			log.Printf("[Funding] project %s has unknown underfunding policy %q", p.ID, p.UnderfundingPolicy)
			continue
		}
		resolved++
	}

	if resolved > 0 {
		s.invalidateListCache(ctx)
	}
	return resolved, nil
}

func (s *projectService) notifyStatus(p *repository.Project, status string) {
	if s.broadcaster != nil {
		s.broadcaster.ProjectStatusChanged(p.ID, p.Slug, status)
	}
}

func (s *projectService) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(ctx, "projects:*"); err != nil {
		log.Printf("[Cache] failed to invalidate project lists: %v", err)
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func paginate(page, limit int, total int64) models.Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return models.Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && total > 0,
	}
}

func emptyPagination(page, limit int) models.Pagination {
	return models.Pagination{Page: page, Limit: limit}
}

var filterDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseFilterDate(v string) (*time.Time, bool) {
	if v == "" {
		return nil, false
	}
	for _, layout := range filterDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// ============================================
// Draft -> aggregate mapping
// ============================================

// aggregateFromDraft turns a coerced draft into the persistable aggregate.
// IDs and timestamps are left for the repository to fill.
func aggregateFromDraft(d *validation.ProjectDraft, actorID string) *repository.ProjectAggregate {
	var createdBy *string
	if actorID != "" {
		createdBy = &actorID
	}

	agg := &repository.ProjectAggregate{
		Project: &repository.Project{
			Name:          d.Name,
			Slug:          d.Slug,
			Description:   d.Description,
			Summary:       d.Summary,
			Type:          d.Type,
			Status:        d.Status,
			OwnershipType: d.OwnershipType,

			Address:   d.Address,
			City:      d.City,
			State:     d.State,
			Country:   &d.Country,
			Latitude:  d.Latitude,
			Longitude: d.Longitude,

			Currency:      d.Currency,
			TargetAmount:  d.TargetAmount,
			MinInvestment: d.MinInvestment,
			MaxInvestment: d.MaxInvestment,

			FundingDeadline:    d.FundingDeadline,
			UnderfundingPolicy: d.UnderfundingPolicy,
			StartDate:          d.StartDate,
			EndDate:            d.EndDate,
			ExitDate:           d.ExitDate,

			RiskLevel:              d.RiskLevel,
			EarlyExitAllowed:       d.EarlyExitAllowed,
			EarlyExitPenaltyRate:   d.EarlyExitPenaltyRate,
			EarlyExitNoticeDays:    d.EarlyExitNoticeDays,
			SecondaryMarketEnabled: d.SecondaryMarketEnabled,
			IsFeatured:             d.IsFeatured,

			CreatedBy: createdBy,
		},
	}

	for _, rs := range d.RevenueStreams {
		agg.RevenueStreams = append(agg.RevenueStreams, &repository.RevenueStream{
			Type:               rs.Type,
			Description:        rs.Description,
			ExpectedReturnRate: rs.ExpectedReturnRate,
			IsActive:           rs.IsActive,
		})
	}
	for _, r := range d.ReturnStructures {
		agg.ReturnStructures = append(agg.ReturnStructures, &repository.ReturnStructure{
			Type:            r.Type,
			Rate:            r.Rate,
			PayoutFrequency: r.PayoutFrequency,
			Description:     r.Description,
			IsActive:        r.IsActive,
		})
	}
	for _, f := range d.Fees {
		agg.Fees = append(agg.Fees, &repository.Fee{
			Type:        f.Type,
			Rate:        f.Rate,
			FixedAmount: f.FixedAmount,
			Description: f.Description,
		})
	}
	for _, m := range d.Milestones {
		agg.Milestones = append(agg.Milestones, &repository.Milestone{
			Name:        m.Name,
			Description: m.Description,
			Status:      m.Status,
			TargetDate:  m.TargetDate,
			SortOrder:   m.SortOrder,
		})
	}
	for _, doc := range d.Documents {
		agg.Documents = append(agg.Documents, &repository.Document{
			Type:       doc.Type,
			Name:       doc.Name,
			URL:        doc.URL,
			MimeType:   doc.MimeType,
			SignedBy:   doc.SignedBy,
			VerifiedBy: doc.VerifiedBy,
			IsPublic:   doc.IsPublic,
		})
	}
	for _, m := range d.Media {
		agg.Media = append(agg.Media, &repository.Media{
			Type:      m.Type,
			URL:       m.URL,
			AltText:   m.AltText,
			SortOrder: m.SortOrder,
			IsCover:   m.IsCover,
		})
	}
	for _, t := range d.Tokens {
		agg.Tokens = append(agg.Tokens, &repository.Token{
			TokenType:       t.TokenType,
			Name:            t.Name,
			TotalSupply:     t.TotalSupply,
			AvailableSupply: t.AvailableSupply,
			PricePerToken:   t.PricePerToken,
			Currency:        t.Currency,
			IsTradeable:     t.IsTradeable,
			Metadata:        t.Metadata,
		})
	}

	return agg
}
