package handlers

import (
	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/repository"
	"github.com/richei-group/richei-backend/internal/service"
	"github.com/richei-group/richei-backend/internal/upload"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth    *AuthHandler
	Project *ProjectHandler
	Zone    *ZoneHandler
	Upload  *UploadHandler
}

// NewHandlers creates all handlers
func NewHandlers(services *service.Services, uploader *upload.Uploader) *Handlers {
	return &Handlers{
		Auth:    &AuthHandler{authService: services.Auth},
		Project: &ProjectHandler{projectService: services.Project},
		Zone:    &ZoneHandler{},
		Upload:  &UploadHandler{uploader: uploader},
	}
}

// ============================================
// Response Mappers
// ============================================

func toUserResponse(u *repository.User) models.UserResponse {
	return models.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Summary:       p.Summary,
		Type:          p.Type,
		Status:        p.Status,
		OwnershipType: p.OwnershipType,

		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		Country:   p.Country,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,

		Currency:      p.Currency,
		TargetAmount:  p.TargetAmount,
		RaisedAmount:  p.RaisedAmount,
		MinInvestment: p.MinInvestment,
		MaxInvestment: p.MaxInvestment,

		FundingDeadline:    p.FundingDeadline,
		UnderfundingPolicy: p.UnderfundingPolicy,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		ExitDate:           p.ExitDate,

		RiskLevel:              p.RiskLevel,
		EarlyExitAllowed:       p.EarlyExitAllowed,
		EarlyExitPenaltyRate:   p.EarlyExitPenaltyRate,
		EarlyExitNoticeDays:    p.EarlyExitNoticeDays,
		SecondaryMarketEnabled: p.SecondaryMarketEnabled,
		IsFeatured:             p.IsFeatured,

		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProjectDetailResponse(agg *repository.ProjectAggregate) models.ProjectDetailResponse {
	resp := models.ProjectDetailResponse{
		ProjectResponse:  toProjectResponse(agg.Project),
		RevenueStreams:   []models.RevenueStreamResponse{},
		ReturnStructures: []models.ReturnStructureResponse{},
		Fees:             []models.FeeResponse{},
		Milestones:       []models.MilestoneResponse{},
		Documents:        []models.DocumentResponse{},
		Media:            []models.MediaResponse{},
		Tokens:           []models.TokenResponse{},
	}

	for _, rs := range agg.RevenueStreams {
		resp.RevenueStreams = append(resp.RevenueStreams, models.RevenueStreamResponse{
			ID:                 rs.ID,
			ProjectID:          rs.ProjectID,
			Type:               rs.Type,
			Description:        rs.Description,
			ExpectedReturnRate: rs.ExpectedReturnRate,
			IsActive:           rs.IsActive,
		})
	}
	for _, r := range agg.ReturnStructures {
		resp.ReturnStructures = append(resp.ReturnStructures, models.ReturnStructureResponse{
			ID:              r.ID,
			ProjectID:       r.ProjectID,
			Type:            r.Type,
			Rate:            r.Rate,
			PayoutFrequency: r.PayoutFrequency,
			Description:     r.Description,
			IsActive:        r.IsActive,
		})
	}
	for _, f := range agg.Fees {
		resp.Fees = append(resp.Fees, models.FeeResponse{
			ID:          f.ID,
			ProjectID:   f.ProjectID,
			Type:        f.Type,
			Rate:        f.Rate,
			FixedAmount: f.FixedAmount,
			Description: f.Description,
		})
	}
	for _, m := range agg.Milestones {
		resp.Milestones = append(resp.Milestones, models.MilestoneResponse{
			ID:            m.ID,
			ProjectID:     m.ProjectID,
			Name:          m.Name,
			Description:   m.Description,
			Status:        m.Status,
			TargetDate:    m.TargetDate,
			CompletedDate: m.CompletedDate,
			SortOrder:     m.SortOrder,
		})
	}
	for _, d := range agg.Documents {
		resp.Documents = append(resp.Documents, models.DocumentResponse{
			ID:         d.ID,
			ProjectID:  d.ProjectID,
			Type:       d.Type,
			Name:       d.Name,
			URL:        d.URL,
			MimeType:   d.MimeType,
			SignedBy:   d.SignedBy,
			VerifiedBy: d.VerifiedBy,
			IsPublic:   d.IsPublic,
		})
	}
	for _, m := range agg.Media {
		resp.Media = append(resp.Media, models.MediaResponse{
			ID:        m.ID,
			ProjectID: m.ProjectID,
			Type:      m.Type,
			URL:       m.URL,
			AltText:   m.AltText,
			SortOrder: m.SortOrder,
			IsCover:   m.IsCover,
		})
	}
	for _, t := range agg.Tokens {
		resp.Tokens = append(resp.Tokens, models.TokenResponse{
			ID:              t.ID,
			ProjectID:       t.ProjectID,
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

	return resp
}

func toProjectListResponse(items []*repository.Project, pagination models.Pagination) models.ProjectListResponse {
	resp := models.ProjectListResponse{
		Items:      make([]models.ProjectResponse, len(items)),
		Pagination: pagination,
	}
	for i, p := range items {
		resp.Items[i] = toProjectResponse(p)
	}
	return resp
}
