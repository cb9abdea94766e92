package validation

import (
	"fmt"
	"net/url"

	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/types"
)

// ValidateCreateProject is the authoritative, monolithic validation pass.
// It runs every root-field check, every per-child-row check and every
// cross-field check over the raw payload, and either returns the coerced
// aggregate or the full set of field-path violations. It is pure: no I/O,
// no database lookups (slug uniqueness belongs to the writer).
func ValidateCreateProject(req *models.CreateProjectRequest) (*ProjectDraft, Errors) {
	var errs Errors

	// --- Root required fields and formats ---
	if req.Name == "" {
		errs.Add("name", "Project name is required")
	}
	if req.Slug == "" {
		errs.Add("slug", "Slug is required")
	} else if msg := SlugFormat(req.Slug); msg != "" {
		errs.Add("slug", msg)
	}
	if req.Type == "" {
		errs.Add("type", "Project type is required")
	} else if !types.IsValidProjectType(req.Type) {
		errs.Add("type", "Invalid project type")
	}

	status := defaultString(req.Status, types.StatusDraft)
	if !types.IsValidProjectStatus(status) {
		errs.Add("status", "Invalid project status")
	}
	if req.OwnershipType != "" && !types.IsValidOwnershipType(req.OwnershipType) {
		errs.Add("ownershipType", "Invalid ownership type")
	}
	policy := defaultString(req.UnderfundingPolicy, types.UnderfundingRefundAll)
	if !types.IsValidUnderfundingPolicy(policy) {
		errs.Add("underfundingPolicy", "Invalid underfunding policy")
	}

	// --- Financial fields ---
	if req.TargetAmount == "" {
		errs.Add("targetAmount", "Target amount is required")
	} else if msg := PositiveNumericString(req.TargetAmount); msg != "" {
		errs.Add("targetAmount", msg)
	}
	if msg := NumericString(req.MinInvestment); msg != "" {
		errs.Add("minInvestment", msg)
	}
	if msg := NumericString(req.MaxInvestment); msg != "" {
		errs.Add("maxInvestment", msg)
	}
	if msg := NumericString(req.Latitude); msg != "" {
		errs.Add("latitude", msg)
	}
	if msg := NumericString(req.Longitude); msg != "" {
		errs.Add("longitude", msg)
	}

	// --- Timeline fields ---
	fundingDeadline, ok := parseDate(req.FundingDeadline)
	if !ok {
		errs.Add("fundingDeadline", "Must be a valid date")
	}
	startDate, ok := parseDate(req.StartDate)
	if !ok {
		errs.Add("startDate", "Must be a valid date")
	}
	endDate, ok := parseDate(req.EndDate)
	if !ok {
		errs.Add("endDate", "Must be a valid date")
	}
	exitDate, ok := parseDate(req.ExitDate)
	if !ok {
		errs.Add("exitDate", "Must be a valid date")
	}

	// --- Exit policy ---
	// The rate column is numeric, so the format is checked even when early
	// exit is off; the range only matters once it is on.
	if req.EarlyExitPenaltyRate != "" {
		if req.EarlyExitAllowed {
			if msg := ValidatePenaltyRate(req.EarlyExitPenaltyRate); msg != "" {
				errs.Add("earlyExitPenaltyRate", msg)
			}
		} else if msg := NumericString(req.EarlyExitPenaltyRate); msg != "" {
			errs.Add("earlyExitPenaltyRate", msg)
		}
	}
	if req.EarlyExitNoticeDays != nil && *req.EarlyExitNoticeDays < 0 {
		errs.Add("earlyExitNoticeDays", "Must be zero or greater")
	}

	// --- Cross-field rules ---
	bounds := ValidateInvestmentBounds(req.MinInvestment, req.MaxInvestment, req.TargetAmount)
	if bounds.MinError != "" {
		errs.Add("minInvestment", bounds.MinError)
	}
	if bounds.MaxError != "" {
		errs.Add("maxInvestment", bounds.MaxError)
	}
	dates := ValidateDateOrder(startDate, endDate, exitDate, fundingDeadline)
	if dates.EndError != "" {
		errs.Add("endDate", dates.EndError)
	}
	if dates.ExitError != "" {
		errs.Add("exitDate", dates.ExitError)
	}
	if dates.FundingError != "" {
		errs.Add("fundingDeadline", dates.FundingError)
	}

	// --- Child collections ---
	revenueStreams := validateRevenueStreams(req.RevenueStreams, &errs)
	returnStructures := validateReturnStructures(req.ReturnStructures, &errs)
	fees := validateFees(req.Fees, &errs)
	milestones := validateMilestones(req.Milestones, &errs)
	documents := validateDocuments(req.Documents, &errs)
	media := validateMedia(req.Media, &errs)
	tokens := validateTokens(req.Tokens, &errs)

	if len(errs) > 0 {
		return nil, errs
	}

	draft := &ProjectDraft{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   optString(req.Description),
		Summary:       optString(req.Summary),
		Type:          req.Type,
		Status:        status,
		OwnershipType: optString(req.OwnershipType),

		Address:   optString(req.Address),
		City:      optString(req.City),
		State:     optString(req.State),
		Country:   defaultString(req.Country, "Nigeria"),
		Latitude:  optString(req.Latitude),
		Longitude: optString(req.Longitude),

		Currency:      defaultString(req.Currency, "NGN"),
		TargetAmount:  req.TargetAmount,
		MinInvestment: optString(req.MinInvestment),
		MaxInvestment: optString(req.MaxInvestment),

		FundingDeadline:    fundingDeadline,
		UnderfundingPolicy: policy,
		StartDate:          startDate,
		EndDate:            endDate,
		ExitDate:           exitDate,

		RiskLevel:              optString(req.RiskLevel),
		EarlyExitAllowed:       req.EarlyExitAllowed,
		EarlyExitPenaltyRate:   optString(req.EarlyExitPenaltyRate),
		EarlyExitNoticeDays:    req.EarlyExitNoticeDays,
		SecondaryMarketEnabled: req.SecondaryMarketEnabled,
		IsFeatured:             req.IsFeatured,

		RevenueStreams:   revenueStreams,
		ReturnStructures: returnStructures,
		Fees:             fees,
		Milestones:       milestones,
		Documents:        documents,
		Media:            media,
		Tokens:           tokens,
	}
	return draft, nil
}

func childField(collection string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", collection, i, field)
}

func validateURL(v string) string {
	u, err := url.Parse(v)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "Must be a valid URL"
	}
	return ""
}

func validateRevenueStreams(rows []models.RevenueStreamRequest, errs *Errors) []RevenueStreamDraft {
	out := make([]RevenueStreamDraft, 0, len(rows))
	for i, row := range rows {
		if !types.IsValidRevenueType(row.Type) {
			errs.Add(childField("revenueStreams", i, "type"), "Invalid revenue stream type")
		}
		if msg := NumericString(row.ExpectedReturnRate); msg != "" {
			errs.Add(childField("revenueStreams", i, "expectedReturnRate"), msg)
		}
		out = append(out, RevenueStreamDraft{
			Type:               row.Type,
			Description:        optString(row.Description),
			ExpectedReturnRate: optString(row.ExpectedReturnRate),
			IsActive:           boolOrDefault(row.IsActive, true),
		})
	}
	return out
}

func validateReturnStructures(rows []models.ReturnStructureRequest, errs *Errors) []ReturnStructureDraft {
	out := make([]ReturnStructureDraft, 0, len(rows))
	for i, row := range rows {
		if !types.IsValidReturnType(row.Type) {
			errs.Add(childField("returnStructures", i, "type"), "Invalid return structure type")
		}
		if !types.IsValidPayoutFrequency(row.PayoutFrequency) {
			errs.Add(childField("returnStructures", i, "payoutFrequency"), "Invalid payout frequency")
		}
		if msg := NumericString(row.Rate); msg != "" {
			errs.Add(childField("returnStructures", i, "rate"), msg)
		}
		out = append(out, ReturnStructureDraft{
			Type:            row.Type,
			Rate:            optString(row.Rate),
			PayoutFrequency: row.PayoutFrequency,
			Description:     optString(row.Description),
			IsActive:        boolOrDefault(row.IsActive, true),
		})
	}
	return out
}

func validateFees(rows []models.FeeRequest, errs *Errors) []FeeDraft {
	out := make([]FeeDraft, 0, len(rows))
	for i, row := range rows {
		if !types.IsValidFeeType(row.Type) {
			errs.Add(childField("fees", i, "type"), "Invalid fee type")
		}
		if msg := NumericString(row.Rate); msg != "" {
			errs.Add(childField("fees", i, "rate"), msg)
		}
		if msg := NumericString(row.FixedAmount); msg != "" {
			errs.Add(childField("fees", i, "fixedAmount"), msg)
		}
		out = append(out, FeeDraft{
			Type:        row.Type,
			Rate:        optString(row.Rate),
			FixedAmount: optString(row.FixedAmount),
			Description: optString(row.Description),
		})
	}
	return out
}

func validateMilestones(rows []models.MilestoneRequest, errs *Errors) []MilestoneDraft {
	out := make([]MilestoneDraft, 0, len(rows))
	for i, row := range rows {
		if row.Name == "" {
			errs.Add(childField("milestones", i, "name"), "Milestone name is required")
		}
		status := defaultString(row.Status, types.MilestonePending)
		if !types.IsValidMilestoneStatus(status) {
			errs.Add(childField("milestones", i, "status"), "Invalid milestone status")
		}
		targetDate, ok := parseDate(row.TargetDate)
		if !ok {
			errs.Add(childField("milestones", i, "targetDate"), "Must be a valid date")
		}
		out = append(out, MilestoneDraft{
			Name:        row.Name,
			Description: optString(row.Description),
			Status:      status,
			TargetDate:  targetDate,
			SortOrder:   row.SortOrder,
		})
	}
	return out
}

func validateDocuments(rows []models.DocumentRequest, errs *Errors) []DocumentDraft {
	out := make([]DocumentDraft, 0, len(rows))
	for i, row := range rows {
		if !types.IsValidDocumentType(row.Type) {
			errs.Add(childField("documents", i, "type"), "Invalid document type")
		}
		if row.Name == "" {
			errs.Add(childField("documents", i, "name"), "Document name is required")
		}
		if row.URL == "" {
			errs.Add(childField("documents", i, "url"), "Document URL is required")
		} else if msg := validateURL(row.URL); msg != "" {
			errs.Add(childField("documents", i, "url"), msg)
		}
		out = append(out, DocumentDraft{
			Type:       row.Type,
			Name:       row.Name,
			URL:        row.URL,
			MimeType:   optString(row.MimeType),
			SignedBy:   optString(row.SignedBy),
			VerifiedBy: optString(row.VerifiedBy),
			IsPublic:   row.IsPublic,
		})
	}
	return out
}

func validateMedia(rows []models.MediaRequest, errs *Errors) []MediaDraft {
	out := make([]MediaDraft, 0, len(rows))
	for i, row := range rows {
		if !types.IsValidMediaType(row.Type) {
			errs.Add(childField("media", i, "type"), "Invalid media type")
		}
		if row.URL == "" {
			errs.Add(childField("media", i, "url"), "Media URL is required")
		} else if msg := validateURL(row.URL); msg != "" {
			errs.Add(childField("media", i, "url"), msg)
		}
		out = append(out, MediaDraft{
			Type:      row.Type,
			URL:       row.URL,
			AltText:   optString(row.AltText),
			SortOrder: row.SortOrder,
			IsCover:   row.IsCover,
		})
	}
	return out
}

func validateTokens(rows []models.TokenRequest, errs *Errors) []TokenDraft {
	out := make([]TokenDraft, 0, len(rows))
	for i, row := range rows {
		if !types.IsValidTokenType(row.TokenType) {
			errs.Add(childField("tokens", i, "tokenType"), "Invalid token type")
		}
		if row.Name == "" {
			errs.Add(childField("tokens", i, "name"), "Token name is required")
		}
		if row.TotalSupply == "" {
			errs.Add(childField("tokens", i, "totalSupply"), "Total supply is required")
		} else if msg := NumericString(row.TotalSupply); msg != "" {
			errs.Add(childField("tokens", i, "totalSupply"), msg)
		}
		if row.AvailableSupply == "" {
			errs.Add(childField("tokens", i, "availableSupply"), "Available supply is required")
		} else if msg := NumericString(row.AvailableSupply); msg != "" {
			errs.Add(childField("tokens", i, "availableSupply"), msg)
		}
		if row.PricePerToken == "" {
			errs.Add(childField("tokens", i, "pricePerToken"), "Price per token is required")
		} else if msg := NumericString(row.PricePerToken); msg != "" {
			errs.Add(childField("tokens", i, "pricePerToken"), msg)
		}
		out = append(out, TokenDraft{
			TokenType:       row.TokenType,
			Name:            row.Name,
			TotalSupply:     row.TotalSupply,
			AvailableSupply: row.AvailableSupply,
			PricePerToken:   row.PricePerToken,
			Currency:        defaultString(row.Currency, "NGN"),
			IsTradeable:     row.IsTradeable,
			Metadata:        row.Metadata,
		})
	}
	return out
}

// CheckCreateProject runs the monolithic pass and returns only the error
// set. Used by callers that want a verdict without the coerced draft, such
// as the wizard's step gating.
func CheckCreateProject(req *models.CreateProjectRequest) Errors {
	_, errs := ValidateCreateProject(req)
	return errs
}
