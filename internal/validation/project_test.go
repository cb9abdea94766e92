package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/types"
)

func validRequest() *models.CreateProjectRequest {
	return &models.CreateProjectRequest{
		Name:         "Enugu Lifestyle Estate",
		Slug:         "enugu-lifestyle-estate",
		Type:         types.ProjectTypeEstate,
		TargetAmount: "1000000",
	}
}

func fieldMessages(errs Errors, field string) []string {
	var out []string
	for _, fe := range errs {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

func TestValidateCreateProject_MinimalValid(t *testing.T) {
	draft, errs := ValidateCreateProject(validRequest())
	require.Empty(t, errs)
	require.NotNil(t, draft)

	// Defaults applied during coercion
	assert.Equal(t, types.StatusDraft, draft.Status)
	assert.Equal(t, "Nigeria", draft.Country)
	assert.Equal(t, "NGN", draft.Currency)
	assert.Equal(t, types.UnderfundingRefundAll, draft.UnderfundingPolicy)
	assert.Nil(t, draft.Description)
	assert.Nil(t, draft.MinInvestment)
}

func TestValidateCreateProject_RequiredFields(t *testing.T) {
	draft, errs := ValidateCreateProject(&models.CreateProjectRequest{})
	assert.Nil(t, draft)
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("slug"))
	assert.True(t, errs.Has("type"))
	assert.True(t, errs.Has("targetAmount"))
}

func TestValidateCreateProject_MinAboveTarget(t *testing.T) {
	// An admin enters a minimum investment of two million naira against a
	// one million target; the corrected value passes on resubmission.
	req := validRequest()
	req.MinInvestment = "2000000"

	draft, errs := ValidateCreateProject(req)
	assert.Nil(t, draft)
	assert.Equal(t,
		[]string{"Minimum investment cannot exceed the target amount"},
		fieldMessages(errs, "minInvestment"))

	req.MinInvestment = "50000"
	draft, errs = ValidateCreateProject(req)
	assert.Empty(t, errs)
	require.NotNil(t, draft)
	require.NotNil(t, draft.MinInvestment)
	assert.Equal(t, "50000", *draft.MinInvestment)
}

func TestValidateCreateProject_Idempotent(t *testing.T) {
	req := validRequest()
	req.MinInvestment = "bad"
	req.EndDate = "2020-01-01"
	req.StartDate = "2021-01-01"

	first := CheckCreateProject(req)
	second := CheckCreateProject(req)
	assert.Equal(t, first, second)
}

func TestValidateCreateProject_DateRules(t *testing.T) {
	req := validRequest()
	req.StartDate = "2026-06-01"
	req.EndDate = "2026-01-01"
	req.FundingDeadline = "2026-07-01"

	_, errs := ValidateCreateProject(req)
	assert.Contains(t, fieldMessages(errs, "endDate"), "End date must be after start date")
	assert.Contains(t, fieldMessages(errs, "fundingDeadline"), "Funding deadline should be on or before the start date")
}

func TestValidateCreateProject_BadDateFormat(t *testing.T) {
	req := validRequest()
	req.StartDate = "June 1st 2026"

	_, errs := ValidateCreateProject(req)
	assert.Equal(t, []string{"Must be a valid date"}, fieldMessages(errs, "startDate"))
}

func TestValidateCreateProject_EnumChecks(t *testing.T) {
	req := validRequest()
	req.Type = "CONDO"
	req.Status = "LIVE"
	req.OwnershipType = "FREEHOLD"
	req.UnderfundingPolicy = "ROLLOVER"

	_, errs := ValidateCreateProject(req)
	assert.True(t, errs.Has("type"))
	assert.True(t, errs.Has("status"))
	assert.True(t, errs.Has("ownershipType"))
	assert.True(t, errs.Has("underfundingPolicy"))
}

func TestValidateCreateProject_PenaltyRateRangeOnlyWhenExitAllowed(t *testing.T) {
	req := validRequest()
	req.EarlyExitPenaltyRate = "150"

	// Range is not checked while early exit is off
	_, errs := ValidateCreateProject(req)
	assert.False(t, errs.Has("earlyExitPenaltyRate"))

	req.EarlyExitAllowed = true
	_, errs = ValidateCreateProject(req)
	assert.Equal(t, []string{"Penalty rate must be between 0 and 100"}, fieldMessages(errs, "earlyExitPenaltyRate"))
}

func TestValidateCreateProject_PenaltyRateFormatAlwaysChecked(t *testing.T) {
	req := validRequest()
	req.EarlyExitPenaltyRate = "five percent"

	// The stored column is numeric, so a malformed rate is rejected even
	// with early exit off.
	_, errs := ValidateCreateProject(req)
	assert.Equal(t, []string{"Must be a valid number"}, fieldMessages(errs, "earlyExitPenaltyRate"))

	req.EarlyExitAllowed = true
	_, errs = ValidateCreateProject(req)
	assert.Equal(t, []string{"Penalty rate must be between 0 and 100"}, fieldMessages(errs, "earlyExitPenaltyRate"))
}

func TestValidateCreateProject_ChildRows(t *testing.T) {
	req := validRequest()
	req.RevenueStreams = []models.RevenueStreamRequest{
		{Type: types.RevenueRental, ExpectedReturnRate: "14.5"},
		{Type: "MINING", ExpectedReturnRate: "abc"},
	}
	req.Milestones = []models.MilestoneRequest{
		{Name: "", TargetDate: "not-a-date"},
	}
	req.Documents = []models.DocumentRequest{
		{Type: types.DocumentDeed, Name: "Deed of Assignment", URL: "ftp://example.com/deed.pdf"},
	}
	req.Tokens = []models.TokenRequest{
		{TokenType: types.TokenParticipation, Name: "LGE2 Units"},
	}

	_, errs := ValidateCreateProject(req)

	assert.True(t, errs.Has("revenueStreams[1].type"))
	assert.True(t, errs.Has("revenueStreams[1].expectedReturnRate"))
	assert.False(t, errs.Has("revenueStreams[0].type"))

	assert.True(t, errs.Has("milestones[0].name"))
	assert.True(t, errs.Has("milestones[0].targetDate"))

	assert.Equal(t, []string{"Must be a valid URL"}, fieldMessages(errs, "documents[0].url"))

	assert.True(t, errs.Has("tokens[0].totalSupply"))
	assert.True(t, errs.Has("tokens[0].availableSupply"))
	assert.True(t, errs.Has("tokens[0].pricePerToken"))
}

func TestValidateCreateProject_ChildDefaults(t *testing.T) {
	req := validRequest()
	req.RevenueStreams = []models.RevenueStreamRequest{
		{Type: types.RevenueLease},
	}
	req.Milestones = []models.MilestoneRequest{
		{Name: "Land acquisition"},
	}
	req.Tokens = []models.TokenRequest{
		{
			TokenType:       types.TokenOwnership,
			Name:            "Estate Units",
			TotalSupply:     "10000",
			AvailableSupply: "10000",
			PricePerToken:   "25000",
		},
	}

	draft, errs := ValidateCreateProject(req)
	require.Empty(t, errs)

	assert.True(t, draft.RevenueStreams[0].IsActive)
	assert.Equal(t, types.MilestonePending, draft.Milestones[0].Status)
	assert.Equal(t, "NGN", draft.Tokens[0].Currency)
}

func TestValidateCreateProject_ExplicitInactiveChild(t *testing.T) {
	inactive := false
	req := validRequest()
	req.ReturnStructures = []models.ReturnStructureRequest{
		{
			Type:            types.ReturnFixedPercentage,
			Rate:            "12",
			PayoutFrequency: types.PayoutYearly,
			IsActive:        &inactive,
		},
	}

	draft, errs := ValidateCreateProject(req)
	require.Empty(t, errs)
	assert.False(t, draft.ReturnStructures[0].IsActive)
}

func TestErrorsForFields(t *testing.T) {
	var errs Errors
	errs.Add("name", "Project name is required")
	errs.Add("milestones[2].name", "Milestone name is required")
	errs.Add("minInvestment", "Must be a valid number")

	scoped := errs.ForFields("milestones")
	require.Len(t, scoped, 1)
	assert.Equal(t, "milestones[2].name", scoped[0].Field)

	assert.Len(t, errs.ForFields("name", "minInvestment"), 2)
	assert.Empty(t, errs.ForFields("media"))
}
