package types

// Project Type values
const (
	ProjectTypeEstate   = "ESTATE"
	ProjectTypeLand     = "LAND"
	ProjectTypeProperty = "PROPERTY"
	ProjectTypeBuilding = "BUILDING"
	ProjectTypeFarm     = "FARM"
	ProjectTypeOther    = "OTHER"
)

// Project Status values
const (
	StatusDraft     = "DRAFT"
	StatusFunding   = "FUNDING"
	StatusActive    = "ACTIVE"
	StatusPaused    = "PAUSED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusFailed    = "FAILED"
)

// Ownership Type values
const (
	OwnershipLegalTitle          = "LEGAL_TITLE"
	OwnershipProfitParticipation = "PROFIT_PARTICIPATION"
)

// Underfunding Policy values
const (
	UnderfundingRefundAll      = "REFUND_ALL"
	UnderfundingPartialProceed = "PARTIAL_PROCEED"
	UnderfundingExtendDeadline = "EXTEND_DEADLINE"
)

// Revenue Stream Type values
const (
	RevenueResale       = "RESALE"
	RevenueLease        = "LEASE"
	RevenueFarming      = "FARMING"
	RevenueRental       = "RENTAL"
	RevenueAppreciation = "APPRECIATION"
	RevenueOther        = "OTHER"
)

// Return Structure Type values
const (
	ReturnFixedPercentage = "FIXED_PERCENTAGE"
	ReturnProfitShare     = "PROFIT_SHARE"
	ReturnAppreciation    = "APPRECIATION"
	ReturnPeriodicRental  = "PERIODIC_RENTAL"
)

// Payout Frequency values
const (
	PayoutMonthly    = "MONTHLY"
	PayoutQuarterly  = "QUARTERLY"
	PayoutBiannually = "BIANNUALLY"
	PayoutYearly     = "YEARLY"
	PayoutAtExit     = "AT_EXIT"
	PayoutOnSale     = "ON_SALE"
)

// Fee Type values
const (
	FeeUpfront      = "UPFRONT"
	FeeOnProfit     = "ON_PROFIT"
	FeeOnWithdrawal = "ON_WITHDRAWAL"
	FeeManagement   = "MANAGEMENT"
)

// Milestone Status values
const (
	MilestonePending    = "PENDING"
	MilestoneInProgress = "IN_PROGRESS"
	MilestoneCompleted  = "COMPLETED"
	MilestoneDelayed    = "DELAYED"
)

// Document Type values
const (
	DocumentSurveyPlan       = "SURVEY_PLAN"
	DocumentAllocationLetter = "ALLOCATION_LETTER"
	DocumentDeed             = "DEED"
	DocumentContract         = "CONTRACT"
	DocumentTitleCertificate = "TITLE_CERTIFICATE"
	DocumentOther            = "OTHER"
)

// Media Type values
const (
	MediaImage     = "IMAGE"
	MediaVideo     = "VIDEO"
	MediaMap       = "MAP"
	MediaFloorPlan = "FLOOR_PLAN"
)

// Token Type values
const (
	TokenParticipation = "PARTICIPATION"
	TokenOwnership     = "OWNERSHIP"
	TokenReward        = "REWARD"
)

// User Roles
const (
	RoleAdmin    = "ADMIN"
	RoleInvestor = "INVESTOR"
)

// Valid values for validation
var ValidProjectTypes = []string{
	ProjectTypeEstate, ProjectTypeLand, ProjectTypeProperty,
	ProjectTypeBuilding, ProjectTypeFarm, ProjectTypeOther,
}

var ValidProjectStatuses = []string{
	StatusDraft, StatusFunding, StatusActive, StatusPaused,
	StatusCompleted, StatusCancelled, StatusFailed,
}

var ValidOwnershipTypes = []string{
	OwnershipLegalTitle, OwnershipProfitParticipation,
}

var ValidUnderfundingPolicies = []string{
	UnderfundingRefundAll, UnderfundingPartialProceed, UnderfundingExtendDeadline,
}

var ValidRevenueTypes = []string{
	RevenueResale, RevenueLease, RevenueFarming,
	RevenueRental, RevenueAppreciation, RevenueOther,
}

var ValidReturnTypes = []string{
	ReturnFixedPercentage, ReturnProfitShare,
	ReturnAppreciation, ReturnPeriodicRental,
}

var ValidPayoutFrequencies = []string{
	PayoutMonthly, PayoutQuarterly, PayoutBiannually,
	PayoutYearly, PayoutAtExit, PayoutOnSale,
}

var ValidFeeTypes = []string{
	FeeUpfront, FeeOnProfit, FeeOnWithdrawal, FeeManagement,
}

var ValidMilestoneStatuses = []string{
	MilestonePending, MilestoneInProgress, MilestoneCompleted, MilestoneDelayed,
}

var ValidDocumentTypes = []string{
	DocumentSurveyPlan, DocumentAllocationLetter, DocumentDeed,
	DocumentContract, DocumentTitleCertificate, DocumentOther,
}

var ValidMediaTypes = []string{
	MediaImage, MediaVideo, MediaMap, MediaFloorPlan,
}

var ValidTokenTypes = []string{
	TokenParticipation, TokenOwnership, TokenReward,
}

func contains(valid []string, value string) bool {
	for _, v := range valid {
		if v == value {
			return true
		}
	}
	return false
}

// Helper functions for validation
func IsValidProjectType(t string) bool        { return contains(ValidProjectTypes, t) }
func IsValidProjectStatus(s string) bool      { return contains(ValidProjectStatuses, s) }
func IsValidOwnershipType(t string) bool      { return contains(ValidOwnershipTypes, t) }
func IsValidUnderfundingPolicy(p string) bool { return contains(ValidUnderfundingPolicies, p) }
func IsValidRevenueType(t string) bool        { return contains(ValidRevenueTypes, t) }
func IsValidReturnType(t string) bool         { return contains(ValidReturnTypes, t) }
func IsValidPayoutFrequency(f string) bool    { return contains(ValidPayoutFrequencies, f) }
func IsValidFeeType(t string) bool            { return contains(ValidFeeTypes, t) }
func IsValidMilestoneStatus(s string) bool    { return contains(ValidMilestoneStatuses, s) }
func IsValidDocumentType(t string) bool       { return contains(ValidDocumentTypes, t) }
func IsValidMediaType(t string) bool          { return contains(ValidMediaTypes, t) }
func IsValidTokenType(t string) bool          { return contains(ValidTokenTypes, t) }
