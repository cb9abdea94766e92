package validation

import (
	"time"
)

// ProjectDraft is the coerced form of a create payload: empty optional
// strings become nil, date strings become time values, defaults are applied.
// A ProjectDraft only exists for payloads that passed ValidateCreateProject.
type ProjectDraft struct {
	Name          string
	Slug          string
	Description   *string
	Summary       *string
	Type          string
	Status        string
	OwnershipType *string

	Address   *string
	City      *string
	State     *string
	Country   string
	Latitude  *string
	Longitude *string

	Currency      string
	TargetAmount  string
	MinInvestment *string
	MaxInvestment *string

	FundingDeadline    *time.Time
	UnderfundingPolicy string
	StartDate          *time.Time
	EndDate            *time.Time
	ExitDate           *time.Time

	RiskLevel              *string
	EarlyExitAllowed       bool
	EarlyExitPenaltyRate   *string
	EarlyExitNoticeDays    *int
	SecondaryMarketEnabled bool
	IsFeatured             bool

	RevenueStreams   []RevenueStreamDraft
	ReturnStructures []ReturnStructureDraft
	Fees             []FeeDraft
	Milestones       []MilestoneDraft
	Documents        []DocumentDraft
	Media            []MediaDraft
	Tokens           []TokenDraft
}

type RevenueStreamDraft struct {
	Type               string
	Description        *string
	ExpectedReturnRate *string
	IsActive           bool
}

type ReturnStructureDraft struct {
	Type            string
	Rate            *string
	PayoutFrequency string
	Description     *string
	IsActive        bool
}

type FeeDraft struct {
	Type        string
	Rate        *string
	FixedAmount *string
	Description *string
}

type MilestoneDraft struct {
	Name        string
	Description *string
	Status      string
	TargetDate  *time.Time
	SortOrder   int
}

type DocumentDraft struct {
	Type       string
	Name       string
	URL        string
	MimeType   *string
	SignedBy   *string
	VerifiedBy *string
	IsPublic   bool
}

type MediaDraft struct {
	Type      string
	URL       string
	AltText   *string
	SortOrder int
	IsCover   bool
}

type TokenDraft struct {
	TokenType       string
	Name            string
	TotalSupply     string
	AvailableSupply string
	PricePerToken   string
	Currency        string
	IsTradeable     bool
	Metadata        map[string]interface{}
}

// optString turns an empty string into an absent value so optional numeric
// and text columns receive NULL instead of "".
func optString(v string) *string {
	if v == "" {
		return nil
	}
	s := v
	return &s
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
func parseDate(v string) (*time.Time, bool) {
	if v == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, true
		}
	}
	return nil, false
}
