package models

import "time"

// ============================================
// Request models
// ============================================

// CreateProjectRequest is the raw wizard payload. Monetary and rate fields
// arrive as decimal strings, dates as RFC3339 or YYYY-MM-DD strings; the
// validation package coerces them before anything touches the database.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Summary     string `json:"summary"`
	Type        string `json:"type"`
	Status      string `json:"status"`

	OwnershipType string `json:"ownershipType"`

	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`

	Currency      string `json:"currency"`
	TargetAmount  string `json:"targetAmount"`
	MinInvestment string `json:"minInvestment"`
	MaxInvestment string `json:"maxInvestment"`

	FundingDeadline    string `json:"fundingDeadline"`
	UnderfundingPolicy string `json:"underfundingPolicy"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	ExitDate           string `json:"exitDate"`

	RiskLevel              string `json:"riskLevel"`
	EarlyExitAllowed       bool   `json:"earlyExitAllowed"`
	EarlyExitPenaltyRate   string `json:"earlyExitPenaltyRate"`
	EarlyExitNoticeDays    *int   `json:"earlyExitNoticeDays"`
	SecondaryMarketEnabled bool   `json:"secondaryMarketEnabled"`
	IsFeatured             bool   `json:"isFeatured"`

	RevenueStreams   []RevenueStreamRequest   `json:"revenueStreams"`
	ReturnStructures []ReturnStructureRequest `json:"returnStructures"`
	Fees             []FeeRequest             `json:"fees"`
	Milestones       []MilestoneRequest       `json:"milestones"`
	Documents        []DocumentRequest        `json:"documents"`
	Media            []MediaRequest           `json:"media"`
	Tokens           []TokenRequest           `json:"tokens"`
}

type RevenueStreamRequest struct {
	Type               string `json:"type"`
	Description        string `json:"description"`
	ExpectedReturnRate string `json:"expectedReturnRate"`
	IsActive           *bool  `json:"isActive"`
}

type ReturnStructureRequest struct {
	Type            string `json:"type"`
	Rate            string `json:"rate"`
	PayoutFrequency string `json:"payoutFrequency"`
	Description     string `json:"description"`
	IsActive        *bool  `json:"isActive"`
}

type FeeRequest struct {
	Type        string `json:"type"`
	Rate        string `json:"rate"`
	FixedAmount string `json:"fixedAmount"`
	Description string `json:"description"`
}

type MilestoneRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	TargetDate  string `json:"targetDate"`
	SortOrder   int    `json:"sortOrder"`
}

type DocumentRequest struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	MimeType   string `json:"mimeType"`
	SignedBy   string `json:"signedBy"`
	VerifiedBy string `json:"verifiedBy"`
	IsPublic   bool   `json:"isPublic"`
}

type MediaRequest struct {
	Type      string `json:"type"`
	URL       string `json:"url"`
	AltText   string `json:"altText"`
	SortOrder int    `json:"sortOrder"`
	IsCover   bool   `json:"isCover"`
}

type TokenRequest struct {
	TokenType       string                 `json:"tokenType"`
	Name            string                 `json:"name"`
	TotalSupply     string                 `json:"totalSupply"`
	AvailableSupply string                 `json:"availableSupply"`
	PricePerToken   string                 `json:"pricePerToken"`
	Currency        string                 `json:"currency"`
	IsTradeable     bool                   `json:"isTradeable"`
	Metadata        map[string]interface{} `json:"metadata"`
}

// ============================================
// List / filter models
// ============================================

type ProjectListQuery struct {
	Type       string `form:"type"`
	Status     string `form:"status"`
	IsFeatured *bool  `form:"isFeatured"`
	Search     string `form:"search"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

type AdminProjectFilter struct {
	Type          string `form:"type"`
	Status        string `form:"status"`
	OwnershipType string `form:"ownershipType"`

	IsFeatured             *bool `form:"isFeatured"`
	EarlyExitAllowed       *bool `form:"earlyExitAllowed"`
	SecondaryMarketEnabled *bool `form:"secondaryMarketEnabled"`

	City    string `form:"city"`
	State   string `form:"state"`
	Country string `form:"country"`

	CreatedAfter  string `form:"createdAfter"`
	CreatedBefore string `form:"createdBefore"`

	MinTargetAmount string `form:"minTargetAmount"`
	MaxTargetAmount string `form:"maxTargetAmount"`

	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
}

type AdminProjectSearch struct {
	Query  string `form:"query"`
	Type   string `form:"type"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// ============================================
// Response models
// ============================================

type ProjectResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   *string `json:"description,omitempty"`
	Summary       *string `json:"summary,omitempty"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	OwnershipType *string `json:"ownershipType,omitempty"`

	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Country   *string `json:"country,omitempty"`
	Latitude  *string `json:"latitude,omitempty"`
	Longitude *string `json:"longitude,omitempty"`

	Currency      string  `json:"currency"`
	TargetAmount  string  `json:"targetAmount"`
	RaisedAmount  string  `json:"raisedAmount"`
	MinInvestment *string `json:"minInvestment,omitempty"`
	MaxInvestment *string `json:"maxInvestment,omitempty"`

	FundingDeadline    *time.Time `json:"fundingDeadline,omitempty"`
	UnderfundingPolicy string     `json:"underfundingPolicy"`
	StartDate          *time.Time `json:"startDate,omitempty"`
	EndDate            *time.Time `json:"endDate,omitempty"`
	ExitDate           *time.Time `json:"exitDate,omitempty"`

	RiskLevel              *string `json:"riskLevel,omitempty"`
	EarlyExitAllowed       bool    `json:"earlyExitAllowed"`
	EarlyExitPenaltyRate   *string `json:"earlyExitPenaltyRate,omitempty"`
	EarlyExitNoticeDays    *int    `json:"earlyExitNoticeDays,omitempty"`
	SecondaryMarketEnabled bool    `json:"secondaryMarketEnabled"`
	IsFeatured             bool    `json:"isFeatured"`

	CreatedBy *string   `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	RevenueStreams   []RevenueStreamResponse   `json:"revenueStreams"`
	ReturnStructures []ReturnStructureResponse `json:"returnStructures"`
	Fees             []FeeResponse             `json:"fees"`
	Milestones       []MilestoneResponse       `json:"milestones"`
	Documents        []DocumentResponse        `json:"documents"`
	Media            []MediaResponse           `json:"media"`
	Tokens           []TokenResponse           `json:"tokens"`
}

type RevenueStreamResponse struct {
	ID                 string  `json:"id"`
	ProjectID          string  `json:"projectId"`
	Type               string  `json:"type"`
	Description        *string `json:"description,omitempty"`
	ExpectedReturnRate *string `json:"expectedReturnRate,omitempty"`
	IsActive           bool    `json:"isActive"`
}

type ReturnStructureResponse struct {
	ID              string  `json:"id"`
	ProjectID       string  `json:"projectId"`
	Type            string  `json:"type"`
	Rate            *string `json:"rate,omitempty"`
	PayoutFrequency string  `json:"payoutFrequency"`
	Description     *string `json:"description,omitempty"`
	IsActive        bool    `json:"isActive"`
}

type FeeResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	Type        string  `json:"type"`
	Rate        *string `json:"rate,omitempty"`
	FixedAmount *string `json:"fixedAmount,omitempty"`
	Description *string `json:"description,omitempty"`
}

type MilestoneResponse struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"projectId"`
	Name          string     `json:"name"`
	Description   *string    `json:"description,omitempty"`
	Status        string     `json:"status"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	SortOrder     int        `json:"sortOrder"`
}

type DocumentResponse struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"projectId"`
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	URL        string  `json:"url"`
	MimeType   *string `json:"mimeType,omitempty"`
	SignedBy   *string `json:"signedBy,omitempty"`
	VerifiedBy *string `json:"verifiedBy,omitempty"`
	IsPublic   bool    `json:"isPublic"`
}

type MediaResponse struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Type      string  `json:"type"`
	URL       string  `json:"url"`
	AltText   *string `json:"altText,omitempty"`
	SortOrder int     `json:"sortOrder"`
	IsCover   bool    `json:"isCover"`
}

type TokenResponse struct {
	ID              string                 `json:"id"`
	ProjectID       string                 `json:"projectId"`
	TokenType       string                 `json:"tokenType"`
	Name            string                 `json:"name"`
	TotalSupply     string                 `json:"totalSupply"`
	AvailableSupply string                 `json:"availableSupply"`
	PricePerToken   string                 `json:"pricePerToken"`
	Currency        string                 `json:"currency"`
	IsTradeable     bool                   `json:"isTradeable"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type ProjectListResponse struct {
	Items      []ProjectResponse `json:"items"`
	Pagination Pagination        `json:"pagination"`
}
