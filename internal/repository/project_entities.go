package repository

import "time"

// Project is the root entity of the investment aggregate. Monetary columns
// are Postgres numerics carried as decimal strings, never floats.
type Project struct {
	ID            string
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
	Country   *string
	Latitude  *string
	Longitude *string

	Currency      string
	TargetAmount  string
	RaisedAmount  string
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

	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RevenueStream struct {
	ID                 string
	ProjectID          string
	Type               string
	Description        *string
	ExpectedReturnRate *string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ReturnStructure struct {
	ID              string
	ProjectID       string
	Type            string
	Rate            *string
	PayoutFrequency string
	Description     *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Fee struct {
	ID          string
	ProjectID   string
	Type        string
	Rate        *string
	FixedAmount *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Milestone struct {
	ID            string
	ProjectID     string
	Name          string
	Description   *string
	Status        string
	TargetDate    *time.Time
	CompletedDate *time.Time
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Document struct {
	ID         string
	ProjectID  string
	Type       string
	Name       string
	URL        string
	MimeType   *string
	SignedBy   *string
	VerifiedBy *string
	IsPublic   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Media struct {
	ID        string
	ProjectID string
	Type      string
	URL       string
	AltText   *string
	SortOrder int
	IsCover   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Token struct {
	ID              string
	ProjectID       string
	TokenType       string
	Name            string
	TotalSupply     string
	AvailableSupply string
	PricePerToken   string
	Currency        string
	IsTradeable     bool
	Metadata        map[string]interface{}
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProjectAggregate is the root plus its seven child collections, treated as
// one consistency unit by the writer.
type ProjectAggregate struct {
	Project          *Project
	RevenueStreams   []*RevenueStream
	ReturnStructures []*ReturnStructure
	Fees             []*Fee
	Milestones       []*Milestone
	Documents        []*Document
	Media            []*Media
	Tokens           []*Token
}
