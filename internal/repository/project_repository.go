package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListOptions is the filter/sort/pagination surface shared by the admin and
// investor listings.
type ListOptions struct {
	Type          string
	Status        string
	OwnershipType string

	IsFeatured             *bool
	EarlyExitAllowed       *bool
	SecondaryMarketEnabled *bool

	City    string
	State   string
	Country string

	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	MinTargetAmount string
	MaxTargetAmount string

	// Search matches name, slug and description (case-insensitive).
	Search string

	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

type ProjectRepository interface {
	// CreateWithChildren persists the root and all child collections as one
	// transaction. IDs are generated here; agg is updated in place.
	CreateWithChildren(ctx context.Context, agg *ProjectAggregate) error

	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
	FindAggregateByID(ctx context.Context, id string) (*ProjectAggregate, error)
	List(ctx context.Context, opts ListOptions) ([]*Project, int64, error)

	UpdateStatus(ctx context.Context, id, status string) error
	ExtendFundingDeadline(ctx context.Context, id string, deadline time.Time) error
	FindExpiredFunding(ctx context.Context, asOf time.Time) ([]*Project, error)
}

type pgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &pgProjectRepository{pool: pool}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The slug pre-check is an optimization; this is the backstop
// that makes the uniqueness guarantee authoritative under races.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Numeric columns are cast to text so decimal values round-trip as strings.
const projectColumns = `
	id, name, slug, description, summary, type, status, ownership_type,
	address, city, state, country, latitude::text, longitude::text,
	currency, target_amount::text, raised_amount::text, min_investment::text, max_investment::text,
	funding_deadline, underfunding_policy, start_date, end_date, exit_date,
	risk_level, early_exit_allowed, early_exit_penalty_rate::text, early_exit_notice_days,
	secondary_market_enabled, is_featured, created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*Project, error) {
	p := &Project{}
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Summary, &p.Type, &p.Status, &p.OwnershipType,
		&p.Address, &p.City, &p.State, &p.Country, &p.Latitude, &p.Longitude,
		&p.Currency, &p.TargetAmount, &p.RaisedAmount, &p.MinInvestment, &p.MaxInvestment,
		&p.FundingDeadline, &p.UnderfundingPolicy, &p.StartDate, &p.EndDate, &p.ExitDate,
		&p.RiskLevel, &p.EarlyExitAllowed, &p.EarlyExitPenaltyRate, &p.EarlyExitNoticeDays,
		&p.SecondaryMarketEnabled, &p.IsFeatured, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProjectRepository) CreateWithChildren(ctx context.Context, agg *ProjectAggregate) error {
	p := agg.Project
	p.ID = uuid.New().String()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO project (
			id, name, slug, description, summary, type, status, ownership_type,
			address, city, state, country, latitude, longitude,
			currency, target_amount, min_investment, max_investment,
			funding_deadline, underfunding_policy, start_date, end_date, exit_date,
			risk_level, early_exit_allowed, early_exit_penalty_rate, early_exit_notice_days,
			secondary_market_enabled, is_featured, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		RETURNING raised_amount::text, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Summary, p.Type, p.Status, p.OwnershipType,
		p.Address, p.City, p.State, p.Country, p.Latitude, p.Longitude,
		p.Currency, p.TargetAmount, p.MinInvestment, p.MaxInvestment,
		p.FundingDeadline, p.UnderfundingPolicy, p.StartDate, p.EndDate, p.ExitDate,
		p.RiskLevel, p.EarlyExitAllowed, p.EarlyExitPenaltyRate, p.EarlyExitNoticeDays,
		p.SecondaryMarketEnabled, p.IsFeatured, p.CreatedBy,
	).Scan(&p.RaisedAmount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}

	for _, rs := range agg.RevenueStreams {
		rs.ID = uuid.New().String()
		rs.ProjectID = p.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO project_revenue_stream (id, project_id, type, description, expected_return_rate, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			rs.ID, rs.ProjectID, rs.Type, rs.Description, rs.ExpectedReturnRate, rs.IsActive,
		)
		if err != nil {
			return err
		}
	}

	for _, rs := range agg.ReturnStructures {
		rs.ID = uuid.New().String()
		rs.ProjectID = p.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO project_return_structure (id, project_id, type, rate, payout_frequency, description, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rs.ID, rs.ProjectID, rs.Type, rs.Rate, rs.PayoutFrequency, rs.Description, rs.IsActive,
		)
		if err != nil {
			return err
		}
	}

	for _, f := range agg.Fees {
		f.ID = uuid.New().String()
		f.ProjectID = p.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO project_fee (id, project_id, type, rate, fixed_amount, description)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			f.ID, f.ProjectID, f.Type, f.Rate, f.FixedAmount, f.Description,
		)
		if err != nil {
			return err
		}
	}

	for _, m := range agg.Milestones {
		m.ID = uuid.New().String()
		m.ProjectID = p.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO project_milestone (id, project_id, name, description, status, target_date, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.ID, m.ProjectID, m.Name, m.Description, m.Status, m.TargetDate, m.SortOrder,
		)
		if err != nil {
			return err
		}
	}

	for _, d := range agg.Documents {
		d.ID = uuid.New().String()
		d.ProjectID = p.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO project_document (id, project_id, type, name, url, mime_type, signed_by, verified_by, is_public)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			d.ID, d.ProjectID, d.Type, d.Name, d.URL, d.MimeType, d.SignedBy, d.VerifiedBy, d.IsPublic,
		)
		if err != nil {
			return err
		}
	}

	for _, m := range agg.Media {
		m.ID = uuid.New().String()
		m.ProjectID = p.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO project_media (id, project_id, type, url, alt_text, sort_order, is_cover)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.ID, m.ProjectID, m.Type, m.URL, m.AltText, m.SortOrder, m.IsCover,
		)
		if err != nil {
			return err
		}
	}

	for _, t := range agg.Tokens {
		t.ID = uuid.New().String()
		t.ProjectID = p.ID
		_, err = tx.Exec(ctx, `
			INSERT INTO project_token (id, project_id, token_type, name, total_supply, available_supply, price_per_token, currency, is_tradeable, metadata)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			t.ID, t.ProjectID, t.TokenType, t.Name, t.TotalSupply, t.AvailableSupply, t.PricePerToken, t.Currency, t.IsTradeable, t.Metadata,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *pgProjectRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM project WHERE slug = $1)`, slug,
	).Scan(&exists)
	return exists, err
}

func (r *pgProjectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM project WHERE id = $1`
	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProjectRepository) FindBySlug(ctx context.Context, slug string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM project WHERE slug = $1`
	p, err := scanProject(r.pool.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProjectRepository) FindAggregateByID(ctx context.Context, id string) (*ProjectAggregate, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}

	agg := &ProjectAggregate{Project: p}
	if agg.RevenueStreams, err = r.findRevenueStreams(ctx, id); err != nil {
		return nil, err
	}
	if agg.ReturnStructures, err = r.findReturnStructures(ctx, id); err != nil {
		return nil, err
	}
	if agg.Fees, err = r.findFees(ctx, id); err != nil {
		return nil, err
	}
	if agg.Milestones, err = r.findMilestones(ctx, id); err != nil {
		return nil, err
	}
	if agg.Documents, err = r.findDocuments(ctx, id); err != nil {
		return nil, err
	}
	if agg.Media, err = r.findMedia(ctx, id); err != nil {
		return nil, err
	}
	if agg.Tokens, err = r.findTokens(ctx, id); err != nil {
		return nil, err
	}
	return agg, nil
}

// Sortable columns, whitelisted so user input never reaches the ORDER BY.
var sortColumns = map[string]string{
	"name":         "name",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
	"targetAmount": "target_amount",
	"raisedAmount": "raised_amount",
	"status":       "status",
	"type":         "type",
}

func (r *pgProjectRepository) List(ctx context.Context, opts ListOptions) ([]*Project, int64, error) {
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if opts.Type != "" {
		conditions = append(conditions, "type = "+arg(opts.Type))
	}
	if opts.Status != "" {
		conditions = append(conditions, "status = "+arg(opts.Status))
	}
	if opts.OwnershipType != "" {
		conditions = append(conditions, "ownership_type = "+arg(opts.OwnershipType))
	}
	if opts.IsFeatured != nil {
		conditions = append(conditions, "is_featured = "+arg(*opts.IsFeatured))
	}
	if opts.EarlyExitAllowed != nil {
		conditions = append(conditions, "early_exit_allowed = "+arg(*opts.EarlyExitAllowed))
	}
	if opts.SecondaryMarketEnabled != nil {
		conditions = append(conditions, "secondary_market_enabled = "+arg(*opts.SecondaryMarketEnabled))
	}
	if opts.City != "" {
		conditions = append(conditions, "city ILIKE "+arg("%"+opts.City+"%"))
	}
	if opts.State != "" {
		conditions = append(conditions, "state ILIKE "+arg("%"+opts.State+"%"))
	}
	if opts.Country != "" {
		conditions = append(conditions, "country ILIKE "+arg("%"+opts.Country+"%"))
	}
	if opts.CreatedAfter != nil {
		conditions = append(conditions, "created_at >= "+arg(*opts.CreatedAfter))
	}
	if opts.CreatedBefore != nil {
		conditions = append(conditions, "created_at <= "+arg(*opts.CreatedBefore))
	}
	if opts.MinTargetAmount != "" {
		conditions = append(conditions, "target_amount >= "+arg(opts.MinTargetAmount)+"::numeric")
	}
	if opts.MaxTargetAmount != "" {
		conditions = append(conditions, "target_amount <= "+arg(opts.MaxTargetAmount)+"::numeric")
	}
	if opts.Search != "" {
		pattern := "%" + strings.TrimSpace(opts.Search) + "%"
		ph := arg(pattern)
		conditions = append(conditions,
			"(name ILIKE "+ph+" OR slug ILIKE "+ph+" OR description ILIKE "+ph+")")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM project"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortCol, ok := sortColumns[opts.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(opts.SortOrder, "asc") {
		direction = "ASC"
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(
		"SELECT %s FROM project%s ORDER BY %s %s LIMIT %s OFFSET %s",
		projectColumns, where, sortCol, direction, arg(limit), arg(opts.Offset),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}
	return projects, total, rows.Err()
}

func (r *pgProjectRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE project SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status)
	return err
}

func (r *pgProjectRepository) ExtendFundingDeadline(ctx context.Context, id string, deadline time.Time) error {
	query := `UPDATE project SET funding_deadline = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, deadline)
	return err
}

// FindExpiredFunding returns FUNDING projects whose deadline passed without
// reaching the target amount.
func (r *pgProjectRepository) FindExpiredFunding(ctx context.Context, asOf time.Time) ([]*Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM project
		WHERE status = 'FUNDING'
		  AND funding_deadline IS NOT NULL
		  AND funding_deadline < $1
		  AND raised_amount < target_amount
		ORDER BY funding_deadline
	`
	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
