package repository

import (
	"context"
)

func (r *pgProjectRepository) findRevenueStreams(ctx context.Context, projectID string) ([]*RevenueStream, error) {
	query := `
		SELECT id, project_id, type, description, expected_return_rate::text, is_active, created_at, updated_at
		FROM project_revenue_stream
		WHERE project_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*RevenueStream
	for rows.Next() {
		rs := &RevenueStream{}
		if err := rows.Scan(
			&rs.ID, &rs.ProjectID, &rs.Type, &rs.Description, &rs.ExpectedReturnRate,
			&rs.IsActive, &rs.CreatedAt, &rs.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

func (r *pgProjectRepository) findReturnStructures(ctx context.Context, projectID string) ([]*ReturnStructure, error) {
	query := `
		SELECT id, project_id, type, rate::text, payout_frequency, description, is_active, created_at, updated_at
		FROM project_return_structure
		WHERE project_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ReturnStructure
	for rows.Next() {
		rs := &ReturnStructure{}
		if err := rows.Scan(
			&rs.ID, &rs.ProjectID, &rs.Type, &rs.Rate, &rs.PayoutFrequency,
			&rs.Description, &rs.IsActive, &rs.CreatedAt, &rs.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

func (r *pgProjectRepository) findFees(ctx context.Context, projectID string) ([]*Fee, error) {
	query := `
		SELECT id, project_id, type, rate::text, fixed_amount::text, description, created_at, updated_at
		FROM project_fee
		WHERE project_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Fee
	for rows.Next() {
		f := &Fee{}
		if err := rows.Scan(
			&f.ID, &f.ProjectID, &f.Type, &f.Rate, &f.FixedAmount,
			&f.Description, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *pgProjectRepository) findMilestones(ctx context.Context, projectID string) ([]*Milestone, error) {
	query := `
		SELECT id, project_id, name, description, status, target_date, completed_date, sort_order, created_at, updated_at
		FROM project_milestone
		WHERE project_id = $1
		ORDER BY sort_order, created_at
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Milestone
	for rows.Next() {
		m := &Milestone{}
		if err := rows.Scan(
			&m.ID, &m.ProjectID, &m.Name, &m.Description, &m.Status,
			&m.TargetDate, &m.CompletedDate, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *pgProjectRepository) findDocuments(ctx context.Context, projectID string) ([]*Document, error) {
	query := `
		SELECT id, project_id, type, name, url, mime_type, signed_by, verified_by, is_public, created_at, updated_at
		FROM project_document
		WHERE project_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Document
	for rows.Next() {
		d := &Document{}
		if err := rows.Scan(
			&d.ID, &d.ProjectID, &d.Type, &d.Name, &d.URL, &d.MimeType,
			&d.SignedBy, &d.VerifiedBy, &d.IsPublic, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *pgProjectRepository) findMedia(ctx context.Context, projectID string) ([]*Media, error) {
	query := `
		SELECT id, project_id, type, url, alt_text, sort_order, is_cover, created_at, updated_at
		FROM project_media
		WHERE project_id = $1
		ORDER BY sort_order, created_at
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Media
	for rows.Next() {
		m := &Media{}
		if err := rows.Scan(
			&m.ID, &m.ProjectID, &m.Type, &m.URL, &m.AltText,
			&m.SortOrder, &m.IsCover, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *pgProjectRepository) findTokens(ctx context.Context, projectID string) ([]*Token, error) {
	query := `
		SELECT id, project_id, token_type, name, total_supply::text, available_supply::text, price_per_token::text,
		       currency, is_tradeable, metadata, created_at, updated_at
		FROM project_token
		WHERE project_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Token
	for rows.Next() {
		t := &Token{}
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.TokenType, &t.Name, &t.TotalSupply, &t.AvailableSupply,
			&t.PricePerToken, &t.Currency, &t.IsTradeable, &t.Metadata, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
