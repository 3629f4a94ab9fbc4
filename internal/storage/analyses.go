package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/quillhaven/severance-compass/internal/common"
	"github.com/quillhaven/severance-compass/internal/model"
)

// SaveAnalysis persists one analysis run and returns its row ID.
func (s *SQLiteStorage) SaveAnalysis(ctx context.Context, analysis *model.SavedAnalysis) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if analysis == nil {
		return 0, fmt.Errorf("analysis cannot be nil")
	}

	estimateJSON, err := json.Marshal(analysis.Estimate)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal estimate: %w", err)
	}

	var analysisJSON []byte
	var recommendedOption *string
	if analysis.Analysis != nil {
		analysisJSON, err = json.Marshal(analysis.Analysis)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal cost analysis: %w", err)
		}
		opt := string(analysis.Analysis.Recommended.Type)
		recommendedOption = &opt
	}

	createdAt := analysis.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var potentialGap float64
	if analysis.Analysis != nil {
		potentialGap = analysis.Analysis.PotentialGap
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (
			created_at, jurisdiction, years_of_service, months_of_service,
			age_bracket, position, annual_salary, union_member,
			employer_payroll, current_offer, potential_gap,
			recommended_option, estimate_json, analysis_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		createdAt,
		analysis.Profile.Jurisdiction,
		analysis.Profile.YearsOfService,
		analysis.Profile.MonthsOfService,
		string(analysis.Profile.AgeBracket),
		string(analysis.Profile.Position),
		analysis.Profile.AnnualSalary,
		analysis.Profile.UnionMember,
		analysis.Profile.EmployerPayroll,
		analysis.Profile.CurrentOffer,
		potentialGap,
		recommendedOption,
		string(estimateJSON),
		nullableString(analysisJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis id: %w", err)
	}
	return id, nil
}

// GetAnalysis loads one saved analysis by ID.
func (s *SQLiteStorage) GetAnalysis(ctx context.Context, id int64) (*model.SavedAnalysis, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, jurisdiction, years_of_service, months_of_service,
			age_bracket, position, annual_salary, union_member,
			employer_payroll, current_offer, estimate_json, analysis_json
		FROM analyses WHERE id = ?
	`, id)

	saved, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("analysis %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ListAnalyses returns saved analyses, newest first.
func (s *SQLiteStorage) ListAnalyses(ctx context.Context, limit int) ([]model.SavedAnalysis, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, jurisdiction, years_of_service, months_of_service,
			age_bracket, position, annual_salary, union_member,
			employer_payroll, current_offer, estimate_json, analysis_json
		FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var analyses []model.SavedAnalysis
	for rows.Next() {
		saved, scanErr := scanAnalysis(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		analyses = append(analyses, *saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}

	return analyses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*model.SavedAnalysis, error) {
	var (
		saved        model.SavedAnalysis
		ageBracket   string
		position     string
		estimateJSON string
		analysisJSON sql.NullString
	)

	err := row.Scan(
		&saved.ID,
		&saved.CreatedAt,
		&saved.Profile.Jurisdiction,
		&saved.Profile.YearsOfService,
		&saved.Profile.MonthsOfService,
		&ageBracket,
		&position,
		&saved.Profile.AnnualSalary,
		&saved.Profile.UnionMember,
		&saved.Profile.EmployerPayroll,
		&saved.Profile.CurrentOffer,
		&estimateJSON,
		&analysisJSON,
	)
	if err != nil {
		return nil, err
	}

	saved.Profile.AgeBracket = model.AgeBracket(ageBracket)
	saved.Profile.Position = model.Position(position)

	if err := json.Unmarshal([]byte(estimateJSON), &saved.Estimate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal estimate: %w", err)
	}
	if analysisJSON.Valid {
		var analysis model.CostAnalysis
		if err := json.Unmarshal([]byte(analysisJSON.String), &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cost analysis: %w", err)
		}
		saved.Analysis = &analysis
	}

	return &saved, nil
}

func nullableString(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
