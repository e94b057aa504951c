package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/recruitment-service/internal/domain"
)

// PassFilter captures staff search parameters for pass listings.
type PassFilter struct {
	Stage      *string
	Status     *string
	SearchTerm *string
	Limit      int
	Offset     int
}

// PassRepository encapsulates recruitment pass persistence. Stage and status
// are stored raw; normalization happens in the workflow layer on read.
type PassRepository interface {
	Create(ctx context.Context, pass *domain.RecruitmentPass) error
	GetByID(ctx context.Context, id string) (*domain.RecruitmentPass, error)
	GetByNumber(ctx context.Context, passNumber string) (*domain.RecruitmentPass, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RecruitmentPass, error)
	ListWithFilter(ctx context.Context, filter PassFilter) ([]domain.RecruitmentPass, error)
	UpdateStage(ctx context.Context, id, stage, status string) error
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStage(ctx context.Context) (map[string]int, error)
}

type passRepository struct {
	pool *pgxpool.Pool
}

// NewPassRepository instantiates repository.
func NewPassRepository(pool *pgxpool.Pool) PassRepository {
	return &passRepository{pool: pool}
}

const passColumns = `id, pass_number, candidate_name, candidate_email, position_title, stage, status, pass_token_hash, created_at, updated_at`

func (r *passRepository) Create(ctx context.Context, pass *domain.RecruitmentPass) error {
	const query = `
        INSERT INTO recruitment_passes (pass_number, candidate_name, candidate_email, position_title, stage, status, pass_token_hash)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		pass.PassNumber,
		pass.CandidateName,
		pass.CandidateEmail,
		pass.PositionTitle,
		pass.Stage,
		pass.Status,
		pass.TokenHash,
	).Scan(&pass.ID, &pass.CreatedAt, &pass.UpdatedAt)
}

func (r *passRepository) GetByID(ctx context.Context, id string) (*domain.RecruitmentPass, error) {
	query := fmt.Sprintf(`SELECT %s FROM recruitment_passes WHERE id=$1`, passColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *passRepository) GetByNumber(ctx context.Context, passNumber string) (*domain.RecruitmentPass, error) {
	query := fmt.Sprintf(`SELECT %s FROM recruitment_passes WHERE pass_number=$1`, passColumns)
	return r.fetchSingle(ctx, query, passNumber)
}

func (r *passRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RecruitmentPass, error) {
	query := fmt.Sprintf(`SELECT %s FROM recruitment_passes WHERE pass_token_hash=$1`, passColumns)
	return r.fetchSingle(ctx, query, tokenHash)
}

func (r *passRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.RecruitmentPass, error) {
	var pass domain.RecruitmentPass
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&pass.ID,
		&pass.PassNumber,
		&pass.CandidateName,
		&pass.CandidateEmail,
		&pass.PositionTitle,
		&pass.Stage,
		&pass.Status,
		&pass.TokenHash,
		&pass.CreatedAt,
		&pass.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *passRepository) ListWithFilter(ctx context.Context, filter PassFilter) ([]domain.RecruitmentPass, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Stage != nil {
		args = append(args, *filter.Stage)
		clauses = append(clauses, fmt.Sprintf("stage=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.SearchTerm != nil && strings.TrimSpace(*filter.SearchTerm) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.SearchTerm)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf("(LOWER(candidate_name) LIKE %s OR LOWER(position_title) LIKE %s OR LOWER(pass_number) LIKE %s)", placeholder, placeholder, placeholder))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s FROM recruitment_passes WHERE %s ORDER BY updated_at DESC LIMIT %d OFFSET %d`,
		passColumns, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPasses(rows)
}

func (r *passRepository) UpdateStage(ctx context.Context, id, stage, status string) error {
	const query = `UPDATE recruitment_passes SET stage=$1, status=$2, updated_at=NOW() WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, stage, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *passRepository) UpdateStatus(ctx context.Context, id, status string) error {
	const query = `UPDATE recruitment_passes SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *passRepository) CountByStage(ctx context.Context) (map[string]int, error) {
	const query = `SELECT stage, COUNT(*) FROM recruitment_passes GROUP BY stage`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var stage string
		var count int
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, err
		}
		counts[stage] = count
	}
	return counts, rows.Err()
}

func scanPasses(rows pgx.Rows) ([]domain.RecruitmentPass, error) {
	var result []domain.RecruitmentPass
	for rows.Next() {
		var pass domain.RecruitmentPass
		if err := rows.Scan(
			&pass.ID,
			&pass.PassNumber,
			&pass.CandidateName,
			&pass.CandidateEmail,
			&pass.PositionTitle,
			&pass.Stage,
			&pass.Status,
			&pass.TokenHash,
			&pass.CreatedAt,
			&pass.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, pass)
	}
	return result, rows.Err()
}
