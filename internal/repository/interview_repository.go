package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/recruitment-service/internal/domain"
	apperrors "github.com/spec-kit/recruitment-service/pkg/util"
)

// ErrSlotTaken surfaces verbatim to the losing candidate of a booking race.
var ErrSlotTaken = apperrors.NewConflict("This slot has already been booked by another candidate", nil)

// InterviewRepository persists interviews and their slot lists. Slot writes
// follow two rules: availability is replaced as one atomic batch, and a
// booking claim is a compare-and-set that at most one candidate can win.
type InterviewRepository interface {
	Create(ctx context.Context, interview *domain.Interview) error
	GetByID(ctx context.Context, id string) (*domain.Interview, error)
	GetLatestForPass(ctx context.Context, passID string) (*domain.Interview, error)
	UpdateStatus(ctx context.Context, id string, status domain.InterviewStatus) error
	UpdateLogistics(ctx context.Context, id, location, meetingLink string) error
	ListSlots(ctx context.Context, interviewID string) ([]domain.InterviewSlot, error)
	ReplaceSlots(ctx context.Context, interviewID string, slots []domain.InterviewSlot) error
	BookSlot(ctx context.Context, interviewID, slotID, candidateID, candidateName string) error
	UnbookSlot(ctx context.Context, interviewID, slotID string) error
	CountPendingEvaluations(ctx context.Context, passID string) (int, error)
}

type interviewRepository struct {
	pool *pgxpool.Pool
}

// NewInterviewRepository instantiates repository.
func NewInterviewRepository(pool *pgxpool.Pool) InterviewRepository {
	return &interviewRepository{pool: pool}
}

const interviewColumns = `id, pass_id, round, interview_type, status, location, meeting_link, created_at, updated_at`

func (r *interviewRepository) Create(ctx context.Context, interview *domain.Interview) error {
	const query = `
        INSERT INTO interviews (pass_id, round, interview_type, status, location, meeting_link)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		interview.PassID,
		interview.Round,
		interview.Type,
		interview.Status,
		interview.Location,
		interview.MeetingLink,
	).Scan(&interview.ID, &interview.CreatedAt, &interview.UpdatedAt)
}

func (r *interviewRepository) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *interviewRepository) GetLatestForPass(ctx context.Context, passID string) (*domain.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE pass_id=$1 ORDER BY round DESC LIMIT 1`
	return r.fetchSingle(ctx, query, passID)
}

func (r *interviewRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Interview, error) {
	var iv domain.Interview
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&iv.ID,
		&iv.PassID,
		&iv.Round,
		&iv.Type,
		&iv.Status,
		&iv.Location,
		&iv.MeetingLink,
		&iv.CreatedAt,
		&iv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepository) UpdateStatus(ctx context.Context, id string, status domain.InterviewStatus) error {
	const query = `UPDATE interviews SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *interviewRepository) UpdateLogistics(ctx context.Context, id, location, meetingLink string) error {
	const query = `UPDATE interviews SET location=$1, meeting_link=$2, updated_at=NOW() WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, location, meetingLink, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *interviewRepository) ListSlots(ctx context.Context, interviewID string) ([]domain.InterviewSlot, error) {
	const query = `
        SELECT id, start_at, end_at, is_booked, booked_by, candidate_name, booked_at
        FROM interview_slots WHERE interview_id=$1 ORDER BY start_at ASC`
	rows, err := r.pool.Query(ctx, query, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.InterviewSlot
	for rows.Next() {
		var slot domain.InterviewSlot
		if err := rows.Scan(
			&slot.ID,
			&slot.Start,
			&slot.End,
			&slot.IsBooked,
			&slot.BookedBy,
			&slot.CandidateName,
			&slot.BookedAt,
		); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// ReplaceSlots swaps the interview's slot list for the submitted batch inside
// one transaction. Full replacement rather than a diff keeps concurrent
// manager edits from interleaving into a partially-updated list.
func (r *interviewRepository) ReplaceSlots(ctx context.Context, interviewID string, slots []domain.InterviewSlot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM interview_slots WHERE interview_id=$1`, interviewID); err != nil {
		return err
	}

	const insert = `
        INSERT INTO interview_slots (id, interview_id, start_at, end_at, is_booked, booked_by, candidate_name, booked_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	for _, slot := range slots {
		if _, err := tx.Exec(ctx, insert,
			slot.ID,
			interviewID,
			slot.Start,
			slot.End,
			slot.IsBooked,
			slot.BookedBy,
			slot.CandidateName,
			slot.BookedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// BookSlot claims a slot for a candidate with a compare-and-set on
// is_booked=false. When the guarded update matches no row, the slot is either
// gone or already claimed; the distinction decides the error returned so the
// candidate UI can tell "pick another slot" from "slot vanished".
func (r *interviewRepository) BookSlot(ctx context.Context, interviewID, slotID, candidateID, candidateName string) error {
	const claim = `
        UPDATE interview_slots
        SET is_booked=TRUE, booked_by=$1, candidate_name=$2, booked_at=NOW()
        WHERE id=$3 AND interview_id=$4 AND is_booked=FALSE`
	cmd, err := r.pool.Exec(ctx, claim, candidateID, candidateName, slotID, interviewID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM interview_slots WHERE id=$1 AND interview_id=$2)`,
		slotID, interviewID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrSlotTaken
	}
	return apperrors.NewNotFound("slot", map[string]any{"slot_id": slotID})
}

// UnbookSlot releases a booking. HR-only; authorization is enforced by the
// service layer.
func (r *interviewRepository) UnbookSlot(ctx context.Context, interviewID, slotID string) error {
	const query = `
        UPDATE interview_slots
        SET is_booked=FALSE, booked_by=NULL, candidate_name=NULL, booked_at=NULL
        WHERE id=$1 AND interview_id=$2`
	cmd, err := r.pool.Exec(ctx, query, slotID, interviewID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *interviewRepository) CountPendingEvaluations(ctx context.Context, passID string) (int, error) {
	const query = `SELECT COUNT(*) FROM interviews WHERE pass_id=$1 AND status=$2`
	var count int
	if err := r.pool.QueryRow(ctx, query, passID, domain.InterviewFeedbackPending).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
