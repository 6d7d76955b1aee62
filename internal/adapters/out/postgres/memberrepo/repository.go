package memberrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
)

// GormMemberRepository implements MemberRepository using GORM.
type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormMemberRepository creates a new GORM member repository.
func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new member and assigns the database-generated id to the
// aggregate. A login id unique violation is reported as a duplicate-value
// error; the uniqueness decision is left to the database so concurrent
// signups cannot race past an application-level check.
func (r *GormMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewDuplicateValueErrorWithCause("loginId", aggregate.LoginID(), err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves a member by its database-generated id.
func (r *GormMemberRepository) GetByID(ctx context.Context, id int64) (*member.Member, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("memberId")
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("memberId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLoginID retrieves a member by its unique login id.
func (r *GormMemberRepository) GetByLoginID(ctx context.Context, loginID string) (*member.Member, error) {
	if loginID == "" {
		return nil, errs.NewValueIsRequiredError("loginId")
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "login_id = ?", loginID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loginId", loginID)
		}
		return nil, err
	}

	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
