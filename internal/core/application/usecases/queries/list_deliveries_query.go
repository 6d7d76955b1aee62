package queries

import (
	"errors"
	"fmt"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/kernel"
	"github.com/hankkuu/delivery-demo/internal/pkg/errs"
	"github.com/hankkuu/delivery-demo/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// Paging bounds for the delivery list.
const (
	PageSizeDefault = 20
	PageSizeMax     = 200
)

// ListDeliveriesQuery retrieves the caller's deliveries requested within a
// bounded period, newest first, with offset paging. The period length limit is
// enforced by kernel.NewPeriod, which every caller must go through.
type ListDeliveriesQuery struct { //nolint:recvcheck //using for validation
	memberID int64
	period   kernel.Period
	page     int
	size     int

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a delivery list query. A non-positive size
// falls back to PageSizeDefault; page numbering starts at zero.
func NewListDeliveriesQuery(
	memberID int64, period kernel.Period, page, size int,
) (ListDeliveriesQuery, error) {
	if size <= 0 {
		size = PageSizeDefault
	}

	q := ListDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setMemberID(memberID),
		q.setPeriod(period),
		q.setPage(page),
		q.setSize(size),
	); err != nil {
		return ListDeliveriesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// MemberID returns the authenticated caller's member id.
func (q ListDeliveriesQuery) MemberID() int64 {
	return q.memberID
}

// Period returns the requested-at window to search.
func (q ListDeliveriesQuery) Period() kernel.Period {
	return q.period
}

// Page returns the zero-based page number.
func (q ListDeliveriesQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListDeliveriesQuery) Size() int {
	return q.size
}

func (q *ListDeliveriesQuery) setMemberID(memberID int64) error {
	if memberID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("memberId",
			fmt.Errorf("%d is not a valid member id", memberID))
	}
	q.memberID = memberID
	return nil
}

func (q *ListDeliveriesQuery) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	q.period = period
	return nil
}

func (q *ListDeliveriesQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded")
	}
	q.page = page
	return nil
}

func (q *ListDeliveriesQuery) setSize(size int) error {
	if size < 1 || size > PageSizeMax {
		return errs.NewValueIsOutOfRangeError("size", size, 1, PageSizeMax)
	}
	q.size = size
	return nil
}

// ListDeliveriesQueryResponse is one page of the caller's deliveries plus the
// total match count for the period.
type ListDeliveriesQueryResponse struct {
	Items      []DeliveryQueryResponse
	TotalCount int64
	Page       int
	Size       int
}
