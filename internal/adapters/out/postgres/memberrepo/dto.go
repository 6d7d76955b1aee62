// Package memberrepo provides data transfer objects and mapping functions for
// member persistence. It implements the repository pattern for the member
// aggregate, converting between domain entities and database rows.
package memberrepo

import (
	"time"

	"github.com/hankkuu/delivery-demo/internal/core/domain/model/member"
)

// MemberDTO represents the database structure for persisting member aggregates.
// The login id carries a unique index; signup races surface as unique
// violations and are translated to duplicate-value errors by the repository.
type MemberDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	LoginID      string `gorm:"size:50;uniqueIndex"`
	PasswordHash string `gorm:"size:100"`
	Name         string `gorm:"size:50"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for member entities.
func (MemberDTO) TableName() string {
	return "members"
}

func fromDomain(aggregate *member.Member) MemberDTO {
	return MemberDTO{
		ID:           aggregate.ID(),
		LoginID:      aggregate.LoginID(),
		PasswordHash: aggregate.PasswordHash(),
		Name:         aggregate.Name(),
	}
}

func toDomain(dto MemberDTO) (*member.Member, error) {
	return member.RestoreMember(dto.ID, dto.LoginID, dto.PasswordHash, dto.Name)
}
