package license

import (
	"time"

	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/models"
)

// Status represents the lifecycle state of an antique-dealer license.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
	StatusRevoked Status = "REVOKED"
)

// CategoryAll is the wildcard license category meaning "covers all dealer categories".
const CategoryAll = "ALL"

// License is an antique-dealer license held by a user. Licenses are managed
// by the license endpoints; the compliance engine only reads them.
type License struct {
	models.BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;column:user_id;not null;index" json:"userId"`
	Number     string    `gorm:"type:varchar(100);column:number;not null" json:"number"`
	Status     Status    `gorm:"type:varchar(20);column:status;not null" json:"status"`
	Categories []string  `gorm:"type:jsonb;column:categories;serializer:json;not null" json:"categories"`
	IssuedAt   time.Time `gorm:"type:timestamptz;column:issued_at;not null" json:"issuedAt"`
	ExpiresAt  time.Time `gorm:"type:timestamptz;column:expires_at;not null" json:"expiresAt"`
}

func (l *License) TableName() string {
	return "licenses"
}

// IsExpired reports whether the license expiry has passed at the given instant.
func (l *License) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// IsExpiringSoon reports whether the license expires within the given window from now.
// An already expired license is not "expiring soon".
func (l *License) IsExpiringSoon(now time.Time, window time.Duration) bool {
	if l.IsExpired(now) {
		return false
	}
	return !now.Add(window).Before(l.ExpiresAt)
}

// IsUsable reports whether the license can satisfy a coverage check at all:
// it must be ACTIVE and not past its expiry.
func (l *License) IsUsable(now time.Time) bool {
	return l.Status == StatusActive && !l.IsExpired(now)
}

// Covers reports whether the license covers at least one of the required
// dealer categories. A license carrying the wildcard category covers everything.
func (l *License) Covers(required []string) bool {
	for _, held := range l.Categories {
		if held == CategoryAll {
			return true
		}
		for _, want := range required {
			if held == want {
				return true
			}
		}
	}
	return false
}
