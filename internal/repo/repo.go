package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/RusenAli99/say-nileti-im/internal/models"
)

// GormRepo is the single storage handle shared by every store. Now is
// overridable so tests can pin timestamps; when nil, the wall clock is used.
type GormRepo struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (r *GormRepo) stamp() string {
	if r.Now != nil {
		return models.Stamp(r.Now())
	}
	return models.Stamp(time.Now())
}
