package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HistoryEntry is one appended configuration run. UserID is either a user
// uuid string or the literal "anonymous".
type HistoryEntry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null;column:user_id" json:"user_id"`
	Request   datatypes.JSON `gorm:"column:request" json:"request"`
	Result    datatypes.JSON `gorm:"column:result" json:"result"`
	CreatedAt time.Time      `json:"timestamp"`
}

func (HistoryEntry) TableName() string {
	return "history_entry"
}
