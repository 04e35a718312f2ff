package model

import "time"

// LikertResponse 一条已作答的量表条目。未作答的条目不落库。
type LikertResponse struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RespondentID string    `gorm:"type:varchar(36);index;uniqueIndex:idx_respondent_item" json:"respondent_id"`
	Section      string    `gorm:"type:varchar(1)" json:"section"`
	ItemCode     string    `gorm:"type:varchar(16);uniqueIndex:idx_respondent_item" json:"item_code"`
	Value        int       `json:"value"`
	CreatedAt    time.Time `json:"created_at"`
}
