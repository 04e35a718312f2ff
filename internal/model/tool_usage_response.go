package model

import "time"

// ToolUsageResponse Section D 单个类别的使用判断。
// uses_category 为 false 时 selected_tools 恒为空。
type ToolUsageResponse struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RespondentID  string    `gorm:"type:varchar(36);index;uniqueIndex:idx_respondent_category" json:"respondent_id"`
	Category      string    `gorm:"type:varchar(16);uniqueIndex:idx_respondent_category" json:"category"`
	UsesCategory  bool      `gorm:"default:false" json:"uses_category"`
	SelectedTools []string  `gorm:"serializer:json;type:jsonb" json:"selected_tools"`
	OtherTool     *string   `gorm:"type:text" json:"other_tool"`
	CreatedAt     time.Time `json:"created_at"`
}
