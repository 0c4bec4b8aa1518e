package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EditTypeQA     = "qa_edit"
	EditTypeDelete = "qa_delete"
)

// ContentEdit is a user's override of one material's question/answer.
// There is at most one row per (user, book, unit, material).
type ContentEdit struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;not null;uniqueIndex:idx_content_edit_material,priority:1" json:"userId"`
	BookID     string    `gorm:"column:book_id;not null;uniqueIndex:idx_content_edit_material,priority:2" json:"bookId"`
	UnitID     string    `gorm:"column:unit_id;not null;uniqueIndex:idx_content_edit_material,priority:3" json:"unitId"`
	MaterialID string    `gorm:"column:material_id;not null;uniqueIndex:idx_content_edit_material,priority:4" json:"materialId"`
	EditType   string    `gorm:"column:edit_type;not null" json:"editType"`

	QuestionText *string `gorm:"column:question_text;type:text" json:"questionText,omitempty"`
	AnswerText   *string `gorm:"column:answer_text;type:text" json:"answerText,omitempty"`
	IsDeleted    bool    `gorm:"column:is_deleted;not null;default:false" json:"isDeleted"`
	HideImage    bool    `gorm:"column:hide_image;not null;default:false" json:"hideImage"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime;index" json:"updatedAt"`
}

func (ContentEdit) TableName() string { return "content_edit" }

func (e *ContentEdit) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
