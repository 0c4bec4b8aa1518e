package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	FlagStatusPending  = "pending"
	FlagStatusReviewed = "reviewed"
	FlagStatusApproved = "approved"
	FlagStatusRejected = "rejected"
)

// ValidFlagStatus reports whether s is a stored moderation status.
func ValidFlagStatus(s string) bool {
	switch s {
	case FlagStatusPending, FlagStatusReviewed, FlagStatusApproved, FlagStatusRejected:
		return true
	}
	return false
}

// FlaggedQuestion is a teacher's report that a slide shows the wrong
// question or answer.
type FlaggedQuestion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;not null;index" json:"userId"`
	BookID     string    `gorm:"column:book_id;not null;index:idx_flagged_question_unit,priority:1" json:"bookId"`
	UnitID     string    `gorm:"column:unit_id;not null;index:idx_flagged_question_unit,priority:2" json:"unitId"`
	MaterialID string    `gorm:"column:material_id;not null" json:"materialId"`
	Filename   string    `gorm:"column:filename;type:text" json:"filename,omitempty"`

	QuestionText      string `gorm:"column:question_text;type:text;not null" json:"questionText"`
	AnswerText        string `gorm:"column:answer_text;type:text;not null" json:"answerText"`
	SuggestedQuestion string `gorm:"column:suggested_question;type:text" json:"suggestedQuestion,omitempty"`
	SuggestedAnswer   string `gorm:"column:suggested_answer;type:text" json:"suggestedAnswer,omitempty"`
	Reason            string `gorm:"column:reason;type:text" json:"reason,omitempty"`

	Status      string     `gorm:"column:status;not null;default:'pending';index" json:"status"`
	ReviewNotes string     `gorm:"column:review_notes;type:text" json:"reviewNotes,omitempty"`
	ReviewedBy  string     `gorm:"column:reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at" json:"reviewedAt,omitempty"`

	// Resolution source and category shown when the flag was raised.
	Context datatypes.JSON `gorm:"column:context" json:"context,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (FlaggedQuestion) TableName() string { return "flagged_question" }

func (f *FlaggedQuestion) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Status == "" {
		f.Status = FlagStatusPending
	}
	return nil
}
