package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QAMappingEntry is one imported mapping row. UnitID is empty for rows that
// apply to the whole book; LookupKey is the filename, or the code pattern
// when there is no filename.
type QAMappingEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookID      string    `gorm:"column:book_id;not null;uniqueIndex:idx_qa_mapping_key,priority:1" json:"bookId"`
	UnitID      string    `gorm:"column:unit_id;not null;default:'';uniqueIndex:idx_qa_mapping_key,priority:2" json:"unitId"`
	LookupKey   string    `gorm:"column:lookup_key;not null;uniqueIndex:idx_qa_mapping_key,priority:3" json:"-"`
	Filename    string    `gorm:"column:filename;type:text" json:"filename,omitempty"`
	CodePattern string    `gorm:"column:code_pattern" json:"codePattern,omitempty"`
	Question    string    `gorm:"column:question;type:text;not null" json:"question"`
	Answer      string    `gorm:"column:answer;type:text;not null" json:"answer"`
	Source      string    `gorm:"column:source;not null" json:"source"`

	// Raw keeps the spreadsheet row the entry came from.
	Raw datatypes.JSON `gorm:"column:raw" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (QAMappingEntry) TableName() string { return "qa_mapping_entry" }

func (e *QAMappingEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
