package display

import (
	"context"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa/mapping"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/overlay"
)

const (
	EditTypeQA     = "qa_edit"
	EditTypeDelete = "qa_delete"
)

// EditRequest is an edit or deletion sent to the server.
type EditRequest struct {
	BookID       string `json:"bookId"`
	UnitID       string `json:"unitId"`
	MaterialID   string `json:"materialId"`
	EditType     string `json:"editType"`
	QuestionText string `json:"questionText,omitempty"`
	AnswerText   string `json:"answerText,omitempty"`
	IsDeleted    bool   `json:"isDeleted,omitempty"`
}

// SaveResult reports whether the server persisted the edit.
type SaveResult struct {
	DBAvailable bool   `json:"dbAvailable"`
	ID          string `json:"id,omitempty"`
}

type FlagRequest struct {
	BookID            string `json:"bookId"`
	UnitID            string `json:"unitId"`
	MaterialID        string `json:"materialId"`
	Filename          string `json:"filename,omitempty"`
	QuestionText      string `json:"questionText"`
	AnswerText        string `json:"answerText"`
	SuggestedQuestion string `json:"suggestedQuestion,omitempty"`
	SuggestedAnswer   string `json:"suggestedAnswer,omitempty"`
	Reason            string `json:"reason,omitempty"`
}

// API is the server surface a session talks to.
type API interface {
	MappingEntries(ctx context.Context, bookID, unitID string) ([]mapping.RawEntry, error)
	ContentEdits(ctx context.Context, bookID, unitID string) ([]overlay.Edit, error)
	SaveEdit(ctx context.Context, req EditRequest) (SaveResult, error)
	DeleteEdit(ctx context.Context, bookID, unitID, materialID string) (SaveResult, error)
	FlagQuestion(ctx context.Context, req FlagRequest) error
}
