// Package mapping is the externally maintained filename/code → Q&A table for
// a book, loaded from the content team's spreadsheets or JSON exports.
package mapping

import (
	"fmt"
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
)

const (
	SourceExcel  = "excel"
	SourceJSON   = "json"
	SourceManual = "manual"
)

// RawEntry is a row as it arrives from a file or the database, before
// validation.
type RawEntry struct {
	BookID      string `json:"bookId"`
	UnitID      string `json:"unitId,omitempty"`
	Filename    string `json:"filename,omitempty"`
	CodePattern string `json:"codePattern,omitempty"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Source      string `json:"source,omitempty"`
}

// Entry is a validated mapping row. An empty UnitID applies to the whole book.
type Entry struct {
	BookID      string
	UnitID      string
	Filename    string
	CodePattern string // canonical ("12 N G"), or empty
	Question    string
	Answer      string
	Source      string

	code qa.CodePattern
}

// Key is what the entry is looked up by: the filename when present,
// otherwise the canonical code.
func (e Entry) Key() string {
	if e.Filename != "" {
		return e.Filename
	}
	return e.CodePattern
}

func (e Entry) Result() qa.Result { return qa.NewResult(e.Question, e.Answer) }

// Validate normalizes raw and rejects rows that could never produce data.
func Validate(raw RawEntry) (Entry, error) {
	e := Entry{
		BookID:   strings.TrimSpace(raw.BookID),
		UnitID:   strings.TrimSpace(raw.UnitID),
		Filename: strings.TrimSpace(qa.ParseFilename(raw.Filename).Name),
		Question: strings.TrimSpace(raw.Question),
		Answer:   strings.TrimSpace(raw.Answer),
		Source:   strings.TrimSpace(raw.Source),
	}
	if e.BookID == "" {
		return Entry{}, fmt.Errorf("%w: bookId is required", apierr.ErrInvalidArgument)
	}
	if e.Question == "" || e.Answer == "" {
		return Entry{}, fmt.Errorf("%w: question and answer are required", apierr.ErrInvalidArgument)
	}
	if cp := strings.TrimSpace(raw.CodePattern); cp != "" {
		code, ok := qa.ParseCode(cp)
		if !ok {
			return Entry{}, fmt.Errorf("%w: invalid code pattern %q", apierr.ErrInvalidArgument, cp)
		}
		e.code = code
		e.CodePattern = code.String()
	}
	if e.Filename == "" && e.CodePattern == "" {
		return Entry{}, fmt.Errorf("%w: filename or codePattern is required", apierr.ErrInvalidArgument)
	}
	if e.Source == "" {
		e.Source = SourceManual
	}
	return e, nil
}
