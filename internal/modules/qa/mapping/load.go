package mapping

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

var (
	rowCodeRe     = regexp.MustCompile(`^\d{2}\s+[A-Za-z]\s+[A-Za-z]\b`)
	rowQuestionRe = regexp.MustCompile(`^\d{2}\s+[A-Za-z]\s+[A-Za-z]\s+(.+)$`)
)

type jsonValue struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	CodePattern string `json:"codePattern,omitempty"`
}

// LoadJSON reads a qa-mapping-book{N}.json export: an object keyed by
// filename or code, each value holding question, answer and an optional
// codePattern. Rows come back sorted by key.
func LoadJSON(r io.Reader, bookID string) ([]RawEntry, error) {
	var doc map[string]jsonValue
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode mapping json: %w", err)
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]RawEntry, 0, len(keys))
	for _, k := range keys {
		v := doc[k]
		out = append(out, RawEntry{
			BookID:      bookID,
			Filename:    k,
			CodePattern: v.CodePattern,
			Question:    v.Question,
			Answer:      v.Answer,
			Source:      SourceJSON,
		})
	}
	return out, nil
}

// LoadExcel reads the first sheet of a workbook with the columns
// filePath | question | answer. A header row is detected and skipped. Each
// row also yields a code-only entry and a question-text entry so slides
// renamed after export still match.
func LoadExcel(r io.Reader, bookID, unitID string) ([]RawEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	var out []RawEntry
	for _, row := range rows {
		filePath, question, answer := cell(row, 0), cell(row, 1), cell(row, 2)
		if filePath == "" {
			continue
		}
		key := rowKey(filePath)
		entry := RawEntry{
			BookID:   bookID,
			UnitID:   unitID,
			Filename: key,
			Question: question,
			Answer:   answer,
			Source:   SourceExcel,
		}
		if code := rowCodeRe.FindString(key); code != "" {
			entry.CodePattern = code
			codeOnly := entry
			codeOnly.Filename = ""
			out = append(out, entry, codeOnly)
		} else {
			out = append(out, entry)
		}
		if m := rowQuestionRe.FindStringSubmatch(key); m != nil {
			text := entry
			text.Filename = strings.TrimSpace(m[1])
			text.CodePattern = ""
			out = append(out, text)
		}
	}
	return out, nil
}

func isHeader(row []string) bool {
	first := strings.ToLower(cell(row, 0))
	return strings.Contains(first, "file") || strings.Contains(first, "path")
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// rowKey reduces a spreadsheet file path to the slide name: directory and
// extension removed, starting at the section code when there is one.
func rowKey(filePath string) string {
	name := qa.ParseFilename(filePath).Base
	if loc := codeStartRe.FindStringIndex(name); loc != nil {
		name = name[loc[0]:]
	}
	return strings.TrimSpace(name)
}

var codeStartRe = regexp.MustCompile(`\d{2}\s+[A-Za-z]\s+[A-Za-z]\s`)
