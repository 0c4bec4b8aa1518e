// Package contentapi is the typed client for the content endpoints. It
// backs the display session and the qactl CLI.
package contentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/display"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/mapping"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/overlay"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type Client interface {
	display.API
	Resolve(ctx context.Context, in cascade.Input) (cascade.Outcome, error)
}

type Config struct {
	BaseURL string
	// Token is sent as a bearer token when set.
	Token   string
	Timeout time.Duration
}

type client struct {
	log  *logger.Logger
	cfg  Config
	http *http.Client
}

var _ Client = (*client)(nil)

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("missing content API base URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &client{
		log:  log.With("client", "ContentAPIClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// -------------------- Mapping + resolution --------------------

func (c *client) MappingEntries(ctx context.Context, bookID, unitID string) ([]mapping.RawEntry, error) {
	var out struct {
		Entries []mapping.RawEntry `json:"entries"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/direct/"+seg(bookID)+"/"+seg(unitID)+"/excel-qa", nil, &out); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

func (c *client) Resolve(ctx context.Context, in cascade.Input) (cascade.Outcome, error) {
	q := url.Values{}
	if in.Filename != "" {
		q.Set("filename", in.Filename)
	}
	if in.MaterialID != "" {
		q.Set("materialId", in.MaterialID)
	}
	var out cascade.Outcome
	path := "/api/direct/" + seg(in.BookID) + "/" + seg(in.UnitID) + "/qa?" + q.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return cascade.Outcome{}, err
	}
	return out, nil
}

// -------------------- Content edits --------------------

type editRow struct {
	MaterialID   string    `json:"materialId"`
	QuestionText *string   `json:"questionText"`
	AnswerText   *string   `json:"answerText"`
	IsDeleted    bool      `json:"isDeleted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *client) ContentEdits(ctx context.Context, bookID, unitID string) ([]overlay.Edit, error) {
	var out struct {
		Edits []editRow `json:"edits"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/direct/content-edits/"+seg(bookID)+"/"+seg(unitID), nil, &out); err != nil {
		return nil, err
	}
	edits := make([]overlay.Edit, 0, len(out.Edits))
	for _, r := range out.Edits {
		e := overlay.Edit{MaterialID: r.MaterialID, Deleted: r.IsDeleted, UpdatedAt: r.UpdatedAt}
		if e.UpdatedAt.IsZero() {
			e.UpdatedAt = r.CreatedAt
		}
		if r.QuestionText != nil {
			e.Question = *r.QuestionText
		}
		if r.AnswerText != nil {
			e.Answer = *r.AnswerText
		}
		edits = append(edits, e)
	}
	return edits, nil
}

func (c *client) SaveEdit(ctx context.Context, req display.EditRequest) (display.SaveResult, error) {
	var out display.SaveResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/direct/content-edits", req, &out); err != nil {
		return display.SaveResult{}, err
	}
	return out, nil
}

func (c *client) DeleteEdit(ctx context.Context, bookID, unitID, materialID string) (display.SaveResult, error) {
	var out display.SaveResult
	path := "/api/direct/content-edits/" + seg(bookID) + "/" + seg(unitID) + "/" + seg(materialID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return display.SaveResult{}, err
	}
	return out, nil
}

// -------------------- Flags --------------------

func (c *client) FlagQuestion(ctx context.Context, req display.FlagRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/flagged-questions", req, nil)
}

// -------------------- helpers --------------------

type envelope struct {
	Success bool `json:"success"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

func (c *client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(defaultCtx(ctx), method, c.cfg.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("content api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return responseError(resp.StatusCode, env, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("content api decode error: %w; raw=%s", err, string(raw))
	}
	return nil
}

func responseError(status int, env envelope, raw []byte) error {
	msg := strings.TrimSpace(string(raw))
	code := ""
	if env.Error != nil {
		msg, code = env.Error.Message, env.Error.Code
	}
	if status >= 200 && status < 300 {
		status = http.StatusBadGateway
		if msg == "" {
			msg = "request was not successful"
		}
	}
	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = apierr.ErrInvalidArgument
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = apierr.ErrForbidden
	case http.StatusNotFound:
		sentinel = apierr.ErrNotFound
	case http.StatusConflict:
		sentinel = apierr.ErrConflict
	case http.StatusServiceUnavailable:
		sentinel = apierr.ErrUnavailable
	default:
		return apierr.New(status, code, fmt.Errorf("content api http %d: %s", status, msg))
	}
	return apierr.New(status, code, fmt.Errorf("content api http %d: %w: %s", status, sentinel, msg))
}

func seg(s string) string {
	return url.PathEscape(strings.TrimSpace(s))
}

func defaultCtx(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
