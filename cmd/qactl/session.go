package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yungbote/visualenglish-backend/internal/clients/contentapi"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/display"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/overlay"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// localEditDir is where edits kept on this device live, one
// qa-{book}-{unit}.json file per unit.
func localEditDir() string {
	if dir := conf.GetString("edits-dir"); dir != "" {
		return dir
	}
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "visualenglish", "edits")
	}
	return filepath.Join(".qactl", "edits")
}

// openSession builds a slide session over the device edit files and, when
// --server is set, the content API.
func openSession(log *logger.Logger) (*display.Session, error) {
	exceptions, err := qa.LoadExceptionsFile(conf.GetString("exceptions"))
	if err != nil {
		return nil, err
	}
	local, err := overlay.NewFileStore(localEditDir())
	if err != nil {
		return nil, err
	}
	var api display.API
	if server := conf.GetString("server"); server != "" {
		client, err := contentapi.New(log, contentapi.Config{BaseURL: server, Token: conf.GetString("token")})
		if err != nil {
			return nil, err
		}
		api = client
	}
	return display.NewSession(log, api, local, cascade.NewEngines(log, exceptions)), nil
}

type sessionResult struct {
	Outcome cascade.Outcome `json:"outcome"`
	Notice  string          `json:"notice,omitempty"`
}

// slideCommand mounts the slide named by args[0], waits for the server
// fetches and then runs act against the session.
func slideCommand(act func(ctx context.Context, sess *display.Session) (cascade.Outcome, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		in := cascade.Input{
			Filename:   args[0],
			BookID:     conf.GetString("book"),
			UnitID:     conf.GetString("unit"),
			MaterialID: conf.GetString("material"),
		}
		if in.BookID == "" || in.UnitID == "" || in.MaterialID == "" {
			return fmt.Errorf("--book, --unit and --material are required")
		}
		sess, err := openSession(log)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		sess.Mount(ctx, in)
		sess.Wait()

		out, err := act(ctx, sess)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sessionResult{Outcome: out, Notice: sess.Notice()})
	}
}

var (
	editQuestion string
	editAnswer   string

	flagReason            string
	flagSuggestedQuestion string
	flagSuggestedAnswer   string
)

var editCmd = &cobra.Command{
	Use:   "edit <filename>",
	Short: "Replace the question and answer shown for a slide",
	Long: `Edit stores the new question and answer on this device first, then on
the server when --server is set. Without a server, or when the server has no
database, the edit is kept on this device only.

Examples:
  qactl edit "Big Red Bus.png" --book 3 --unit 2 --material m1 --question "Is it a bus?" --answer "Yes, it is."`,
	Args: cobra.ExactArgs(1),
	RunE: slideCommand(func(ctx context.Context, sess *display.Session) (cascade.Outcome, error) {
		return sess.Edit(ctx, editQuestion, editAnswer)
	}),
}

var deleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Hide a slide's question and answer",
	Args:  cobra.ExactArgs(1),
	RunE: slideCommand(func(ctx context.Context, sess *display.Session) (cascade.Outcome, error) {
		return sess.Delete(ctx)
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset <filename>",
	Short: "Drop a slide's edit or deletion and resolve it again",
	Args:  cobra.ExactArgs(1),
	RunE: slideCommand(func(ctx context.Context, sess *display.Session) (cascade.Outcome, error) {
		return sess.Reset(ctx)
	}),
}

var flagCmd = &cobra.Command{
	Use:   "flag <filename>",
	Short: "Report a slide's question for review (requires --server)",
	Args:  cobra.ExactArgs(1),
	RunE: slideCommand(func(ctx context.Context, sess *display.Session) (cascade.Outcome, error) {
		err := sess.Flag(ctx, display.FlagRequest{
			Reason:            flagReason,
			SuggestedQuestion: flagSuggestedQuestion,
			SuggestedAnswer:   flagSuggestedAnswer,
		})
		return sess.Outcome(), err
	}),
}

func init() {
	editCmd.Flags().StringVar(&editQuestion, "question", "", "New question")
	editCmd.Flags().StringVar(&editAnswer, "answer", "", "New answer")
	flagCmd.Flags().StringVar(&flagReason, "reason", "", "Why the question is wrong")
	flagCmd.Flags().StringVar(&flagSuggestedQuestion, "suggested-question", "", "Suggested question")
	flagCmd.Flags().StringVar(&flagSuggestedAnswer, "suggested-answer", "", "Suggested answer")
	rootCmd.AddCommand(editCmd, deleteCmd, resetCmd, flagCmd)
}
