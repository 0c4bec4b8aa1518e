package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/visualenglish-backend/internal/clients/contentapi"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
)

var resolveServerSide bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <filename>",
	Short: "Show the question and answer resolved for a slide filename",
	Long: `Resolve runs the cascade for one slide. Without --server it runs locally
(built-in resolvers plus an optional --mapping file). With --server it opens
a slide session: edits kept on this device apply at once, then the unit's
mapping and your saved server edits are fetched and applied. --server-side
asks the content API to run the cascade instead.

Examples:
  qactl resolve "01 I A What is your name.png" --book 1 --unit 1
  qactl resolve "Big Red Bus.png" --book 3 --unit 2 --mapping qa-mapping-book3.json
  qactl resolve "Big Red Bus.png" --book 3 --unit 2 --material m1 --server http://localhost:8080`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveServerSide, "server-side", false, "Let the content API run the cascade (requires --server)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
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
	var resolve func(ctx context.Context, in cascade.Input) (cascade.Outcome, error)
	switch server := conf.GetString("server"); {
	case server != "" && resolveServerSide:
		client, err := contentapi.New(log, contentapi.Config{BaseURL: server, Token: conf.GetString("token")})
		if err != nil {
			return err
		}
		resolve = client.Resolve
	case server != "":
		sess, err := openSession(log)
		if err != nil {
			return err
		}
		resolve = func(ctx context.Context, in cascade.Input) (cascade.Outcome, error) {
			sess.Mount(ctx, in)
			sess.Wait()
			return sess.Outcome(), nil
		}
	default:
		svc, err := localResolver(cmd, log)
		if err != nil {
			return err
		}
		resolve = svc.Resolve
	}

	out, err := resolve(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", in.Filename, err)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
