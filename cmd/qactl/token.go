package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/visualenglish-backend/internal/services"
)

var (
	tokenUser string
	tokenRole string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token signed with JWT_SECRET_KEY",
	Long: `Token prints an HS256 token the server accepts, for scripting admin
endpoints such as mapping imports and flag review.

Examples:
  qactl token --user 1 --role admin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()
		tok, err := services.NewAuthService(log, os.Getenv("JWT_SECRET_KEY")).IssueToken(tokenUser, tokenRole, tokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "1", "User id (token subject)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "", "Role claim, e.g. admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
