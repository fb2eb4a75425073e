package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/localcrm/internal/board"
	"github.com/heartmarshall/localcrm/internal/client"
	"github.com/heartmarshall/localcrm/internal/domain"
)

type boardOptions struct {
	url      string
	email    string
	password string
	filter   domain.DealFilter
}

func newBoardCmd() *cobra.Command {
	opts := &boardOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show and rearrange the deal pipeline through the API",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.url, "url", envOr("CRM_URL", "http://localhost:4000"), "API base URL")
	pf.StringVar(&opts.email, "email", envOr("CRM_EMAIL", "admin@localcrm.test"), "login email")
	pf.StringVar(&opts.password, "password", envOr("CRM_PASSWORD", "admin123"), "login password")
	pf.StringVar(&opts.filter.Search, "search", "", "only deals whose title contains this text")
	pf.StringVar(&opts.filter.StageID, "stage", "", "only deals in this stage id")
	pf.StringVar(&opts.filter.OwnerUserID, "owner", "", "only deals owned by this user id")
	pf.StringVar(&opts.filter.StartDate, "from", "", "earliest close date (YYYY-MM-DD)")
	pf.StringVar(&opts.filter.EndDate, "to", "", "latest close date (YYYY-MM-DD)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print deals grouped by stage",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				b, err := opts.open(cmd.Context())
				if err != nil {
					return err
				}
				return printBoard(cmd.OutOrStdout(), b.Columns())
			},
		},
		&cobra.Command{
			Use:   "move <deal-id> <stage-id>",
			Short: "Move a deal to another stage",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				dealID, err := parseID("deal-id", args[0])
				if err != nil {
					return err
				}
				stageID, err := parseID("stage-id", args[1])
				if err != nil {
					return err
				}

				b, err := opts.open(cmd.Context())
				if err != nil {
					return err
				}
				if err := b.Move(cmd.Context(), dealID, stageID); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "move rejected, board reloaded from server")
					_ = printBoard(cmd.OutOrStdout(), b.Columns())
					return err
				}
				return printBoard(cmd.OutOrStdout(), b.Columns())
			},
		},
	)
	return cmd
}

func (o *boardOptions) open(ctx context.Context) (*board.Board, error) {
	c, err := client.New(o.url, nil)
	if err != nil {
		return nil, err
	}
	if _, err := c.Login(ctx, o.email, o.password); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	b := board.New(c, o.filter, logger)
	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func printBoard(w io.Writer, cols []board.Column) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, col := range cols {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		var total float64
		for _, d := range col.Deals {
			total += d.Amount
		}
		fmt.Fprintf(tw, "%s [stage %d]\t%d deals\t%.2f\n", col.Stage.Name, col.Stage.ID, len(col.Deals), total)
		for _, d := range col.Deals {
			closeDate := "-"
			if d.CloseDate != nil {
				closeDate = d.CloseDate.Format("2006-01-02")
			}
			fmt.Fprintf(tw, "  #%d %s\t%.2f %s\t%s\n", d.ID, d.Title, d.Amount, d.Currency, closeDate)
		}
	}
	return tw.Flush()
}

func parseID(name, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return id, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
