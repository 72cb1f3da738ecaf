package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gocardless/gocardless-go/pkg/gocardless"
)

// NewPayoutsCommand creates the payouts command group.
func NewPayoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payouts",
		Aliases: []string{"payout", "po"},
		Short:   "Manage payouts",
		Long:    "List and inspect payouts of collected funds to creditor bank accounts",
	}

	cmd.AddCommand(newPayoutsListCommand())
	cmd.AddCommand(newPayoutsGetCommand())

	return cmd
}

func newPayoutsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		after    string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payouts",
		Long:  "List payouts with optional status filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := listParamsFromFlags(limit, after)

			if status != "" {
				params.WithFilter("status", status)
			}

			var (
				payouts    []gocardless.Payout
				nextCursor *string
			)

			if allPages {
				payouts, err = client.Payouts().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list payouts: %w", err)
				}
			} else {
				result, err := client.Payouts().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list payouts: %w", err)
				}

				payouts = result.Payouts
				nextCursor = result.Meta.Cursors.After
			}

			handled, err := renderStructured(payouts, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			if len(payouts) == 0 {
				fmt.Println("No payouts found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Amount", "Fees", "Status", "Arrival Date", "Reference")

			for _, payout := range payouts {
				_ = table.Append(
					payout.ID,
					formatAmount(payout.Amount, payout.Currency),
					formatAmount(payout.DeductedFees, payout.Currency),
					string(payout.Status),
					payout.ArrivalDate,
					payout.Reference,
				)
			}

			_ = table.Render()
			printMorePagesHint(nextCursor, allPages)

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", 0, "records per page")
	cmd.Flags().StringVar(&after, "after", "", "cursor to resume listing from")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newPayoutsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYOUT_ID",
		Short: "Get payout details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payout, err := client.Payouts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payout: %w", err)
			}

			handled, err := renderStructured(payout, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", payout.ID)
			_ = table.Append("Amount", formatAmount(payout.Amount, payout.Currency))
			_ = table.Append("Deducted Fees", formatAmount(payout.DeductedFees, payout.Currency))
			_ = table.Append("Status", string(payout.Status))
			_ = table.Append("Type", payout.PayoutType)
			_ = table.Append("Arrival Date", payout.ArrivalDate)
			_ = table.Append("Reference", payout.Reference)
			_ = table.Append("Creditor", payout.Links.Creditor)
			_ = table.Append("Created", formatTime(payout.CreatedAt))
			_ = table.Render()

			return nil
		},
	}
}
