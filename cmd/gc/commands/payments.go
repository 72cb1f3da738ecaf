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

// NewPaymentsCommand creates the payments command group.
func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment", "pm"},
		Short:   "Manage payments",
		Long:    "List, inspect, cancel, and retry direct debit payments",
	}

	cmd.AddCommand(newPaymentsListCommand())
	cmd.AddCommand(newPaymentsGetCommand())
	cmd.AddCommand(newPaymentsCancelCommand())
	cmd.AddCommand(newPaymentsRetryCommand())

	return cmd
}

func newPaymentsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		after    string
		mandate  string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Long:  "List payments with optional mandate and status filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := listParamsFromFlags(limit, after)

			if mandate != "" {
				params.WithFilter("mandate", mandate)
			}

			if status != "" {
				params.WithFilter("status", status)
			}

			var (
				payments   []gocardless.Payment
				nextCursor *string
			)

			if allPages {
				payments, err = client.Payments().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list payments: %w", err)
				}
			} else {
				result, err := client.Payments().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list payments: %w", err)
				}

				payments = result.Payments
				nextCursor = result.Meta.Cursors.After
			}

			handled, err := renderStructured(payments, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			if len(payments) == 0 {
				fmt.Println("No payments found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Amount", "Status", "Charge Date", "Mandate", "Description")

			for _, payment := range payments {
				_ = table.Append(
					payment.ID,
					formatAmount(payment.Amount, payment.Currency),
					string(payment.Status),
					payment.ChargeDate,
					payment.Links.Mandate,
					payment.Description,
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
	cmd.Flags().StringVar(&mandate, "mandate", "", "filter by mandate ID")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYMENT_ID",
		Short: "Get payment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment: %w", err)
			}

			handled, err := renderStructured(payment, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", payment.ID)
			_ = table.Append("Amount", formatAmount(payment.Amount, payment.Currency))
			_ = table.Append("Refunded", formatAmount(payment.AmountRefunded, payment.Currency))
			_ = table.Append("Status", string(payment.Status))
			_ = table.Append("Charge Date", payment.ChargeDate)
			_ = table.Append("Mandate", payment.Links.Mandate)
			_ = table.Append("Payout", payment.Links.Payout)
			_ = table.Append("Description", payment.Description)
			_ = table.Append("Created", formatTime(payment.CreatedAt))
			_ = table.Render()

			return nil
		},
	}
}

func newPaymentsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PAYMENT_ID",
		Short: "Cancel a payment",
		Long:  "Cancel a payment that has not yet been submitted to the banks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			payment, err := client.Payments().Cancel(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to cancel payment: %w", err)
			}

			fmt.Printf("Payment %s cancelled (status: %s)\n", payment.ID, payment.Status)

			return nil
		},
	}
}

func newPaymentsRetryCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "retry PAYMENT_ID",
		Short: "Retry a failed payment",
		Long:  "Retry a failed payment on the next available charge date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var metadata gocardless.Metadata
			if reason != "" {
				metadata = gocardless.Metadata{"reason": reason}
			}

			payment, err := client.Payments().Retry(context.Background(), args[0], metadata)
			if err != nil {
				return fmt.Errorf("failed to retry payment: %w", err)
			}

			fmt.Printf("Payment %s queued for retry (status: %s)\n", payment.ID, payment.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded in the retry metadata")

	return cmd
}
