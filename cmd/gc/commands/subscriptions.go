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

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "sb"},
		Short:   "Manage subscriptions",
		Long:    "List, inspect, and cancel recurring payment subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())
	cmd.AddCommand(newSubscriptionsCancelCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		after    string
		mandate  string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List subscriptions with optional mandate and status filtering",
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
				subscriptions []gocardless.Subscription
				nextCursor    *string
			)

			if allPages {
				subscriptions, err = client.Subscriptions().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list subscriptions: %w", err)
				}
			} else {
				result, err := client.Subscriptions().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list subscriptions: %w", err)
				}

				subscriptions = result.Subscriptions
				nextCursor = result.Meta.Cursors.After
			}

			handled, err := renderStructured(subscriptions, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			if len(subscriptions) == 0 {
				fmt.Println("No subscriptions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Amount", "Interval", "Status", "Mandate", "Created")

			for _, subscription := range subscriptions {
				_ = table.Append(
					subscription.ID,
					subscription.Name,
					formatAmount(subscription.Amount, subscription.Currency),
					formatInterval(subscription.Interval, subscription.IntervalUnit),
					string(subscription.Status),
					subscription.Links.Mandate,
					formatTime(subscription.CreatedAt),
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

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_ID",
		Short: "Get subscription details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get subscription: %w", err)
			}

			handled, err := renderStructured(subscription, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", subscription.ID)
			_ = table.Append("Name", subscription.Name)
			_ = table.Append("Amount", formatAmount(subscription.Amount, subscription.Currency))
			_ = table.Append("Interval", formatInterval(subscription.Interval, subscription.IntervalUnit))
			_ = table.Append("Status", string(subscription.Status))
			_ = table.Append("Start Date", subscription.StartDate)
			_ = table.Append("End Date", subscription.EndDate)
			_ = table.Append("Mandate", subscription.Links.Mandate)
			_ = table.Append("Created", formatTime(subscription.CreatedAt))
			_ = table.Render()

			if len(subscription.UpcomingPayments) > 0 {
				fmt.Println("\nUpcoming payments:")

				upcoming := tablewriter.NewWriter(os.Stdout)
				upcoming.Header("Charge Date", "Amount")

				for _, payment := range subscription.UpcomingPayments {
					_ = upcoming.Append(payment.ChargeDate, formatAmount(payment.Amount, subscription.Currency))
				}

				_ = upcoming.Render()
			}

			return nil
		},
	}
}

func newSubscriptionsCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel SUBSCRIPTION_ID",
		Short: "Cancel a subscription",
		Long:  "Cancel a subscription so no further payments are created for it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			subscription, err := client.Subscriptions().Cancel(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to cancel subscription: %w", err)
			}

			fmt.Printf("Subscription %s cancelled (status: %s)\n", subscription.ID, subscription.Status)

			return nil
		},
	}
}

func formatInterval(interval int, unit gocardless.IntervalUnit) string {
	if interval <= 1 {
		return string(unit)
	}

	var noun string

	switch unit {
	case gocardless.IntervalUnitWeekly:
		noun = "weeks"
	case gocardless.IntervalUnitMonthly:
		noun = "months"
	case gocardless.IntervalUnitYearly:
		noun = "years"
	default:
		noun = string(unit)
	}

	return "every " + itoa(interval) + " " + noun
}
