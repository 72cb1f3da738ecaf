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

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event", "ev"},
		Short:   "Inspect events",
		Long:    "List and inspect the audit trail of actions taken on other resources",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		allPages     bool
		limit        int
		after        string
		resourceType string
		action       string
		mandate      string
		payment      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events with optional resource, action, mandate, and payment filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := listParamsFromFlags(limit, after)

			if resourceType != "" {
				params.WithFilter("resource_type", resourceType)
			}

			if action != "" {
				params.WithFilter("action", action)
			}

			if mandate != "" {
				params.WithFilter("mandate", mandate)
			}

			if payment != "" {
				params.WithFilter("payment", payment)
			}

			var (
				events     []gocardless.Event
				nextCursor *string
			)

			if allPages {
				events, err = client.Events().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list events: %w", err)
				}
			} else {
				result, err := client.Events().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list events: %w", err)
				}

				events = result.Events
				nextCursor = result.Meta.Cursors.After
			}

			handled, err := renderStructured(events, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No events found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Resource", "Action", "Cause", "Origin", "Created")

			for _, event := range events {
				_ = table.Append(
					event.ID,
					event.ResourceType,
					event.Action,
					event.Details.Cause,
					event.Details.Origin,
					formatTime(event.CreatedAt),
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
	cmd.Flags().StringVar(&resourceType, "resource-type", "", "filter by resource type (payments, mandates, ...)")
	cmd.Flags().StringVar(&action, "action", "", "filter by action")
	cmd.Flags().StringVar(&mandate, "mandate", "", "filter by mandate ID")
	cmd.Flags().StringVar(&payment, "payment", "", "filter by payment ID")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get event details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			handled, err := renderStructured(event, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", event.ID)
			_ = table.Append("Resource Type", event.ResourceType)
			_ = table.Append("Action", event.Action)
			_ = table.Append("Cause", event.Details.Cause)
			_ = table.Append("Origin", event.Details.Origin)
			_ = table.Append("Description", event.Details.Description)
			_ = table.Append("Mandate", event.Links.Mandate)
			_ = table.Append("Payment", event.Links.Payment)
			_ = table.Append("Created", formatTime(event.CreatedAt))
			_ = table.Render()

			return nil
		},
	}
}
