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

// NewMandatesCommand creates the mandates command group.
func NewMandatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mandates",
		Aliases: []string{"mandate", "md"},
		Short:   "Manage mandates",
		Long:    "List, inspect, and cancel direct debit mandates",
	}

	cmd.AddCommand(newMandatesListCommand())
	cmd.AddCommand(newMandatesGetCommand())
	cmd.AddCommand(newMandatesCancelCommand())

	return cmd
}

func newMandatesListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		after    string
		customer string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mandates",
		Long:  "List mandates with optional customer and status filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := listParamsFromFlags(limit, after)

			if customer != "" {
				params.WithFilter("customer", customer)
			}

			if status != "" {
				params.WithFilter("status", status)
			}

			var (
				mandates   []gocardless.Mandate
				nextCursor *string
			)

			if allPages {
				mandates, err = client.Mandates().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list mandates: %w", err)
				}
			} else {
				result, err := client.Mandates().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list mandates: %w", err)
				}

				mandates = result.Mandates
				nextCursor = result.Meta.Cursors.After
			}

			handled, err := renderStructured(mandates, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			if len(mandates) == 0 {
				fmt.Println("No mandates found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Reference", "Scheme", "Status", "Customer", "Next Charge", "Created")

			for _, mandate := range mandates {
				_ = table.Append(
					mandate.ID,
					mandate.Reference,
					string(mandate.Scheme),
					string(mandate.Status),
					mandate.Links.Customer,
					mandate.NextPossibleChargeDate,
					formatTime(mandate.CreatedAt),
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
	cmd.Flags().StringVar(&customer, "customer", "", "filter by customer ID")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newMandatesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MANDATE_ID",
		Short: "Get mandate details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mandate, err := client.Mandates().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get mandate: %w", err)
			}

			handled, err := renderStructured(mandate, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", mandate.ID)
			_ = table.Append("Reference", mandate.Reference)
			_ = table.Append("Scheme", string(mandate.Scheme))
			_ = table.Append("Status", string(mandate.Status))
			_ = table.Append("Customer", mandate.Links.Customer)
			_ = table.Append("Bank Account", mandate.Links.CustomerBankAccount)
			_ = table.Append("Next Possible Charge", mandate.NextPossibleChargeDate)
			_ = table.Append("Created", formatTime(mandate.CreatedAt))
			_ = table.Render()

			return nil
		},
	}
}

func newMandatesCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel MANDATE_ID",
		Short: "Cancel a mandate",
		Long:  "Immediately cancel a mandate so no further payments can be collected against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mandate, err := client.Mandates().Cancel(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to cancel mandate: %w", err)
			}

			fmt.Printf("Mandate %s cancelled (status: %s)\n", mandate.ID, mandate.Status)

			return nil
		},
	}
}
