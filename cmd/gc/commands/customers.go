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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "cu"},
		Short:   "Manage customers",
		Long:    "List and inspect the customers that direct debit is collected from",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		after    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := listParamsFromFlags(limit, after)

			var (
				customers  []gocardless.Customer
				nextCursor *string
			)

			if allPages {
				customers, err = client.Customers().All(ctx, params).All()
				if err != nil {
					return fmt.Errorf("failed to list customers: %w", err)
				}
			} else {
				result, err := client.Customers().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list customers: %w", err)
				}

				customers = result.Customers
				nextCursor = result.Meta.Cursors.After
			}

			handled, err := renderStructured(customers, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			if len(customers) == 0 {
				fmt.Println("No customers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Email", "Country", "Created")

			for _, customer := range customers {
				_ = table.Append(
					customer.ID,
					customerDisplayName(customer),
					customer.Email,
					customer.CountryCode,
					formatTime(customer.CreatedAt),
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

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			handled, err := renderStructured(customer, viper.GetString("output"))
			if handled || err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", customer.ID)
			_ = table.Append("Name", customerDisplayName(*customer))
			_ = table.Append("Email", customer.Email)
			_ = table.Append("Address", customer.AddressLine1)
			_ = table.Append("City", customer.City)
			_ = table.Append("Postal Code", customer.PostalCode)
			_ = table.Append("Country", customer.CountryCode)
			_ = table.Append("Created", formatTime(customer.CreatedAt))
			_ = table.Render()

			return nil
		},
	}
}

func customerDisplayName(customer gocardless.Customer) string {
	if customer.CompanyName != "" {
		return customer.CompanyName
	}

	if customer.GivenName == "" && customer.FamilyName == "" {
		return ""
	}

	return customer.GivenName + " " + customer.FamilyName
}
