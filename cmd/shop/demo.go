package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/ddd-shop-go/domain/checkout"
	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	"github.com/AntonStoeckl/ddd-shop-go/domain/product"
	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
	"github.com/AntonStoeckl/ddd-shop-go/infrastructure/eventjournal"
)

const (
	demoCustomerID    = "1"
	demoCustomerName  = "John Doe"
	demoEmailReceiver = "catalog@shop.example"
)

type demoProduct struct {
	productType string
	name        string
	price       float64
	quantity    int
}

var demoProducts = []demoProduct{
	{productType: product.TypeA, name: "Laptop", price: 1000, quantity: 1},
	{productType: product.TypeA, name: "Mouse", price: 20, quantity: 1},
}

func newDemoCommand(app *cli) *cobra.Command {
	var persist bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Create a customer, move them to an address, activate them and place an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !persist {
				return runDemo(cmd.Context(), cmd.OutOrStdout(), nil)
			}

			repos, err := openRepositories(cmd.Context(), app.cfg, app.logger)
			if err != nil {
				return err
			}
			defer repos.close()

			if err = repos.migrate(cmd.Context()); err != nil {
				return err
			}

			return runDemo(cmd.Context(), cmd.OutOrStdout(), repos)
		},
	}

	cmd.Flags().BoolVar(&persist, flagPersist, false, "store the aggregates and record the events in the database")

	return cmd
}

// runDemo plays the scenario, repos is nil when nothing should be stored.
func runDemo(ctx context.Context, out io.Writer, repos *repositories) error {
	dispatcher := customer.NewEventDispatcher(out)
	dispatcher.Register(product.ProductCreatedEventName, product.NewSendEmailWhenProductIsCreated(out, demoEmailReceiver))

	if repos != nil {
		eventjournal.NewRecordingHandler(repos.journal).RegisterFor(
			dispatcher,
			customer.CustomerCreatedEventName,
			customer.CustomerAddressChangedEventName,
			product.ProductCreatedEventName,
		)
	}

	address, err := customer.NewAddress("Main Street", 123, "12345", "Springfield")
	if err != nil {
		return err
	}

	c, err := customer.New(demoCustomerID, demoCustomerName, customer.WithEventDispatcher(dispatcher))
	if err != nil {
		return err
	}

	if err = c.ChangeAddress(address); err != nil {
		return err
	}

	if err = c.Activate(); err != nil {
		return err
	}

	items, products, err := createDemoItems(dispatcher)
	if err != nil {
		return err
	}

	order, err := checkout.PlaceOrder(c, items)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Order %s placed by %s with %d items, total %.2f\n", order.ID(), c.Name(), len(order.Items()), order.Total())
	_, _ = fmt.Fprintf(out, "Customer %s now has %d reward points\n", c.Name(), c.RewardPoints())

	if repos == nil {
		return nil
	}

	return storeDemo(ctx, out, repos, c, products, order)
}

func createDemoItems(dispatcher *event.Dispatcher) ([]*checkout.OrderItem, []product.Interface, error) {
	factory := product.NewFactory(product.WithEventDispatcher(dispatcher))
	items := make([]*checkout.OrderItem, 0, len(demoProducts))
	products := make([]product.Interface, 0, len(demoProducts))

	for _, dp := range demoProducts {
		p, err := factory.Create(dp.productType, dp.name, dp.price)
		if err != nil {
			return nil, nil, err
		}

		item, err := checkout.NewOrderItem(uuid.NewString(), p.Name(), p.Price(), p.ID(), dp.quantity)
		if err != nil {
			return nil, nil, err
		}

		products = append(products, p)
		items = append(items, item)
	}

	return items, products, nil
}

func storeDemo(
	ctx context.Context,
	out io.Writer,
	repos *repositories,
	c *customer.Customer,
	products []product.Interface,
	order *checkout.Order,
) error {

	// the demo customer has a fixed ID, so it exists from the second run on
	err := repos.customers.Update(ctx, c)
	if errors.Is(err, customer.ErrNotFound) {
		err = repos.customers.Create(ctx, c)
	}

	if err != nil {
		return err
	}

	for _, p := range products {
		if err = repos.products.Create(ctx, p); err != nil {
			return err
		}
	}

	if err = repos.orders.Create(ctx, order); err != nil {
		return err
	}

	orders, err := repos.orders.FindAll(ctx)
	if err != nil {
		return err
	}

	recorded, err := repos.journal.Query(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Stored orders: %d, sum of totals %.2f\n", len(orders), checkout.Total(orders))
	_, _ = fmt.Fprintf(out, "Recorded events: %d\n", len(recorded))

	return nil
}
