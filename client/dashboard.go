package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// Dashboard is the result of one parallel load of the overview screen's
// collections. A section that failed to load is left empty and its error is
// recorded under Errors; the other sections are unaffected.
type Dashboard struct {
	Admins   []models.AdminUser
	Messages []models.ContactMessage
	Orders   []models.Order
	Refunds  []models.Refund
	Offers   []models.Offer

	Errors map[string]error
}

// LoadDashboard fetches the overview collections concurrently. It only
// returns a non-nil error when the context is cancelled; per-section fetch
// failures are isolated into Dashboard.Errors.
func (c *Client) LoadDashboard(ctx context.Context) (Dashboard, error) {
	dash := Dashboard{Errors: map[string]error{}}
	var mu sync.Mutex

	fail := func(section string, err error) {
		mu.Lock()
		dash.Errors[section] = err
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		admins, err := c.Admins().GetAll(ctx)
		if err != nil {
			fail("admins", err)
			return nil
		}
		dash.Admins = admins
		return nil
	})
	g.Go(func() error {
		messages, err := c.Contact().GetAll(ctx)
		if err != nil {
			fail("messages", err)
			return nil
		}
		dash.Messages = messages
		return nil
	})
	g.Go(func() error {
		orders, err := c.Orders().GetAll(ctx)
		if err != nil {
			fail("orders", err)
			return nil
		}
		dash.Orders = orders
		return nil
	})
	g.Go(func() error {
		refunds, err := c.Refunds().GetAll(ctx)
		if err != nil {
			fail("refunds", err)
			return nil
		}
		dash.Refunds = refunds
		return nil
	})
	g.Go(func() error {
		offers, err := c.Offers().GetAll(ctx)
		if err != nil {
			fail("offers", err)
			return nil
		}
		dash.Offers = offers
		return nil
	})

	if err := g.Wait(); err != nil {
		return dash, err
	}
	if err := ctx.Err(); err != nil {
		return dash, err
	}
	return dash, nil
}
