package lemonsqueezy

import "context"

// ListSubscriptions fetches one page of subscriptions for the configured
// store. Walk pages until Pagination.HasMore reports false.
func (c *Client) ListSubscriptions(ctx context.Context, page int) ([]Subscription, Pagination, error) {
	q := c.pageQuery(page)
	q.Set("filter[store_id]", c.storeID)

	var doc listDocument[SubscriptionAttributes]
	if err := c.get(ctx, "/subscriptions", q, &doc); err != nil {
		return nil, Pagination{}, err
	}

	items := make([]Subscription, 0, len(doc.Data))
	for _, res := range doc.Data {
		items = append(items, Subscription{ID: res.ID, SubscriptionAttributes: res.Attributes})
	}
	return items, doc.Meta.Page, nil
}
