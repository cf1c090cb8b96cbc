package lemonsqueezy

import "context"

// ListProducts fetches one page of products for the configured store.
func (c *Client) ListProducts(ctx context.Context, page int) ([]Product, Pagination, error) {
	q := c.pageQuery(page)
	q.Set("filter[store_id]", c.storeID)

	var doc listDocument[ProductAttributes]
	if err := c.get(ctx, "/products", q, &doc); err != nil {
		return nil, Pagination{}, err
	}

	items := make([]Product, 0, len(doc.Data))
	for _, res := range doc.Data {
		items = append(items, Product{ID: res.ID, ProductAttributes: res.Attributes})
	}
	return items, doc.Meta.Page, nil
}
