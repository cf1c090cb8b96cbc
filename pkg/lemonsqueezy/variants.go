package lemonsqueezy

import "context"

// ListVariants fetches one page of variants. Variants are not filterable by
// store, so callers that care should cross-check the product id.
func (c *Client) ListVariants(ctx context.Context, page int) ([]Variant, Pagination, error) {
	var doc listDocument[VariantAttributes]
	if err := c.get(ctx, "/variants", c.pageQuery(page), &doc); err != nil {
		return nil, Pagination{}, err
	}

	items := make([]Variant, 0, len(doc.Data))
	for _, res := range doc.Data {
		items = append(items, Variant{ID: res.ID, VariantAttributes: res.Attributes})
	}
	return items, doc.Meta.Page, nil
}
