package billing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// SyncFailure records a single item that could not be upserted during sync.
type SyncFailure struct {
	Resource string
	VendorID string
	Err      error
}

// SyncReport summarizes a sync pass over the vendor catalog and
// subscriptions.
type SyncReport struct {
	Products      int
	Variants      int
	Subscriptions int
	Failures      []SyncFailure
}

// Message renders a human-readable summary for API responses.
func (r SyncReport) Message() string {
	msg := fmt.Sprintf("synchronized %d products, %d variants, %d subscriptions",
		r.Products, r.Variants, r.Subscriptions)
	if len(r.Failures) > 0 {
		msg += fmt.Sprintf(" (%d items failed)", len(r.Failures))
	}
	return msg
}

// Sync walks all pages of vendor products, variants and subscriptions and
// upserts each item. A failed item is recorded in the report and skipped;
// it never aborts the rest of the pass. The returned error is non-nil only
// when a whole collection could not be listed.
func (s *Service) Sync(ctx context.Context) (SyncReport, error) {
	var report SyncReport

	if err := s.syncProducts(ctx, &report); err != nil {
		return report, fmt.Errorf("sync products: %w", err)
	}
	if err := s.syncVariants(ctx, &report); err != nil {
		return report, fmt.Errorf("sync variants: %w", err)
	}
	if err := s.syncSubscriptions(ctx, &report); err != nil {
		return report, fmt.Errorf("sync subscriptions: %w", err)
	}

	s.log.InfoContext(ctx, "sync completed",
		slog.Int("products", report.Products),
		slog.Int("variants", report.Variants),
		slog.Int("subscriptions", report.Subscriptions),
		slog.Int("failures", len(report.Failures)),
	)
	return report, nil
}

func (s *Service) syncProducts(ctx context.Context, report *SyncReport) error {
	for page := 1; ; page++ {
		items, pagination, err := s.client.ListProducts(ctx, page)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := s.store.UpsertProduct(ctx, productFromVendor(item)); err != nil {
				s.recordFailure(ctx, report, "product", item.ID, err)
				continue
			}
			report.Products++
		}
		if !pagination.HasMore() {
			return nil
		}
	}
}

func (s *Service) syncVariants(ctx context.Context, report *SyncReport) error {
	for page := 1; ; page++ {
		items, pagination, err := s.client.ListVariants(ctx, page)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := s.store.UpsertVariant(ctx, variantFromVendor(item)); err != nil {
				s.recordFailure(ctx, report, "variant", item.ID, err)
				continue
			}
			report.Variants++
		}
		if !pagination.HasMore() {
			return nil
		}
	}
}

func (s *Service) syncSubscriptions(ctx context.Context, report *SyncReport) error {
	for page := 1; ; page++ {
		items, pagination, err := s.client.ListSubscriptions(ctx, page)
		if err != nil {
			return err
		}
		for _, item := range items {
			// List responses carry no user attribution; the upsert keeps
			// whatever a webhook has already recorded.
			sub := subscriptionFromVendor(item, uuid.NullUUID{})
			if err := s.store.UpsertSubscription(ctx, sub); err != nil {
				s.recordFailure(ctx, report, "subscription", item.ID, err)
				continue
			}
			report.Subscriptions++
		}
		if !pagination.HasMore() {
			return nil
		}
	}
}

func (s *Service) recordFailure(ctx context.Context, report *SyncReport, resource, vendorID string, err error) {
	report.Failures = append(report.Failures, SyncFailure{
		Resource: resource,
		VendorID: vendorID,
		Err:      err,
	})
	s.log.ErrorContext(ctx, "sync item failed",
		slog.String("resource", resource),
		slog.String("vendor_id", vendorID),
		slog.Any("error", err),
	)
}
