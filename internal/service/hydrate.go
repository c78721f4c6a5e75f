package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// hydrate attaches buyer and current product data to stored orders for display.
// The orders themselves are not modified.
func (s *orderService) hydrate(ctx context.Context, orders []entities.Order) ([]entities.OrderView, error) {
	if len(orders) == 0 {
		return []entities.OrderView{}, nil
	}

	buyerIDs := make([]uuid.UUID, 0, len(orders))
	productIDs := make([]uuid.UUID, 0, len(orders))
	seen := make(map[uuid.UUID]struct{})
	for _, o := range orders {
		if _, ok := seen[o.BuyerID]; !ok {
			seen[o.BuyerID] = struct{}{}
			buyerIDs = append(buyerIDs, o.BuyerID)
		}
		for _, it := range o.Items {
			if _, ok := seen[it.ProductID]; !ok {
				seen[it.ProductID] = struct{}{}
				productIDs = append(productIDs, it.ProductID)
			}
		}
	}

	var (
		buyers   map[uuid.UUID]entities.Account
		products map[uuid.UUID]entities.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buyers, err = s.Accounts.AccountsByIDs(gctx, buyerIDs)
		if err != nil {
			return fmt.Errorf("failed to load buyers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = s.Catalog.ProductsByIDs(gctx, productIDs)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]entities.OrderView, 0, len(orders))
	for _, o := range orders {
		view := entities.OrderView{Order: o, Products: make(map[uuid.UUID]entities.ProductSummary, len(o.Items))}
		if buyer, ok := buyers[o.BuyerID]; ok {
			summary := buyer.Summary()
			view.Buyer = &summary
		}
		for _, it := range o.Items {
			if p, ok := products[it.ProductID]; ok {
				view.Products[it.ProductID] = p.Summary()
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *orderService) hydrateOne(ctx context.Context, order entities.Order) (entities.OrderView, error) {
	views, err := s.hydrate(ctx, []entities.Order{order})
	if err != nil {
		return entities.OrderView{}, err
	}
	return views[0], nil
}

// hydrateCommitted never fails: after a commit, a failed display read falls back to the bare order.
func (s *orderService) hydrateCommitted(ctx context.Context, order entities.Order) entities.OrderView {
	view, err := s.hydrateOne(context.WithoutCancel(ctx), order)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to hydrate committed order",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
		return entities.OrderView{Order: order}
	}
	return view
}
