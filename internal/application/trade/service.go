package trade

import (
	"context"

	"github.com/gescom/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// OrderService handles supplier order operations
type OrderService struct {
	orderRepo trade.Repository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.Repository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// List retrieves supplier orders matching the filter with the total count
func (s *OrderService) List(ctx context.Context, filter ListFilter) ([]OrderResponse, int64, error) {
	sharedFilter := filter.ToSharedFilter()

	orders, err := s.orderRepo.FindAll(ctx, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, sharedFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// Count counts supplier orders matching the filter
func (s *OrderService) Count(ctx context.Context, filter ListFilter) (int64, error) {
	return s.orderRepo.Count(ctx, filter.ToSharedFilter())
}

// GetByID retrieves a supplier order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// Create creates a new draft supplier order
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	o, err := trade.New(req.Number, req.PartnerID, req.TotalAmount)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// UpdateAmount changes the total amount of a draft order
func (s *OrderService) UpdateAmount(ctx context.Context, id uuid.UUID, req UpdateOrderAmountRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.SetTotalAmount(req.TotalAmount); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// Confirm moves a draft order to the confirmed state
func (s *OrderService) Confirm(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*trade.SupplierOrder).Confirm)
}

// Receive marks a confirmed order as received
func (s *OrderService) Receive(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*trade.SupplierOrder).Receive)
}

// Cancel cancels an order that has not been received
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, id, (*trade.SupplierOrder).Cancel)
}

// Delete removes a supplier order permanently
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

// transition loads an order, applies a state change, and saves it
func (s *OrderService) transition(ctx context.Context, id uuid.UUID, fn func(*trade.SupplierOrder) error) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(o); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}
