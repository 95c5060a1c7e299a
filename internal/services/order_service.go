package services

import (
	"context"
	"errors"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/repositories"

	"github.com/google/uuid"
)

// OrderService serves order history and the confirmation view.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, paymentRepo repositories.PaymentRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

type OrderListResponse struct {
	Orders     []models.Order `json:"orders"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string, page, limit int) (*OrderListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	orders, total, err := s.orderRepo.GetByUserID(ctx, userUUID, limit, offset)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &OrderListResponse{
		Orders:     orders,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

var orderStatuses = map[string]bool{
	"pending":    true,
	"processing": true,
	"shipped":    true,
	"delivered":  true,
	"cancelled":  true,
	"refunded":   true,
}

// GetOrdersByStatus lists orders in a given state across all users. Admin
// surface for working the fulfillment queue.
func (s *OrderService) GetOrdersByStatus(ctx context.Context, status string, page, limit int) ([]models.Order, error) {
	if !orderStatuses[status] {
		return nil, errors.New("invalid order status")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	return s.orderRepo.GetByStatus(ctx, status, limit, offset)
}

// UpdateOrderStatus moves an order to a new state. A cash-on-delivery order
// marked delivered settles its payment record as paid.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if !orderStatuses[status] {
		return nil, errors.New("invalid order status")
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, errors.New("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("order not found")
	}

	order.Status = status
	if status == "delivered" && order.PaymentMethod == "cod" && order.PaymentStatus != "paid" {
		order.PaymentStatus = "paid"
		if payment, err := s.paymentRepo.GetByOrderID(ctx, order.ID); err == nil {
			payment.Status = "paid"
			if err := s.paymentRepo.Update(ctx, payment); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

type OrderDetailResponse struct {
	Order   *models.Order   `json:"order"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// GetOrderByID returns the full order detail for the confirmation display,
// including the payment record when one exists. Ownership is enforced: users
// only ever see their own orders.
func (s *OrderService) GetOrderByID(ctx context.Context, userID, orderID string) (*OrderDetailResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, errors.New("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("order not found")
	}

	if order.UserID != userUUID {
		return nil, errors.New("order does not belong to user")
	}

	payment, err := s.paymentRepo.GetByOrderID(ctx, order.ID)
	if err != nil {
		payment = nil
	}

	return &OrderDetailResponse{Order: order, Payment: payment}, nil
}
