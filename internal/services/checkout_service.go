package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/repositories"
	"golang-storefront-backend/pkg/messaging"

	"github.com/google/uuid"
)

// CheckoutService derives order summaries and turns a cart (or a single
// buy-now item) into a persisted order. The cart is only cleared after the
// order write succeeded, and only when the order was cart-sourced; a failed
// submission leaves the cart untouched so the caller can retry.
type CheckoutService struct {
	cartStore     repositories.CartStore
	addressRepo   repositories.AddressRepository
	orderRepo     repositories.OrderRepository
	paymentRepo   repositories.PaymentRepository
	kafkaProducer *messaging.KafkaProducer
	kafkaBrokers  []string
}

func NewCheckoutService(
	cartStore repositories.CartStore,
	addressRepo repositories.AddressRepository,
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
	kafkaProducer *messaging.KafkaProducer,
	kafkaBrokers []string,
) *CheckoutService {
	return &CheckoutService{
		cartStore:     cartStore,
		addressRepo:   addressRepo,
		orderRepo:     orderRepo,
		paymentRepo:   paymentRepo,
		kafkaProducer: kafkaProducer,
		kafkaBrokers:  kafkaBrokers,
	}
}

// SingleItem is the buy-now shortcut seeded from a product detail page. The
// price arrives already multiplied by the quantity, matching the navigation
// parameters the product page passes along.
type SingleItem struct {
	ProductID string  `form:"id"`
	Name      string  `form:"name" binding:"required"`
	Price     float64 `form:"price" binding:"gte=0"`
	Quantity  int     `form:"quantity" binding:"gt=0"`
	Image     string  `form:"image"`
}

type OrderSummaryResponse struct {
	Items       []models.CartLineItem `json:"items"`
	Subtotal    float64               `json:"subtotal"`
	ShippingFee float64               `json:"shipping_fee"`
	TaxAmount   float64               `json:"tax_amount"`
	GrandTotal  float64               `json:"grand_total"`
}

type PlaceOrderRequest struct {
	ShippingAddress string             `json:"shipping_address"`
	BillingAddress  string             `json:"billing_address"`
	PaymentMethod   string             `json:"payment_method" binding:"required,oneof=cod card upi"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one submitted line. Only the buy-now flow supplies
// items; a cart checkout submits none and the server reads its own cart.
type OrderItemRequest struct {
	Product  string  `json:"product" binding:"required"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" binding:"gt=0"`
	Price    float64 `json:"price" binding:"gte=0"`
}

type PlaceOrderResponse struct {
	Order   *models.Order        `json:"order"`
	Payment *models.Payment      `json:"payment"`
	Summary OrderSummaryResponse `json:"summary"`
}

func summarize(items []models.CartLineItem, subtotal float64) OrderSummaryResponse {
	return OrderSummaryResponse{
		Items:       items,
		Subtotal:    subtotal,
		ShippingFee: ShippingFee(subtotal),
		TaxAmount:   TaxAmount(subtotal),
		GrandTotal:  GrandTotal(subtotal),
	}
}

// CartSummary computes the displayable order summary for the user's cart.
func (s *CheckoutService) CartSummary(ctx context.Context, userID string) (*OrderSummaryResponse, error) {
	cart, err := s.cartStore.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := summarize(cart.Items, cart.Total)
	return &summary, nil
}

// SingleItemSummary computes the summary for a buy-now item. The item price
// is the precomputed line total, so it is the subtotal as-is.
func (s *CheckoutService) SingleItemSummary(item *SingleItem) (*OrderSummaryResponse, error) {
	if item.Price < 0 {
		return nil, errors.New("price must be non-negative")
	}
	if item.Quantity <= 0 {
		return nil, errors.New("quantity must be a positive integer")
	}

	line := models.CartLineItem{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price / float64(item.Quantity),
		Quantity:  item.Quantity,
		Image:     item.Image,
	}
	summary := summarize([]models.CartLineItem{line}, item.Price)
	return &summary, nil
}

// PlaceOrder validates the selected address and payment method, persists the
// order with its items and payment record, publishes an order event, and
// clears the cart when the order was cart-sourced.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, req *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	// Local validation: no writes, no lookups, until an address is selected.
	if req.ShippingAddress == "" {
		return nil, errors.New("please select a delivery address")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	shippingUUID, err := uuid.Parse(req.ShippingAddress)
	if err != nil {
		return nil, errors.New("invalid address ID")
	}

	billingUUID := shippingUUID
	if req.BillingAddress != "" {
		billingUUID, err = uuid.Parse(req.BillingAddress)
		if err != nil {
			return nil, errors.New("invalid address ID")
		}
	}

	address, err := s.addressRepo.GetByID(ctx, shippingUUID)
	if err != nil {
		return nil, errors.New("address not found")
	}
	if address.UserID != userUUID {
		return nil, errors.New("address does not belong to user")
	}

	// Source the items: explicit items mean buy-now, otherwise the cart.
	cartSourced := len(req.Items) == 0

	var lines []models.CartLineItem
	if cartSourced {
		cart, err := s.cartStore.Load(ctx, userID)
		if err != nil {
			return nil, err
		}
		if len(cart.Items) == 0 {
			return nil, errors.New("cart is empty")
		}
		lines = cart.Items
	} else {
		for _, item := range req.Items {
			if item.Price < 0 || item.Quantity <= 0 {
				return nil, errors.New("invalid item price or quantity")
			}
			lines = append(lines, models.CartLineItem{
				ProductID: item.Product,
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
			})
		}
	}

	subtotal := Subtotal(lines)
	summary := summarize(lines, subtotal)

	order := &models.Order{
		OrderNumber:       generateOrderNumber(),
		UserID:            userUUID,
		ShippingAddressID: shippingUUID,
		BillingAddressID:  billingUUID,
		Status:            "pending",
		PaymentStatus:     "pending",
		PaymentMethod:     req.PaymentMethod,
		Subtotal:          summary.Subtotal,
		ShippingCost:      summary.ShippingFee,
		Tax:               summary.TaxAmount,
		Total:             summary.GrandTotal,
		CreatedAt:         time.Now(),
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Total:       line.LineTotal(),
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		OrderID:       order.ID,
		UserID:        userUUID,
		Amount:        order.Total,
		Method:        req.PaymentMethod,
		Status:        "pending",
		TransactionID: "TXN-" + order.OrderNumber,
		CreatedAt:     time.Now(),
		Metadata:      models.JSONB{},
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	// Clear the cart only now that the order is confirmed, and only when the
	// order actually came from the cart.
	if cartSourced {
		if err := s.cartStore.Clear(ctx, userID); err != nil {
			log.Printf("Failed to clear cart for user %s after order %s: %v", userID, order.OrderNumber, err)
		}
	}

	s.publishOrderEvent(order)

	return &PlaceOrderResponse{
		Order:   order,
		Payment: payment,
		Summary: summary,
	}, nil
}

func (s *CheckoutService) publishOrderEvent(order *models.Order) {
	if s.kafkaProducer == nil {
		return
	}

	event := messaging.OrderPlacedEvent{
		Type:          "order.placed",
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID.String(),
		PaymentMethod: order.PaymentMethod,
		Total:         order.Total,
		ItemCount:     len(order.Items),
	}
	if err := s.kafkaProducer.SendMessage("order_events", s.kafkaBrokers, order.ID.String(), event); err != nil {
		log.Printf("Failed to publish order event for %s: %v", order.OrderNumber, err)
	}
}

func generateOrderNumber() string {
	return "ORD" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
}
