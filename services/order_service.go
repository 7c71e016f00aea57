package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant-api/models"
	"restaurant-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderUpdate carries a partial update; nil fields are left unchanged.
type OrderUpdate struct {
	Status       *string `json:"status"`
	DeliveryCrew *uint   `json:"delivery_crew"`
}

// IOrderService defines the interface for order lifecycle business logic.
type IOrderService interface {
	Checkout(userID uint) (*models.Order, error)
	ListOrders(p *models.Principal) ([]models.Order, error)
	GetOrder(p *models.Principal, id uint) (*models.Order, error)
	UpdateOrder(p *models.Principal, id uint, update OrderUpdate) (*models.Order, error)
	DeleteOrder(id uint) error
}

// OrderService implements IOrderService.
type OrderService struct {
	orderRepo    repository.IOrderRepository
	cartRepo     repository.ICartRepository
	userRepo     repository.IUserRepository
	kafkaService IKafkaService
	kafkaTopic   string
	logger       *zap.Logger
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(
	orderRepo repository.IOrderRepository,
	cartRepo repository.ICartRepository,
	userRepo repository.IUserRepository,
	kafkaSvc IKafkaService,
	topic string,
	logger *zap.Logger,
) IOrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		userRepo:     userRepo,
		kafkaService: kafkaSvc,
		kafkaTopic:   topic,
		logger:       logger,
	}
}

// Checkout converts the caller's cart into an immutable order. The order,
// its item snapshots and the cart clear happen in one transaction; the
// lifecycle event is published only after the commit and never undoes it.
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	cart, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", models.ErrValidation)
	}

	var total float64
	items := make([]models.OrderItem, 0, len(cart))
	for _, row := range cart {
		total += row.Price
		items = append(items, models.OrderItem{
			MenuItemID: row.MenuItemID,
			Quantity:   row.Quantity,
			UnitPrice:  row.UnitPrice,
			Price:      row.Price,
		})
	}

	order := &models.Order{
		UserID: userID,
		Status: models.StatusPending,
		Total:  total,
		Date:   time.Now(),
		Items:  items,
	}
	if err := s.orderRepo.CreateFromCart(order, len(cart)); err != nil {
		return nil, fmt.Errorf("failed to save order to database: %w", err)
	}

	s.publishEvent(models.EventOrderPlaced, order)
	return order, nil
}

// ListOrders returns the orders visible to the principal: managers see
// all, delivery crew the ones assigned to them, customers their own.
func (s *OrderService) ListOrders(p *models.Principal) ([]models.Order, error) {
	switch {
	case p.User.IsManager() || p.User.Superuser:
		return s.orderRepo.ListAll()
	case p.User.IsDeliveryCrew():
		return s.orderRepo.ListByDeliveryCrew(p.User.ID)
	default:
		return s.orderRepo.ListByUser(p.User.ID)
	}
}

// GetOrder returns a single order with its items, for the owner only.
func (s *OrderService) GetOrder(p *models.Principal, id uint) (*models.Order, error) {
	order, err := s.findOrder(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != p.User.ID {
		return nil, fmt.Errorf("%w: order %d belongs to another customer", models.ErrForbidden, id)
	}
	return order, nil
}

// UpdateOrder applies a partial update under the role rules: a manager
// may set status and/or reassign the delivery crew on any order; an
// assigned crew member may set only the status of their own orders.
// Absent fields are never overwritten.
func (s *OrderService) UpdateOrder(p *models.Principal, id uint, update OrderUpdate) (*models.Order, error) {
	order, err := s.findOrder(id)
	if err != nil {
		return nil, err
	}

	isManager := p.User.IsManager() || p.User.Superuser
	if !isManager {
		if !p.User.IsDeliveryCrew() {
			return nil, fmt.Errorf("%w: order update denied", models.ErrForbidden)
		}
		if order.DeliveryCrewID == nil || *order.DeliveryCrewID != p.User.ID {
			return nil, fmt.Errorf("%w: order %d is not assigned to you", models.ErrForbidden, id)
		}
		if update.DeliveryCrew != nil {
			return nil, fmt.Errorf("%w: delivery crew may only update status", models.ErrForbidden)
		}
	}

	attrs := map[string]interface{}{}
	if update.Status != nil {
		status, err := models.ParseOrderStatus(*update.Status)
		if err != nil {
			return nil, err
		}
		attrs["status"] = status
	}
	if update.DeliveryCrew != nil {
		crew, err := s.userRepo.FindByID(*update.DeliveryCrew)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: user %d does not exist", models.ErrValidation, *update.DeliveryCrew)
			}
			return nil, fmt.Errorf("failed to look up delivery crew: %w", err)
		}
		if !crew.IsDeliveryCrew() {
			return nil, fmt.Errorf("%w: user %s is not delivery crew", models.ErrValidation, crew.Username)
		}
		attrs["delivery_crew_id"] = crew.ID
	}

	if len(attrs) > 0 {
		if err := s.orderRepo.UpdateOrder(id, attrs); err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}

	updated, err := s.findOrder(id)
	if err != nil {
		return nil, err
	}
	if update.DeliveryCrew != nil {
		s.publishEvent(models.EventOrderAssigned, updated)
	}
	if update.Status != nil {
		s.publishEvent(models.EventOrderStatusChanged, updated)
	}
	return updated, nil
}

// DeleteOrder removes an order and its items. Role gating happens at the
// boundary; this is the manager-only terminal transition.
func (s *OrderService) DeleteOrder(id uint) error {
	order, err := s.findOrder(id)
	if err != nil {
		return err
	}
	if err := s.orderRepo.DeleteOrder(id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	s.publishEvent(models.EventOrderCancelled, order)
	return nil
}

func (s *OrderService) findOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return order, nil
}

// publishEvent emits an order lifecycle event. A publish failure is
// logged and swallowed: the DB write has already committed.
func (s *OrderService) publishEvent(event string, order *models.Order) {
	payload, err := json.Marshal(models.OrderEvent{
		Event:        event,
		OrderID:      order.ID,
		UserID:       order.UserID,
		Status:       order.Status,
		DeliveryCrew: order.DeliveryCrewID,
		Total:        order.Total,
		Timestamp:    time.Now(),
	})
	if err != nil {
		s.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	if err := s.kafkaService.PushMessage(s.kafkaTopic, payload); err != nil {
		s.logger.Error("failed to publish order event",
			zap.String("event", event),
			zap.Uint("order_id", order.ID),
			zap.Error(err))
	}
}
