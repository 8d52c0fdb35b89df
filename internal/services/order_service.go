package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"tableside-service/internal/domain"
	rabbit "tableside-service/internal/infra/rabbitmq"
	"tableside-service/internal/repository"

	"golang.org/x/sync/semaphore"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrTableNotFound        = errors.New("table not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrMenuItemUnavailable  = errors.New("menu item is not available")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

// OrderService owns the order lifecycle: it validates and prices incoming
// orders against the live menu, drives orders through the status pipeline,
// and keeps table occupancy in sync with the set of active orders.
type OrderService struct {
	orders    repository.OrderRepository
	menu      repository.MenuRepository
	tables    repository.TableRepository
	publisher rabbit.PublisherInterface

	strictTransitions bool

	// tableLocks serializes occupancy recomputes per table so that two
	// concurrent order mutations cannot race the count-then-write.
	mu         sync.Mutex
	tableLocks map[uint64]*semaphore.Weighted
}

func NewOrderService(orders repository.OrderRepository, menu repository.MenuRepository, tables repository.TableRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:     orders,
		menu:       menu,
		tables:     tables,
		publisher:  pub,
		tableLocks: make(map[uint64]*semaphore.Weighted),
	}
}

// EnableStrictTransitions turns on forward-pipeline enforcement for
// status updates. Off by default: the kitchen and admin clients only ever
// request forward or cancel transitions, so the permissive behavior is
// what production traffic sees.
func (s *OrderService) EnableStrictTransitions() {
	s.strictTransitions = true
}

// CreateOrder validates every requested line against the live menu,
// snapshots names and prices, and persists the order with its computed
// total. Validation is all-or-nothing: a single unknown or unavailable
// item aborts the whole submission with nothing written. On success the
// table's occupancy is recomputed before the call returns.
func (s *OrderService) CreateOrder(ctx context.Context, tableID uint64, lines []domain.CartLine, notes string) (*domain.Order, error) {
	table, err := s.tables.FindByID(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var items []domain.OrderItem
	var total float64
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: menu item %d", ErrInvalidQuantity, line.MenuItemID)
		}

		menuItem, err := s.menu.FindItemByID(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, fmt.Errorf("%w: id %d", ErrMenuItemNotFound, line.MenuItemID)
		}
		if !menuItem.Available {
			return nil, fmt.Errorf("%w: %q", ErrMenuItemUnavailable, menuItem.Name)
		}

		items = append(items, domain.OrderItem{
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			Price:               menuItem.Price,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
		total += menuItem.Price * float64(line.Quantity)
	}

	order := &domain.Order{
		TableID:     tableID,
		TableNumber: table.Number,
		Items:       items,
		Status:      domain.StatusPending,
		Total:       total,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}

	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	if err := s.syncTableOccupancy(ctx, tableID); err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

// SubmitCart prices and persists the cart a customer assembled for their
// table.
func (s *OrderService) SubmitCart(ctx context.Context, cart *domain.Cart) (*domain.Order, error) {
	if cart.Empty() {
		return nil, ErrEmptyOrder
	}
	return s.CreateOrder(ctx, cart.TableID(), cart.Lines(), cart.Notes())
}

// UpdateStatus moves an order to the requested status. Any enumerated
// status is accepted from any state unless strict transitions are
// enabled. Moving into delivered or canceled recomputes the table's
// occupancy; this is the only path that can release a table.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if s.strictTransitions && !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, order.Status, status)
	}

	if err := s.orders.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	if status.Terminal() {
		if err := s.syncTableOccupancy(ctx, order.TableID); err != nil {
			return nil, err
		}
	}

	go s.publishStatusChanged(context.Background(), order)

	return order, nil
}

func (s *OrderService) GetOrder(id uint64) (*domain.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrders() ([]domain.Order, error) {
	return s.orders.FindAll()
}

func (s *OrderService) ListOrdersByStatus(status domain.OrderStatus) ([]domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.orders.FindByStatus(status)
}

// ListActiveOrdersByTable returns the table's non-terminal orders, the
// view a seated customer sees.
func (s *OrderService) ListActiveOrdersByTable(tableID uint64) ([]domain.Order, error) {
	return s.orders.FindActiveByTable(tableID)
}

// syncTableOccupancy recomputes the table's derived occupancy from its
// active-order count: occupied iff at least one order is not delivered or
// canceled. It runs synchronously inside order creation and terminal
// status updates, and is serialized per table so the count always
// observes the caller's just-persisted write.
func (s *OrderService) syncTableOccupancy(ctx context.Context, tableID uint64) error {
	lock := s.tableLock(tableID)
	if err := lock.Acquire(ctx, 1); err != nil {
		return err
	}
	defer lock.Release(1)

	count, err := s.orders.CountActiveByTable(tableID)
	if err != nil {
		return err
	}

	status := domain.TableAvailable
	if count > 0 {
		status = domain.TableOccupied
	}
	return s.tables.UpdateStatus(tableID, status)
}

func (s *OrderService) tableLock(tableID uint64) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.tableLocks[tableID]
	if !ok {
		lock = semaphore.NewWeighted(1)
		s.tableLocks[tableID] = lock
	}
	return lock
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		TableID:     order.TableID,
		TableNumber: order.TableNumber,
		Total:       order.Total,
		CreatedAt:   order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created: %v", err)
	}
}

func (s *OrderService) publishStatusChanged(ctx context.Context, order *domain.Order) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:     order.ID,
		TableID:     order.TableID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		ChangedAt:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("failed to publish order.status_changed: %v", err)
	}
}
