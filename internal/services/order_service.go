package services

import (
	"context"
	"log"
	"time"

	"shopmart/internal/caching"
	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/repositories"

	"github.com/google/uuid"
)

// OrderItemRequest is one requested product line of a new order.
type OrderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// OrderService orchestrates the ledger and the catalog inside one transaction
// to create an order.
type OrderService interface {
	Create(ctx context.Context, userID int64, items []OrderItemRequest) (*models.Order, error)
	FindByID(ctx context.Context, id int64) (*models.Order, error)
}

type orderService struct {
	store    repositories.Store
	cacheSvc caching.CacheService
}

func NewOrderService(store repositories.Store, cacheSvc caching.CacheService) OrderService {
	return &orderService{store: store, cacheSvc: cacheSvc}
}

// Create places an order for the user. All validation and every write happen
// inside a single transaction: product rows are locked on read, stock and
// balance checks run against the locked values, and the order, its items, the
// stock decrements and the balance debit commit together or not at all.
//
// TotalAmount is the sum of unit price times quantity over the items in input
// order, using the prices read here; each order item snapshots that unit price.
func (s *orderService) Create(ctx context.Context, userID int64, items []OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, &common.InvalidArgumentError{Field: "items", Message: "order must contain at least one item"}
	}

	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.store.ExecTx(ctx, func(st repositories.Store) error {
		total := 0.0
		products := make([]*models.Product, len(items))
		for i, item := range items {
			product, err := st.Products().GetByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product.Stock < item.Quantity {
				return &common.InsufficientStockError{
					ProductID: product.ID,
					Requested: item.Quantity,
					Available: product.Stock,
				}
			}
			products[i] = product
			total += product.Price * float64(item.Quantity)
		}

		if user.Balance < total {
			return &common.InsufficientBalanceError{
				UserID:   user.ID,
				Required: total,
				Balance:  user.Balance,
			}
		}

		order = &models.Order{
			UserID:      user.ID,
			Reference:   uuid.NewString(),
			OrderDate:   time.Now(),
			Status:      models.OrderStatusCompleted,
			TotalAmount: total,
		}
		if err := st.Orders().Create(ctx, order); err != nil {
			return err
		}

		for i, item := range items {
			orderItem := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     products[i].Price,
			}
			if err := st.OrderItems().Create(ctx, orderItem); err != nil {
				return err
			}
			order.Items = append(order.Items, orderItem)

			if _, err := st.Products().AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}

		if _, err := st.Users().AdjustBalance(ctx, user.ID, -total); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stock and popularity counts changed.
	if cacheErr := s.cacheSvc.InvalidateCatalog(ctx); cacheErr != nil {
		log.Printf("WARN: catalog cache invalidation failed: %v", cacheErr)
	}
	return order, nil
}

func (s *orderService) FindByID(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.store.Orders().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.store.OrderItems().ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}
