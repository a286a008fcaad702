// Package orders implements the order workflows: placement, lookup by pickup
// code, fulfillment, deletion and the sales aggregate.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cafetec/cafetec-api/internal/cart"
	"github.com/cafetec/cafetec-api/internal/models"
	"github.com/cafetec/cafetec-api/internal/ordercode"
	"github.com/cafetec/cafetec-api/internal/service/userstore"
)

var (
	ErrValidation = errors.New("solicitud inválida") // 400
	ErrNotFound   = errors.New("no encontrado")      // 404
)

// UserMessage strips the sentinel prefix from a wrapped validation error,
// leaving the text shown to the customer.
func UserMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
}

type LineInput struct {
	ProductID uint   `json:"producto_id"`
	Quantity  int    `json:"cantidad"`
	Note      string `json:"comentario"`
}

type PlaceRequest struct {
	Name          string      `json:"nombre"`
	Email         string      `json:"correo"`
	PaymentMethod string      `json:"metodo_pago"`
	Items         []LineInput `json:"items"`
}

type Service struct {
	DB *gorm.DB
}

// Place validates the request and commits user, pedido and detalle rows in a
// single transaction. The total is computed here from current product prices;
// the client never supplies one. Each line also captures the unit price so the
// order survives later menu edits.
func (s *Service) Place(ctx context.Context, req PlaceRequest) (*models.Order, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: ingresa el nombre y correo del cliente", ErrValidation)
	}
	if req.PaymentMethod != models.PaymentCash && req.PaymentMethod != models.PaymentTransfer {
		return nil, fmt.Errorf("%w: selecciona un método de pago", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: el carrito está vacío", ErrValidation)
	}
	for _, in := range req.Items {
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", ErrValidation)
		}
	}

	var order *models.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, _, err := userstore.FindOrCreate(ctx, tx, strings.TrimSpace(req.Name), strings.TrimSpace(req.Email))
		if err != nil {
			return err
		}

		c := cart.New()
		for _, in := range req.Items {
			var p models.Product
			if err := tx.First(&p, in.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: el producto %d no existe", ErrValidation, in.ProductID)
				}
				return err
			}
			c.Add(p, uint(in.Quantity), in.Note)
		}

		items := make([]models.OrderItem, 0, c.Len())
		for _, it := range c.Items() {
			var note *string
			if it.Note != "" {
				n := it.Note
				note = &n
			}
			items = append(items, models.OrderItem{
				ProductID: it.Product.ID,
				Quantity:  it.Quantity,
				Note:      note,
				UnitPrice: it.Product.Price,
			})
		}

		order = &models.Order{
			Code:          ordercode.New(),
			UserID:        user.ID,
			User:          user,
			PaymentMethod: req.PaymentMethod,
			Total:         c.Total(),
			Status:        models.OrderStatusPending,
			Items:         items,
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// FindByCode fetches the order matching a pickup code with its user, lines
// and products. Codes are not guaranteed unique, so anything but exactly one
// match reports not found.
func (s *Service) FindByCode(ctx context.Context, code string) (*models.Order, error) {
	var matches []models.Order
	err := s.DB.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Where("codigo = ?", strings.ToUpper(strings.TrimSpace(code))).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if len(matches) != 1 {
		return nil, ErrNotFound
	}
	return &matches[0], nil
}

// Finalize marks the order for a code as completed. Finalizing an already
// completed order is a no-op transition and still reports success.
func (s *Service) Finalize(ctx context.Context, code string) (*models.Order, error) {
	order, err := s.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusCompleted {
		if err := s.DB.WithContext(ctx).Model(order).Update("estado", models.OrderStatusCompleted).Error; err != nil {
			return nil, err
		}
		order.Status = models.OrderStatusCompleted
	}
	return order, nil
}

// List returns the orders in a given state, most recent first.
func (s *Service) List(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Where("estado = ?", status).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes an order and its lines. Irreversible.
func (s *Service) Delete(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Select(clause.Associations).Delete(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Sales returns completed orders most recent first and the aggregate of their
// totals, recomputed from the full result set on every call.
func (s *Service) Sales(ctx context.Context) ([]models.Order, float64, error) {
	orders, err := s.List(ctx, models.OrderStatusCompleted)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return orders, total, nil
}
