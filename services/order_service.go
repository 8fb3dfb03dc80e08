package services

import (
	"context"
	"strings"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"
	"github.com/ImmrAD/the-digital-diner/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Catalog  CatalogLookup
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, catalog CatalogLookup) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Catalog: catalog}
}

type OrderLineIn struct {
	MenuItemID          string `json:"menu_item_id" binding:"required"`
	Size                string `json:"size"`
	Quantity            int    `json:"quantity" binding:"required"`
	SpecialInstructions string `json:"special_instructions"`
}

type PlaceOrderIn struct {
	CustomerName string        `json:"customer_name" binding:"required"`
	Phone        string        `json:"phone_number" binding:"required"`
	Email        string        `json:"email"`
	Items        []OrderLineIn `json:"items" binding:"required"`
}

type CheckoutIn struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Phone        string `json:"phone_number" binding:"required"`
	Email        string `json:"email"`
}

// pricedLine is a line with its unit price resolved from the catalog.
type pricedLine struct {
	menuItemID   string
	size         string
	quantity     int
	unitPrice    int64
	instructions string
}

// priceLines resolves every line against the live catalog. Unit prices are
// always server-derived; any price a client sends is ignored.
func (s *OrderService) priceLines(ctx context.Context, lines []OrderLineIn) ([]pricedLine, int64, error) {
	if len(lines) == 0 {
		return nil, 0, apperr.Validationf("items is required")
	}

	priced := make([]pricedLine, 0, len(lines))
	var total int64
	for _, ln := range lines {
		if ln.Quantity <= 0 {
			return nil, 0, apperr.Validationf("quantity must be positive")
		}
		size, err := normalizeSize(ln.Size)
		if err != nil {
			return nil, 0, err
		}
		item, err := s.Catalog.GetByID(ctx, ln.MenuItemID)
		if err != nil {
			return nil, 0, err
		}
		if !item.Active {
			return nil, 0, apperr.Validationf("menu item %q is not available", item.Name)
		}
		unit, ok := item.Prices.For(size)
		if !ok {
			return nil, 0, apperr.Validationf("unknown size %q", size)
		}

		total += unit * int64(ln.Quantity)
		priced = append(priced, pricedLine{
			menuItemID:   ln.MenuItemID,
			size:         size,
			quantity:     ln.Quantity,
			unitPrice:    unit,
			instructions: strings.TrimSpace(ln.SpecialInstructions),
		})
	}
	return priced, total, nil
}

func validateCustomer(name, phone, email string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.Validationf("customer name is required")
	}
	if !phoneRe.MatchString(phone) {
		return apperr.Validationf("phone number must be 10 digits")
	}
	if email != "" && !emailRe.MatchString(email) {
		return apperr.Validationf("invalid email format")
	}
	return nil
}

// Place writes the order header and every line in one transaction; a
// failure along the way rolls back the whole order. Each line captures the
// catalog price at this moment and keeps it forever.
func (s *OrderService) Place(ctx context.Context, in *PlaceOrderIn) (*entity.Order, error) {
	if err := validateCustomer(in.CustomerName, in.Phone, in.Email); err != nil {
		return nil, err
	}
	priced, total, err := s.priceLines(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerName: strings.TrimSpace(in.CustomerName),
		Phone:        in.Phone,
		Status:       entity.OrderStatusPending,
		TotalAmount:  total,
	}
	if in.Email != "" {
		email := strings.ToLower(in.Email)
		order.Email = &email
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		for _, ln := range priced {
			oi := entity.OrderItem{
				OrderID:             order.ID,
				MenuItemID:          ln.menuItemID,
				Size:                ln.size,
				Quantity:            ln.quantity,
				UnitPrice:           ln.unitPrice,
				SpecialInstructions: ln.instructions,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		order.Items = nil
		return nil, err
	}
	return order, nil
}

// PlaceFromCart checks out the stored cart: same pricing and transaction
// rules as Place, with the cart emptied inside the same transaction.
func (s *OrderService) PlaceFromCart(ctx context.Context, userID string, in *CheckoutIn) (*entity.Order, error) {
	if err := validateCustomer(in.CustomerName, in.Phone, in.Email); err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.Validationf("cart is empty")
	}

	lines := make([]OrderLineIn, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, OrderLineIn{
			MenuItemID:          it.MenuItemID,
			Size:                it.Size,
			Quantity:            it.Quantity,
			SpecialInstructions: it.SpecialInstructions,
		})
	}
	priced, total, err := s.priceLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerName: strings.TrimSpace(in.CustomerName),
		Phone:        in.Phone,
		Status:       entity.OrderStatusPending,
		TotalAmount:  total,
	}
	if in.Email != "" {
		email := strings.ToLower(in.Email)
		order.Email = &email
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		for _, ln := range priced {
			oi := entity.OrderItem{
				OrderID:             order.ID,
				MenuItemID:          ln.menuItemID,
				Size:                ln.size,
				Quantity:            ln.quantity,
				UnitPrice:           ln.unitPrice,
				SpecialInstructions: ln.instructions,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return s.CartRepo.ClearItems(tx, cart.ID)
	})
	if err != nil {
		order.Items = nil
		return nil, err
	}
	return order, nil
}

// ListByPhone returns the order history newest first. No orders is an
// empty slice. Item names are enriched from the current catalog on a best
// effort basis; the persisted snapshot is returned either way.
func (s *OrderService) ListByPhone(ctx context.Context, phone string) ([]entity.Order, error) {
	if !phoneRe.MatchString(phone) {
		return nil, apperr.Validationf("phone number must be 10 digits")
	}

	orders, err := s.Repo.ListByPhone(phone)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		for j := range orders[i].Items {
			item, err := s.Catalog.GetByID(ctx, orders[i].Items[j].MenuItemID)
			if err != nil {
				continue
			}
			orders[i].Items[j].MenuItemName = item.Name
		}
	}
	return orders, nil
}
