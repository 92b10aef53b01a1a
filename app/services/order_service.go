package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/josbet/floreria/app/models"
	"github.com/josbet/floreria/app/repositories"
	"github.com/josbet/floreria/pkg/metrics"
)

// PlaceOrderInput carries the custom order form fields.
type PlaceOrderInput struct {
	FlowerType   string
	Color        string
	Quantity     string
	Message      string
	Extra        string
	Phone        string
	CustomerName string
}

// OrderService records custom arrangement orders.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService(orders *repositories.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// Place stores a custom order for user. The customer name defaults to the
// username when the form left it blank, and the total stays zero until an
// admin quotes the arrangement. The free-form fields are stored as given.
func (s *OrderService) Place(user models.User, in PlaceOrderInput) (models.Order, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		customerName = user.Username
	}

	userID := user.ID
	order := models.Order{
		Reference:    uuid.NewString(),
		UserID:       &userID,
		CustomerName: customerName,
		Phone:        strings.TrimSpace(in.Phone),
		Total:        0,
	}
	if err := order.SetDetail(models.OrderDetail{
		FlowerType: strings.TrimSpace(in.FlowerType),
		Color:      strings.TrimSpace(in.Color),
		Quantity:   strings.TrimSpace(in.Quantity),
		Message:    strings.TrimSpace(in.Message),
		Extra:      strings.TrimSpace(in.Extra),
	}); err != nil {
		return models.Order{}, err
	}

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.Inc()
	return order, nil
}
