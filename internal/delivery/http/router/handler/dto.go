package handler

import (
	"time"

	"sklad/internal/domain/entity"
	"sklad/internal/domain/repository"
	"sklad/internal/usecase"

	"github.com/google/uuid"
)

// The view types below are the JSON shapes returned to clients. Entities
// are never serialized directly, so internal fields like password hashes
// cannot leak through a handler.

// UserView is the client-facing representation of an employee account.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserView(user *entity.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, len(users))
	for i, user := range users {
		views[i] = toUserView(user)
	}

	return views
}

// LoginView returns the token pair together with the account it belongs to.
type LoginView struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *UserView `json:"user"`
}

// TokenPairView returns a rotated token pair.
type TokenPairView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ReferenceView is the common shape of brands and categories.
type ReferenceView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toBrandView(brand *entity.Brand) *ReferenceView {
	return &ReferenceView{ID: brand.ID, Name: brand.Name, CreatedAt: brand.CreatedAt}
}

func toBrandViews(brands []*entity.Brand) []*ReferenceView {
	views := make([]*ReferenceView, len(brands))
	for i, brand := range brands {
		views[i] = toBrandView(brand)
	}

	return views
}

func toCategoryView(category *entity.Category) *ReferenceView {
	return &ReferenceView{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}
}

func toCategoryViews(categories []*entity.Category) []*ReferenceView {
	views := make([]*ReferenceView, len(categories))
	for i, category := range categories {
		views[i] = toCategoryView(category)
	}

	return views
}

// ColorView adds the display hex code to the reference shape.
type ColorView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Hex       string    `json:"hex"`
	CreatedAt time.Time `json:"created_at"`
}

func toColorView(color *entity.Color) *ColorView {
	return &ColorView{ID: color.ID, Name: color.Name, Hex: color.Hex, CreatedAt: color.CreatedAt}
}

func toColorViews(colors []*entity.Color) []*ColorView {
	views := make([]*ColorView, len(colors))
	for i, color := range colors {
		views[i] = toColorView(color)
	}

	return views
}

// ProductView is the client-facing representation of a product with its
// resolved references.
type ProductView struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	SKU       string         `json:"sku"`
	Unit      string         `json:"unit"`
	Price     int64          `json:"price"`
	Stock     int            `json:"stock"`
	Brand     *ReferenceView `json:"brand,omitempty"`
	Category  *ReferenceView `json:"category,omitempty"`
	Color     *ColorView     `json:"color,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func toProductView(product *entity.Product) *ProductView {
	view := &ProductView{
		ID:        product.ID,
		Name:      product.Name,
		SKU:       product.SKU,
		Unit:      product.Unit,
		Price:     product.Price,
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
	if product.Brand != nil {
		view.Brand = toBrandView(product.Brand)
	}
	if product.Category != nil {
		view.Category = toCategoryView(product.Category)
	}
	if product.Color != nil {
		view.Color = toColorView(product.Color)
	}

	return view
}

func toProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, len(products))
	for i, product := range products {
		views[i] = toProductView(product)
	}

	return views
}

// StockItemView is one product line of a stock document.
type StockItemView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity"`
	UnitAmount  int64     `json:"unit_amount"`
}

// ReceiptView is the client-facing representation of a goods arrival.
type ReceiptView struct {
	ID          uuid.UUID        `json:"id"`
	Number      string           `json:"number"`
	Supplier    string           `json:"supplier"`
	Note        string           `json:"note,omitempty"`
	CreatedByID uuid.UUID        `json:"created_by_id"`
	Items       []*StockItemView `json:"items"`
	Total       int64            `json:"total"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toReceiptView(receipt *entity.Receipt) *ReceiptView {
	items := make([]*StockItemView, len(receipt.Items))
	for i, item := range receipt.Items {
		items[i] = &StockItemView{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitCost,
		}
		if item.Product != nil {
			items[i].ProductName = item.Product.Name
		}
	}

	return &ReceiptView{
		ID:          receipt.ID,
		Number:      receipt.Number,
		Supplier:    receipt.Supplier,
		Note:        receipt.Note,
		CreatedByID: receipt.CreatedByID,
		Items:       items,
		Total:       receipt.TotalCost(),
		CreatedAt:   receipt.CreatedAt,
	}
}

func toReceiptViews(receipts []*entity.Receipt) []*ReceiptView {
	views := make([]*ReceiptView, len(receipts))
	for i, receipt := range receipts {
		views[i] = toReceiptView(receipt)
	}

	return views
}

// RealizationView is the client-facing representation of a shipment.
type RealizationView struct {
	ID          uuid.UUID        `json:"id"`
	Number      string           `json:"number"`
	Customer    string           `json:"customer"`
	Note        string           `json:"note,omitempty"`
	CreatedByID uuid.UUID        `json:"created_by_id"`
	Items       []*StockItemView `json:"items"`
	Total       int64            `json:"total"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toRealizationView(realization *entity.Realization) *RealizationView {
	items := make([]*StockItemView, len(realization.Items))
	for i, item := range realization.Items {
		items[i] = &StockItemView{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitPrice,
		}
		if item.Product != nil {
			items[i].ProductName = item.Product.Name
		}
	}

	return &RealizationView{
		ID:          realization.ID,
		Number:      realization.Number,
		Customer:    realization.Customer,
		Note:        realization.Note,
		CreatedByID: realization.CreatedByID,
		Items:       items,
		Total:       realization.TotalPrice(),
		CreatedAt:   realization.CreatedAt,
	}
}

func toRealizationViews(realizations []*entity.Realization) []*RealizationView {
	views := make([]*RealizationView, len(realizations))
	for i, realization := range realizations {
		views[i] = toRealizationView(realization)
	}

	return views
}

// ChatMessageView is one staff chat message.
type ChatMessageView struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func toChatMessageView(message *entity.ChatMessage) *ChatMessageView {
	return &ChatMessageView{
		ID:         message.ID,
		AuthorID:   message.AuthorID,
		AuthorName: message.AuthorName,
		Text:       message.Text,
		CreatedAt:  message.CreatedAt,
	}
}

func toChatMessageViews(messages []*entity.ChatMessage) []*ChatMessageView {
	views := make([]*ChatMessageView, len(messages))
	for i, message := range messages {
		views[i] = toChatMessageView(message)
	}

	return views
}

// TaskView is the client-facing representation of a work item.
type TaskView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedByID uuid.UUID  `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toTaskView(task *entity.Task) *TaskView {
	return &TaskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		AssigneeID:  task.AssigneeID,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		CreatedByID: task.CreatedByID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func toTaskViews(tasks []*entity.Task) []*TaskView {
	views := make([]*TaskView, len(tasks))
	for i, task := range tasks {
		views[i] = toTaskView(task)
	}

	return views
}

// UserActionView is one audit-log entry.
type UserActionView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	EntityID  string    `json:"entity_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserActionViews(actions []*entity.UserAction) []*UserActionView {
	views := make([]*UserActionView, len(actions))
	for i, action := range actions {
		views[i] = &UserActionView{
			ID:        action.ID,
			UserID:    action.UserID,
			Action:    action.Action,
			Method:    action.Method,
			Path:      action.Path,
			EntityID:  action.EntityID,
			CreatedAt: action.CreatedAt,
		}
	}

	return views
}

// MovementView is per-product movement totals for a period.
type MovementView struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	ReceivedQty    int       `json:"received_qty"`
	ShippedQty     int       `json:"shipped_qty"`
	ReceivedCost   int64     `json:"received_cost"`
	ShippedRevenue int64     `json:"shipped_revenue"`
}

// MovementsView is the movement report body.
type MovementsView struct {
	From      time.Time       `json:"from"`
	To        time.Time       `json:"to"`
	Movements []*MovementView `json:"movements"`
}

func toMovementsView(output *usecase.MovementsOutput) *MovementsView {
	movements := make([]*MovementView, len(output.Movements))
	for i, m := range output.Movements {
		movements[i] = toMovementView(m)
	}

	return &MovementsView{From: output.From, To: output.To, Movements: movements}
}

func toMovementView(totals *repository.MovementTotals) *MovementView {
	return &MovementView{
		ProductID:      totals.ProductID,
		ProductName:    totals.ProductName,
		ReceivedQty:    totals.ReceivedQty,
		ShippedQty:     totals.ShippedQty,
		ReceivedCost:   totals.ReceivedCost,
		ShippedRevenue: totals.ShippedRevenue,
	}
}

// SummaryView holds the dashboard counters.
type SummaryView struct {
	Products     int64 `json:"products"`
	Users        int64 `json:"users"`
	Receipts     int64 `json:"receipts"`
	Realizations int64 `json:"realizations"`
	StockUnits   int64 `json:"stock_units"`
}
