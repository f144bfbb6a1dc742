package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order types. The type is fixed at creation and determines whether the
// order carries customer form data or dine-in info.
const (
	OrderTypeDelivery = "delivery"
	OrderTypeTakeaway = "takeaway"
	OrderTypeDineIn   = "dinein"
)

// Order statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"
)

// Confirmation statuses for the customer form.
const (
	ConfirmationPending   = "pending"
	ConfirmationConfirmed = "confirmed"
)

// Order is one customer transaction as delivered by the upstream orders
// service. Exactly one of FormData and DineIn is populated, keyed by
// OrderType: dine-in orders carry DineIn, everything else carries FormData.
type Order struct {
	BaseModel
	OrderID       string        `gorm:"uniqueIndex" json:"orderId"`
	OrderType     string        `gorm:"index" json:"orderType"`
	Status        string        `json:"status"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	FormData      *CustomerForm `gorm:"foreignKey:OrderRef" json:"formData,omitempty"`
	DineIn        *DineInInfo   `gorm:"foreignKey:OrderRef" json:"dineInInfo,omitempty"`
	Billing       Billing       `gorm:"embedded;embeddedPrefix:billing_" json:"billing"`
	Cart          []CartItem    `gorm:"foreignKey:OrderRef" json:"cart"`
}

// CustomerForm holds the customer-entered details for delivery and takeaway
// orders. Address fields apply to delivery, pickup time to takeaway.
type CustomerForm struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	OrderRef     uuid.UUID `gorm:"type:uuid;index" json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	PickupTime   string    `json:"pickupTime,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	Confirmation string    `json:"confirmation"`
}

// DineInInfo identifies the table and the employee who took a dine-in order.
type DineInInfo struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	OrderRef uuid.UUID `gorm:"type:uuid;index" json:"-"`
	TableNo  string    `json:"tableNo"`
	EmpID    string    `json:"empId"`
	EmpName  string    `json:"empName"`
}

// Billing is the payment sub-record. TotalAmount is a pointer so an absent
// upstream total is distinguishable from zero; display code falls back to
// the cart subtotal when it is nil.
type Billing struct {
	PaymentStatus  string   `json:"paymentStatus"`
	DiscountAmount float64  `json:"discountAmount,omitempty"`
	TaxAmount      float64  `json:"taxAmount,omitempty"`
	TotalAmount    *float64 `json:"totalAmount,omitempty"`
}

// CartItem is one line item. Position preserves the upstream cart order,
// which is display-relevant (the first two items are shown in list rows).
type CartItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"-"`
	OrderRef      uuid.UUID      `gorm:"type:uuid;index" json:"-"`
	Position      int            `gorm:"index" json:"-"`
	Name          string         `json:"name"`
	Price         float64        `json:"price"`
	Quantity      int            `json:"quantity"`
	Image         string         `json:"image,omitempty"`
	Category      string         `json:"category,omitempty"`
	SelectedItems []SelectedItem `gorm:"foreignKey:CartItemRef" json:"selectedItems,omitempty"`
}

// SelectedItem is a chosen sub-option of a cart item.
type SelectedItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	CartItemRef uuid.UUID `gorm:"type:uuid;index" json:"-"`
	Flavour     string    `json:"flavour,omitempty"`
	Option      string    `json:"option,omitempty"`
	MealType    string    `json:"mealType,omitempty"`
}

func (f *CustomerForm) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (d *DineInInfo) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (s *SelectedItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Subtotal sums price times quantity over the cart.
func (o Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.Cart {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// DisplayTotal returns the billing total when the upstream provided one,
// otherwise the cart subtotal with no tax or discount applied.
func (o Order) DisplayTotal() float64 {
	if o.Billing.TotalAmount != nil {
		return *o.Billing.TotalAmount
	}
	return o.Subtotal()
}
