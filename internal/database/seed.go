package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/example/orderdash/internal/models"
)

// Seed inserts the demo orders when the orders table is empty.
func Seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	orders := DemoOrders()
	for i := range orders {
		if err := conn.Create(&orders[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("[Database] seeded %d demo orders", len(orders))
	return nil
}

// DemoOrders returns the sample order set used for seeding and for the
// in-memory repository when no database is configured.
func DemoOrders() []models.Order {
	return []models.Order{
		{
			BaseModel: models.BaseModel{CreatedAt: time.Date(2025, 7, 8, 10, 21, 51, 0, time.UTC)},
			OrderID:   "ORD-1751970111557",
			OrderType: models.OrderTypeDelivery,
			Status:    models.StatusPending,
			FormData: &models.CustomerForm{
				FullName:     "Mubashir",
				Email:        "iamu7564@gmail.com",
				Phone:        "03071742",
				Confirmation: models.ConfirmationPending,
			},
			PaymentMethod: "cod",
			Billing: models.Billing{
				PaymentStatus: models.PaymentUnpaid,
				TotalAmount:   amount(156.84),
			},
			Cart: []models.CartItem{
				{Position: 0, Name: "Chicken Burger", Quantity: 1, Price: 9.98},
				{Position: 1, Name: "Double Beef Cheeseburger", Quantity: 3, Price: 26.97},
				{Position: 2, Name: "Veggie Pizza", Quantity: 1, Price: 17.99},
			},
		},
		{
			BaseModel: models.BaseModel{CreatedAt: time.Date(2025, 7, 8, 11, 15, 30, 0, time.UTC)},
			OrderID:   "ORD-1751970111558",
			OrderType: models.OrderTypeTakeaway,
			Status:    models.StatusConfirmed,
			FormData: &models.CustomerForm{
				FullName:     "Sarah Johnson",
				Email:        "sarah@email.com",
				Phone:        "03071743",
				Confirmation: models.ConfirmationConfirmed,
				PickupTime:   "2:30 PM",
			},
			PaymentMethod: "card",
			Billing: models.Billing{
				PaymentStatus: models.PaymentPaid,
				TotalAmount:   amount(45.5),
			},
			Cart: []models.CartItem{
				{Position: 0, Name: "BBQ Chicken Pizza", Quantity: 1, Price: 25.98},
				{Position: 1, Name: "French Fries", Quantity: 2, Price: 5.98},
			},
		},
		{
			BaseModel: models.BaseModel{CreatedAt: time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC)},
			OrderID:   "ORD-1751970111559",
			OrderType: models.OrderTypeDineIn,
			Status:    models.StatusPreparing,
			DineIn: &models.DineInInfo{
				TableNo: "T-05",
				EmpID:   "EMP001",
				EmpName: "John Doe",
			},
			Billing: models.Billing{
				PaymentStatus: models.PaymentUnpaid,
				TotalAmount:   amount(78.9),
			},
			Cart: []models.CartItem{
				{Position: 0, Name: "Family Feast Box", Quantity: 1, Price: 27.99},
				{Position: 1, Name: "Chicken Wings", Quantity: 2, Price: 11.98},
			},
		},
		{
			BaseModel: models.BaseModel{CreatedAt: time.Date(2025, 7, 8, 9, 30, 0, 0, time.UTC)},
			OrderID:   "ORD-1751970111560",
			OrderType: models.OrderTypeDelivery,
			Status:    models.StatusDelivered,
			FormData: &models.CustomerForm{
				FullName:     "Mike Wilson",
				Email:        "mike@email.com",
				Phone:        "03071744",
				Confirmation: models.ConfirmationConfirmed,
				Address:      "123 Main St",
			},
			PaymentMethod: "online",
			Billing: models.Billing{
				PaymentStatus: models.PaymentPaid,
				TotalAmount:   amount(32.47),
			},
			Cart: []models.CartItem{
				{Position: 0, Name: "Butcher Beef", Quantity: 1, Price: 11.98},
				{Position: 1, Name: "Snack Attack Box", Quantity: 1, Price: 8.49},
			},
		},
	}
}

func amount(v float64) *float64 {
	return &v
}
