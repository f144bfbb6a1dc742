package models

var statusBadgeClasses = map[string]string{
	StatusPending:   "bg-yellow-100 text-yellow-800",
	StatusConfirmed: "bg-blue-100 text-blue-800",
	StatusPreparing: "bg-orange-100 text-orange-800",
	StatusDelivered: "bg-green-100 text-green-800",
	StatusCancelled: "bg-red-100 text-red-800",
}

var orderTypeLabels = map[string]string{
	OrderTypeDelivery: "Delivery Orders",
	OrderTypeTakeaway: "Takeaway Orders",
	OrderTypeDineIn:   "Dine-in Orders",
}

// StatusBadgeClass maps an order status to its badge style. Unknown
// statuses fall back to a neutral style rather than failing.
func StatusBadgeClass(status string) string {
	if class, ok := statusBadgeClasses[status]; ok {
		return class
	}
	return "bg-gray-100 text-gray-800"
}

// PaymentStatusBadgeClass styles Paid positively and everything else,
// including unrecognized values, negatively.
func PaymentStatusBadgeClass(status string) string {
	if status == PaymentPaid {
		return "bg-green-100 text-green-800"
	}
	return "bg-red-100 text-red-800"
}

// OrderTypeLabel returns the sidebar label for an order type, or the raw
// value when the type is unknown.
func OrderTypeLabel(orderType string) string {
	if label, ok := orderTypeLabels[orderType]; ok {
		return label
	}
	return orderType
}
