package models

const (
	OrderStatusPlaced    = "placed"
	OrderStatusPreparing = "preparing"
	OrderStatusOnTheWay  = "on_the_way"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	AddressTypeHome   = "Home"
	AddressTypeOffice = "Office"
	AddressTypeOther  = "Other"

	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
	PaymentMethodUPI  = "upi"

	// Every order is promised this far out from placement.
	EstimatedDeliveryOffsetMinutes = 45
)

// IsTerminalStatus reports whether an order can progress no further.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}
