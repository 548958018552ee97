package enum

// OrderChannel is where an order originated.
type OrderChannel string

const (
	OrderChannelDineIn   OrderChannel = "dine_in"
	OrderChannelTakeaway OrderChannel = "takeaway"
	OrderChannelDelivery OrderChannel = "delivery"
)

// Valid reports whether c is one of the supported channels.
func (c OrderChannel) Valid() bool {
	switch c {
	case OrderChannelDineIn, OrderChannelTakeaway, OrderChannelDelivery:
		return true
	}
	return false
}
