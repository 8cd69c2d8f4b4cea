package model

import "fmt"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderStatusText = map[OrderStatus]string{
	OrderPending:   "Chờ xử lý",
	OrderConfirmed: "Đã xác nhận",
	OrderShipped:   "Đang giao",
	OrderDelivered: "Đã giao",
	OrderCancelled: "Đã hủy",
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if _, ok := orderStatusText[st]; !ok {
		return "", fmt.Errorf("invalid order status %q", s)
	}
	return st, nil
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusText[s]
	return ok
}

// Label devuelve el texto que muestra la interfaz.
func (s OrderStatus) Label() string {
	if t, ok := orderStatusText[s]; ok {
		return t
	}
	return string(s)
}
