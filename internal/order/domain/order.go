package domain

import "time"

type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// Order is an immutable snapshot of a consumed cart; only Status moves
// after creation.
type Order struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	UserID      string      `bson:"user_id" json:"user_id"`
	Items       []OrderItem `bson:"items" json:"items"`
	TotalAmount float64     `bson:"total_amount" json:"total_amount"`
	Status      OrderStatus `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// CartSnapshot is the order service's view of a cart fetched from the
// cart service at checkout time.
type CartSnapshot struct {
	UserID string             `json:"user_id"`
	Items  []CartSnapshotItem `json:"items"`
}

type CartSnapshotItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Total sums quantity × snapshot price. Prices are whatever the cart
// stored; the product catalog is not consulted.
func (c *CartSnapshot) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
