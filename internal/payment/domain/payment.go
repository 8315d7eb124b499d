package domain

import "time"

type Payment struct {
	ID             string        `bson:"_id,omitempty" json:"id"`
	OrderID        string        `bson:"order_id" json:"order_id"`
	UserID         string        `bson:"user_id" json:"user_id"`
	Amount         float64       `bson:"amount" json:"amount"`
	Method         PaymentMethod `bson:"method" json:"method"`
	Status         PaymentStatus `bson:"status" json:"status"`
	TransactionRef string        `bson:"transaction_ref" json:"transaction_ref"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}
