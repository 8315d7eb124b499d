package service

import "github.com/fjod/go_shop/internal/payment/domain"

// Outcome decides how a charge attempt ends. There is no real gateway
// behind it; the default strategy approves everything.
type Outcome interface {
	Process(payment *domain.Payment) domain.PaymentStatus
}

type AlwaysApprove struct{}

func (AlwaysApprove) Process(*domain.Payment) domain.PaymentStatus {
	return domain.PaymentStatusCompleted
}
