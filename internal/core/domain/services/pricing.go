package services

import (
	"errors"

	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
)

// DeliveryPricing is a domain service computing the delivery fee of an order
// from its delivery mode and the subtotal of its items.
//
// Business rules:
//   - Pickup orders carry no fee
//   - City and remote deliveries carry their configured flat fee
//   - When a free-delivery threshold is configured (non-zero) and the
//     subtotal reaches it, courier delivery is free as well
//
// The service is immutable configuration; create it once at startup and
// share it freely across goroutines.
//
// Example usage:
//
//	pricing, _ := services.NewDeliveryPricing(cityFee, remoteFee, threshold)
//	fee, err := pricing.FeeFor(order.DeliveryTypeCity, subtotal)
type DeliveryPricing struct {
	cityFee       kernel.Money
	remoteFee     kernel.Money
	freeThreshold kernel.Money
}

// NewDeliveryPricing creates a DeliveryPricing service.
// A zero freeThreshold disables free delivery.
func NewDeliveryPricing(cityFee kernel.Money, remoteFee kernel.Money, freeThreshold kernel.Money) (DeliveryPricing, error) {
	if err := errors.Join(cityFee.Validate(), remoteFee.Validate(), freeThreshold.Validate()); err != nil {
		return DeliveryPricing{}, err
	}

	return DeliveryPricing{
		cityFee:       cityFee,
		remoteFee:     remoteFee,
		freeThreshold: freeThreshold,
	}, nil
}

// FeeFor computes the delivery fee for a delivery mode and an order subtotal.
func (p DeliveryPricing) FeeFor(deliveryType order.DeliveryType, subtotal kernel.Money) (kernel.Money, error) {
	if err := errors.Join(deliveryType.Validate(), subtotal.Validate()); err != nil {
		return kernel.Money{}, err
	}

	if deliveryType == order.DeliveryTypePickup {
		return kernel.Zero(), nil
	}

	if !p.freeThreshold.IsZero() && subtotal.GreaterOrEqual(p.freeThreshold) {
		return kernel.Zero(), nil
	}

	if deliveryType == order.DeliveryTypeRemote {
		return p.remoteFee, nil
	}

	return p.cityFee, nil
}

// CityFee returns the configured in-city delivery fee.
func (p DeliveryPricing) CityFee() kernel.Money {
	return p.cityFee
}

// RemoteFee returns the configured out-of-city delivery fee.
func (p DeliveryPricing) RemoteFee() kernel.Money {
	return p.remoteFee
}

// FreeThreshold returns the free-delivery threshold, zero when disabled.
func (p DeliveryPricing) FreeThreshold() kernel.Money {
	return p.freeThreshold
}
