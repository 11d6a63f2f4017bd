package booking

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"

	"eticket/internal/shared/utils/delay"
)

// Processor models the payment round-trip. The storefront never talks to a
// real gateway; the simulated implementation waits a fixed delay and
// succeeds deterministically. There is no cancellation of an in-flight
// payment beyond the request context and no retry policy.
type Processor interface {
	Process(ctx context.Context, amount float64, method PaymentMethod) error
}

type simulatedProcessor struct {
	processingDelay time.Duration
}

// NewSimulatedProcessor builds the stand-in processor; tests pass zero delay
func NewSimulatedProcessor(processingDelay time.Duration) Processor {
	return &simulatedProcessor{processingDelay: processingDelay}
}

func (p *simulatedProcessor) Process(ctx context.Context, amount float64, method PaymentMethod) error {
	return delay.Wait(ctx, p.processingDelay)
}

const refCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateBookingRef creates a short human-readable reference for the
// confirmed booking, printed on the ticket next to the QR code.
func generateBookingRef() (string, error) {
	ref := make([]byte, 8)
	for i := range ref {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(refCharset))))
		if err != nil {
			return "", err
		}
		ref[i] = refCharset[n.Int64()]
	}
	return "ETK-" + string(ref), nil
}
