// Package payment abstracts the external payment provider. Only the
// initialize/verify handshake is modeled; provider-specific flows live
// behind the Gateway interface.
package payment

import (
	"context"
	"encoding/json"
)

// InitResult is the provider's answer to an initialize call.
type InitResult struct {
	Reference        string
	AuthorizationURL string
	Raw              json.RawMessage
}

// VerifyResult is the provider's answer to a verify call.
type VerifyResult struct {
	Reference string
	Succeeded bool
	Amount    float64
	Raw       json.RawMessage
}

// Gateway is the contract every payment provider adapter implements.
type Gateway interface {
	// Name identifies the provider, stored on payment records.
	Name() string
	// Initialize starts a charge for the given amount (major units) and
	// returns the provider reference plus a redirect URL for the buyer.
	Initialize(ctx context.Context, email string, amount float64, currency string) (*InitResult, error)
	// Verify asks the provider for the final status of a reference.
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
