// Package publisher stores opaque documents in a remote blob store and returns
// the store's receipt.
package publisher

import (
	"context"
)

// Receipt is what a blob store returned for one publish call
type Receipt struct {
	// Variant is domain.ReceiptNewlyCreated or domain.ReceiptAlreadyCertified
	Variant string
	// Body is the flat receipt object for the variant
	Body []byte
}

// Publisher uploads a document and returns the store's receipt
type Publisher interface {
	Publish(ctx context.Context, data []byte) (*Receipt, error)
}
