package domain

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Receipt variants returned by a blob publisher.
const (
	ReceiptNewlyCreated      = "newlyCreated"
	ReceiptAlreadyCertified  = "alreadyCertified"
	transactionTimestampPath = "timestamp"
)

// Transaction is one entry of the local sync log: the publisher's receipt
// fields plus the local time the receipt was recorded.
type Transaction struct {
	Timestamp time.Time
	// Receipt is the flat receipt object as returned by the publisher.
	Receipt []byte
}

// NewTransaction stamps a receipt with the current time.
func NewTransaction(receipt []byte, now time.Time) *Transaction {
	return &Transaction{Timestamp: now.UTC(), Receipt: receipt}
}

// MarshalJSON flattens the timestamp into the receipt object.
func (t Transaction) MarshalJSON() ([]byte, error) {
	base := t.Receipt
	if len(base) == 0 || !gjson.ValidBytes(base) || !gjson.ParseBytes(base).IsObject() {
		base = []byte("{}")
	}
	return sjson.SetBytes(base, transactionTimestampPath, t.Timestamp.UTC().Format(time.RFC3339Nano))
}

// UnmarshalJSON splits the timestamp back out of the flat record.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: malformed transaction record", ErrInvalidInput)
	}
	if ts := gjson.GetBytes(data, transactionTimestampPath); ts.Exists() {
		parsed, err := time.Parse(time.RFC3339Nano, ts.String())
		if err != nil {
			return fmt.Errorf("%w: transaction timestamp: %v", ErrInvalidInput, err)
		}
		t.Timestamp = parsed
	}
	receipt, err := sjson.DeleteBytes(data, transactionTimestampPath)
	if err != nil {
		return err
	}
	t.Receipt = receipt
	return nil
}

// BlobID returns the stored blob id, whichever receipt variant was recorded.
func (t Transaction) BlobID() string {
	return ReceiptBlobID(t.Receipt)
}

// ReceiptBlobID pulls the blob id out of a flat receipt object.
func ReceiptBlobID(receipt []byte) string {
	if id := gjson.GetBytes(receipt, "blobObject.blobId"); id.Exists() {
		return id.String()
	}
	return gjson.GetBytes(receipt, "blobId").String()
}
