package publisher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

var _ Publisher = (*Walrus)(nil)

// Walrus publishes blobs through a Walrus publisher node
type Walrus struct {
	endpoint string
	epochs   int
	client   *http.Client
}

// NewWalrus builds a Walrus publisher for the given node URL
func NewWalrus(endpoint string, epochs int, client *http.Client) *Walrus {
	if epochs <= 0 {
		epochs = DefaultEpochs
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Walrus{
		endpoint: strings.TrimRight(endpoint, "/"),
		epochs:   epochs,
		client:   client,
	}
}

// BlobURL is the PUT target for a new non-deletable utf-8 blob
func (w *Walrus) BlobURL() string {
	params := url.Values{}
	params.Set(ParamEpochs, strconv.Itoa(w.epochs))
	params.Set(ParamDeletable, "false")
	params.Set(ParamEncodingType, WalrusEncodingUTF8)
	return w.endpoint + WalrusBlobsPath + "?" + params.Encode()
}

// Publish PUTs data as a text blob. Any non-2xx status or a body without a
// newlyCreated / alreadyCertified object wraps domain.ErrUpstream.
func (w *Walrus) Publish(ctx context.Context, data []byte) (*Receipt, error) {
	log := logger.FromContext(ctx)
	target := w.BlobURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBuildRequest, err)
	}
	req.Header.Set("Content-Type", WalrusContentType)
	req.ContentLength = int64(len(data))

	log.Debug(LogMsgPublishing, "url", target, "bytes", len(data))

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, ErrMsgSendRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.Warn(LogMsgPublishFailed, "status", resp.StatusCode, "body", string(detail))
		return nil, fmt.Errorf("%w: %s: %s. %s", domain.ErrUpstream, ErrMsgUnexpectedStatus, resp.Status, strings.TrimSpace(string(detail)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, ErrMsgReadResponse, err)
	}

	receipt, err := ParseWalrusReceipt(body)
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgPublished, "variant", receipt.Variant, "blob_id", domain.ReceiptBlobID(receipt.Body))
	return receipt, nil
}

// ParseWalrusReceipt picks the newlyCreated object, falling back to
// alreadyCertified.
func ParseWalrusReceipt(body []byte) (*Receipt, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, ErrMsgUnknownReceipt)
	}
	for _, variant := range []string{domain.ReceiptNewlyCreated, domain.ReceiptAlreadyCertified} {
		if r := gjson.GetBytes(body, variant); r.IsObject() {
			return &Receipt{Variant: variant, Body: []byte(r.Raw)}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUpstream, ErrMsgUnknownReceipt)
}
