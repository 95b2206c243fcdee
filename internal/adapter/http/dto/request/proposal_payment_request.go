package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyPaymentPayload = errors.New("payment_payload cannot be empty")

// ProposalPaymentCreateRequest documents the deposit route body.
//
// `payment_payload` is forwarded to the gateway as-is (raw JSON) to support
// varying Mercado Pago schemas. A bare provider payload is accepted too.
type ProposalPaymentCreateRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload" swaggertype:"object"`
}

// ResolvePaymentPayload unwraps the payment_payload envelope when present.
// An empty body yields an empty JSON object.
func ResolvePaymentPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			w := strings.TrimSpace(string(wrapped))
			if w == "" || w == "null" {
				return nil, ErrEmptyPaymentPayload
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
