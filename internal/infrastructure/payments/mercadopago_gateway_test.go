package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"proposal_desk/internal/config"

	"github.com/rs/zerolog"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("mock mode", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(config.Payments{GatewayMock: true}, zerolog.Nop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.MockMode() {
			t.Fatalf("expected mock mode")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(config.Payments{}, zerolog.Nop())
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("with token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(config.Payments{MercadoPagoAccessToken: "TEST-123"}, zerolog.Nop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.MockMode() {
			t.Fatalf("expected live mode")
		}
	})
}

func TestMercadoPagoGateway_CreatePayment_Mock(t *testing.T) {
	g := NewMockGateway(zerolog.Nop())
	fixed := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":216,"external_reference":"p-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %s", status)
	}
	if id == "" {
		t.Fatalf("expected provider id")
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["external_reference"] != "p-1" {
		t.Fatalf("expected request fields to be echoed, got %v", body)
	}
	if body["transaction_amount"] != float64(216) {
		t.Fatalf("expected amount 216, got %v", body["transaction_amount"])
	}
	if body["date_created"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_created %v", body["date_created"])
	}
}

func TestMercadoPagoGateway_CreatePayment_MockInvalidPayload(t *testing.T) {
	g := NewMockGateway(zerolog.Nop())

	_, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`not-json`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || !json.Valid(raw) {
		t.Fatalf("expected valid approved response, got %s %s", status, raw)
	}
}

func TestMercadoPagoGateway_CreatePayment_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
