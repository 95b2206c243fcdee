package repository

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCustomerItemMapping(t *testing.T) {
	created := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	c := entities.Customer{
		ID:        "c-1",
		Name:      "Acme",
		Email:     "buyer@acme.com",
		TaxNumber: "1234567890",
		CreatedAt: created,
		UpdatedAt: created,
	}
	if got := fromCustomerItem(toCustomerItem(c)); got != c {
		t.Fatalf("want %+v, got %+v", c, got)
	}
}

func TestCustomerDynamoRepository_CreateAndList(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewCustomerDynamoRepository(fake, "customers")

	c := entities.Customer{ID: "c-1", Name: "Acme"}
	if _, err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aws.ToString(fake.putIn.TableName) != "customers" {
		t.Fatalf("unexpected table %s", aws.ToString(fake.putIn.TableName))
	}
	if _, ok := fake.putIn.Item["email"]; ok {
		t.Fatalf("empty email must be omitted")
	}

	fake.scanPages = []*dynamodb.ScanOutput{
		{Items: []map[string]types.AttributeValue{mustMarshal(t, toCustomerItem(c))}},
	}
	all, err := repo.ListAll(context.Background())
	if err != nil || len(all) != 1 || all[0].Name != "Acme" {
		t.Fatalf("unexpected result %+v %v", all, err)
	}
}

func TestLineItemItemMapping(t *testing.T) {
	li := entities.LineItem{
		ID:          "li-1",
		ProposalID:  "p-1",
		Description: "Server rack",
		Currency:    entities.CurrencyUSD,
		CreatedAt:   time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		Input: entities.LineItemPricingInput{
			ListPrice: 100, DiscountRate: 0.1, ProfitMargin: 0.2,
			ExchangeRate: 33, Quantity: 2, VATRate: 0.2, PriceIncludesVAT: true,
		},
		Pricing: entities.LineItemPricingResult{
			Cost: 75, TLCost: 2475, OriginalSellPrice: 90, TLSellPrice: 2970,
			ProfitAmount: 495, TotalTLCost: 4950, TotalTLSell: 5940, TotalProfit: 990,
		},
	}
	if got := fromLineItemItem(toLineItemItem(li)); !reflect.DeepEqual(got, li) {
		t.Fatalf("want %+v, got %+v", li, got)
	}
}

func TestLineItemDynamoRepository_ListByProposalID_SortsByCreation(t *testing.T) {
	base := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	later := entities.LineItem{ID: "b", ProposalID: "p-1", CreatedAt: base.Add(time.Minute)}
	earlier := entities.LineItem{ID: "a", ProposalID: "p-1", CreatedAt: base}

	fake := &fakeDynamo{queryPages: []*dynamodb.QueryOutput{{
		Items: []map[string]types.AttributeValue{
			mustMarshal(t, toLineItemItem(later)),
			mustMarshal(t, toLineItemItem(earlier)),
		},
	}}}
	repo := NewLineItemDynamoRepository(fake, "line_items", "proposals")

	items, err := repo.ListByProposalID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("unexpected order %+v", items)
	}
	if aws.ToString(fake.queryIns[0].IndexName) != lineItemsProposalIDIndex {
		t.Fatalf("unexpected index %s", aws.ToString(fake.queryIns[0].IndexName))
	}
}

func TestProposalPaymentItemMapping(t *testing.T) {
	raw := json.RawMessage(`{"id":"123","status":"approved"}`)
	p := entities.ProposalPayment{
		ID:                 "123",
		ProposalID:         "p-1",
		Amount:             7128,
		Date:               time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]interface{}{"id": "123", "status": "approved"},
	}

	got := fromProposalPaymentItem(toProposalPaymentItem(p))
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("want %+v, got %+v", p, got)
	}
}

func TestProposalPaymentDynamoRepository_GetByID(t *testing.T) {
	p := entities.ProposalPayment{ID: "123", ProposalID: "p-1", Amount: 10, Status: entities.PaymentStatusPending}
	fake := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: mustMarshal(t, toProposalPaymentItem(p))}}
	repo := NewProposalPaymentDynamoRepository(fake, "proposal_payments")

	got, err := repo.GetByID(context.Background(), "123")
	if err != nil || got.ID != "123" || got.Amount != 10 {
		t.Fatalf("unexpected result %+v %v", got, err)
	}
}

func TestMergeNames(t *testing.T) {
	if got := mergeNames(nil, map[string]string{"#id": "id"}); got["#id"] != "id" {
		t.Fatalf("unexpected %v", got)
	}
	got := mergeNames(map[string]string{"#a": "a"}, map[string]string{"#id": "id"})
	if len(got) != 2 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestLineItemDynamoRepository_AddToDraft(t *testing.T) {
	item := entities.LineItem{
		ID:         "li-1",
		ProposalID: "p-1",
		Currency:   entities.CurrencyUSD,
		Pricing:    entities.LineItemPricingResult{TotalTLSell: 8128.5},
		CreatedAt:  time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	t.Run("item and total in one transaction", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewLineItemDynamoRepository(fake, "line_items", "proposals")

		if _, err := repo.AddToDraft(context.Background(), item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		actions := fake.txIn.TransactItems
		if len(actions) != 2 || actions[0].Put == nil || actions[1].Update == nil {
			t.Fatalf("expected put + update, got %+v", actions)
		}
		update := actions[1].Update
		if aws.ToString(update.TableName) != "proposals" {
			t.Fatalf("unexpected table %s", aws.ToString(update.TableName))
		}
		if delta := update.ExpressionAttributeValues[":delta"].(*types.AttributeValueMemberN).Value; delta != "8128.5" {
			t.Fatalf("unexpected delta %s", delta)
		}
		if draft := update.ExpressionAttributeValues[":draft"].(*types.AttributeValueMemberS).Value; draft != "draft" {
			t.Fatalf("unexpected status guard %s", draft)
		}
	})

	t.Run("proposal no longer a draft", func(t *testing.T) {
		fake := &fakeDynamo{txErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}}
		repo := NewLineItemDynamoRepository(fake, "line_items", "proposals")

		_, err := repo.AddToDraft(context.Background(), item)
		if !errors.Is(err, interfaces.ErrProposalNotDraft) {
			t.Fatalf("expected ErrProposalNotDraft, got %v", err)
		}
	})

	t.Run("other failures pass through", func(t *testing.T) {
		fake := &fakeDynamo{txErr: errors.New("throttled")}
		repo := NewLineItemDynamoRepository(fake, "line_items", "proposals")

		_, err := repo.AddToDraft(context.Background(), item)
		if err == nil || errors.Is(err, interfaces.ErrProposalNotDraft) {
			t.Fatalf("expected raw error, got %v", err)
		}
	})
}
