package repository

import (
	"context"
	"fmt"
	"sort"

	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const lineItemsProposalIDIndex = "proposal_id-index"

// lineItemItem flattens the pricing input and result. The exchange rate used
// at pricing time is stored so totals can be audited later.
type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	ProposalID  string `dynamodbav:"proposal_id"`
	Description string `dynamodbav:"description,omitempty"`
	Currency    string `dynamodbav:"currency"`
	CreatedAt   string `dynamodbav:"created_at"`

	ListPrice        float64 `dynamodbav:"list_price"`
	BasePrice        float64 `dynamodbav:"base_price"`
	DiscountRate     float64 `dynamodbav:"discount_rate"`
	ProfitMargin     float64 `dynamodbav:"profit_margin"`
	ExchangeRate     float64 `dynamodbav:"exchange_rate"`
	Quantity         float64 `dynamodbav:"quantity"`
	VATRate          float64 `dynamodbav:"vat_rate"`
	PriceIncludesVAT bool    `dynamodbav:"price_includes_vat"`

	Cost              float64 `dynamodbav:"cost"`
	TLCost            float64 `dynamodbav:"tl_cost"`
	OriginalSellPrice float64 `dynamodbav:"original_sell_price"`
	TLSellPrice       float64 `dynamodbav:"tl_sell_price"`
	ProfitAmount      float64 `dynamodbav:"profit_amount"`
	TotalTLCost       float64 `dynamodbav:"total_tl_cost"`
	TotalTLSell       float64 `dynamodbav:"total_tl_sell"`
	TotalProfit       float64 `dynamodbav:"total_profit"`
}

// LineItemDynamoRepository persists priced line items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)
//
// AddToDraft also updates the owning row in the proposals table.
type LineItemDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	proposalsTable string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb DynamoAPI, tableName, proposalsTable string) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{ddb: ddb, tableName: tableName, proposalsTable: proposalsTable}
}

// AddToDraft puts the item and increments the proposal's total_amount by the
// item's TotalTLSell in one transaction. The increment is conditioned on the
// proposal still being a draft.
func (r *LineItemDynamoRepository) AddToDraft(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	put, err := newPut(r.tableName, toLineItemItem(item))
	if err != nil {
		return entities.LineItem{}, err
	}

	total := &types.Update{
		TableName: aws.String(r.proposalsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: item.ProposalID},
		},
		UpdateExpression:    aws.String("SET #updated_at = :updated_at ADD #total_amount :delta"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :draft"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#total_amount": "total_amount",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":      &types.AttributeValueMemberN{Value: floatToString(item.Pricing.TotalTLSell)},
			":draft":      &types.AttributeValueMemberS{Value: string(entities.ProposalStatusDraft)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(item.CreatedAt)},
		},
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{{Put: put}, {Update: total}},
	})
	if err != nil {
		if cancelledBy(err, 1) {
			return entities.LineItem{}, fmt.Errorf("%w: %s", interfaces.ErrProposalNotDraft, item.ProposalID)
		}
		return entities.LineItem{}, err
	}
	return item, nil
}

// ListByProposalID returns the proposal's items in creation order.
func (r *LineItemDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.LineItem, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lineItemsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	var its []lineItemItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.LineItem, 0, len(its))
	for _, it := range its {
		out = append(out, fromLineItemItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:          li.ID,
		ProposalID:  li.ProposalID,
		Description: li.Description,
		Currency:    string(li.Currency),
		CreatedAt:   formatTime(li.CreatedAt),

		ListPrice:        li.Input.ListPrice,
		BasePrice:        li.Input.BasePrice,
		DiscountRate:     li.Input.DiscountRate,
		ProfitMargin:     li.Input.ProfitMargin,
		ExchangeRate:     li.Input.ExchangeRate,
		Quantity:         li.Input.Quantity,
		VATRate:          li.Input.VATRate,
		PriceIncludesVAT: li.Input.PriceIncludesVAT,

		Cost:              li.Pricing.Cost,
		TLCost:            li.Pricing.TLCost,
		OriginalSellPrice: li.Pricing.OriginalSellPrice,
		TLSellPrice:       li.Pricing.TLSellPrice,
		ProfitAmount:      li.Pricing.ProfitAmount,
		TotalTLCost:       li.Pricing.TotalTLCost,
		TotalTLSell:       li.Pricing.TotalTLSell,
		TotalProfit:       li.Pricing.TotalProfit,
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:          it.ID,
		ProposalID:  it.ProposalID,
		Description: it.Description,
		Currency:    entities.Currency(it.Currency),
		CreatedAt:   parseTime(it.CreatedAt),
		Input: entities.LineItemPricingInput{
			ListPrice:        it.ListPrice,
			BasePrice:        it.BasePrice,
			DiscountRate:     it.DiscountRate,
			ProfitMargin:     it.ProfitMargin,
			ExchangeRate:     it.ExchangeRate,
			Quantity:         it.Quantity,
			VATRate:          it.VATRate,
			PriceIncludesVAT: it.PriceIncludesVAT,
		},
		Pricing: entities.LineItemPricingResult{
			Cost:              it.Cost,
			TLCost:            it.TLCost,
			OriginalSellPrice: it.OriginalSellPrice,
			TLSellPrice:       it.TLSellPrice,
			ProfitAmount:      it.ProfitAmount,
			TotalTLCost:       it.TotalTLCost,
			TotalTLSell:       it.TotalTLSell,
			TotalProfit:       it.TotalProfit,
		},
	}
}
