package repository

import (
	"context"

	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsProposalIDIndex = "proposal_id-index"

type proposalPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ProposalID         string                 `dynamodbav:"proposal_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ProposalPaymentDynamoRepository persists ProposalPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: proposal_id-index (PK: proposal_id)
type ProposalPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProposalPaymentRepository = (*ProposalPaymentDynamoRepository)(nil)

func NewProposalPaymentDynamoRepository(ddb DynamoAPI, tableName string) *ProposalPaymentDynamoRepository {
	return &ProposalPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProposalPaymentDynamoRepository) Create(ctx context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toProposalPaymentItem(p)); err != nil {
		return entities.ProposalPayment{}, err
	}
	return p, nil
}

func (r *ProposalPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProposalPayment, error) {
	var it proposalPaymentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ProposalPayment{}, err
	}
	return fromProposalPaymentItem(it), nil
}

func (r *ProposalPaymentDynamoRepository) ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalPayment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsProposalIDIndex),
		KeyConditionExpression: aws.String("proposal_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: proposalID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ProposalPayment, 0, len(raw))
	for _, av := range raw {
		var it proposalPaymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalPaymentItem(it))
	}
	return items, nil
}

func toProposalPaymentItem(p entities.ProposalPayment) proposalPaymentItem {
	return proposalPaymentItem{
		ID:                 p.ID,
		ProposalID:         p.ProposalID,
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromProposalPaymentItem(it proposalPaymentItem) entities.ProposalPayment {
	return entities.ProposalPayment{
		ID:                 it.ID,
		ProposalID:         it.ProposalID,
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
