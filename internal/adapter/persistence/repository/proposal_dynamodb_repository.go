package repository

import (
	"context"
	"fmt"

	"proposal_desk/internal/domain/entities"
	"proposal_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	proposalsRootIDIndex = "root_proposal_id-index"
	versionGuardKind     = "version_guard"

	// DynamoDB rejects transactions with more actions than this.
	maxTransactItems = 100
)

type proposalItem struct {
	ID             string  `dynamodbav:"id"`
	RootProposalID string  `dynamodbav:"root_proposal_id"`
	CustomerID     string  `dynamodbav:"customer_id"`
	Title          string  `dynamodbav:"title"`
	Version        int     `dynamodbav:"version"`
	Status         string  `dynamodbav:"status"`
	TotalAmount    float64 `dynamodbav:"total_amount"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// versionGuardItem reserves (root_proposal_id, version) inside the proposals
// table. It carries no root_proposal_id attribute, so it never shows up in
// the lineage index or in ListAll.
type versionGuardItem struct {
	ID         string `dynamodbav:"id"`
	Kind       string `dynamodbav:"kind"`
	ProposalID string `dynamodbav:"proposal_id"`
}

// ProposalDynamoRepository persists proposal versions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: root_proposal_id-index (PK: root_proposal_id)
//
// Create writes the version, its guard item and its line items in one
// transaction, so two versions of a lineage can never share a number and a
// revision is never stored without its items.
type ProposalDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	lineItemsTable string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoAPI, tableName, lineItemsTable string) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{ddb: ddb, tableName: tableName, lineItemsTable: lineItemsTable}
}

func versionGuardID(rootProposalID string, version int) string {
	return fmt.Sprintf("version#%s#%d", rootProposalID, version)
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal, items []entities.LineItem) (entities.Proposal, error) {
	if len(items)+2 > maxTransactItems {
		return entities.Proposal{}, fmt.Errorf("%w: %d line items", interfaces.ErrRevisionTooLarge, len(items))
	}

	version, err := newPut(r.tableName, toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}
	guard, err := newPut(r.tableName, versionGuardItem{
		ID:         versionGuardID(p.RootProposalID, p.Version),
		Kind:       versionGuardKind,
		ProposalID: p.ID,
	})
	if err != nil {
		return entities.Proposal{}, err
	}

	actions := make([]types.TransactWriteItem, 0, len(items)+2)
	actions = append(actions, types.TransactWriteItem{Put: version}, types.TransactWriteItem{Put: guard})
	for _, item := range items {
		put, err := newPut(r.lineItemsTable, toLineItemItem(item))
		if err != nil {
			return entities.Proposal{}, err
		}
		actions = append(actions, types.TransactWriteItem{Put: put})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: actions})
	if err != nil {
		// The guard is the second action.
		if cancelledBy(err, 1) {
			return entities.Proposal{}, fmt.Errorf("%w: root %s version %d", interfaces.ErrDuplicateProposalVersion, p.RootProposalID, p.Version)
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	var it proposalItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found || it.RootProposalID == "" {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByRootID(ctx context.Context, rootProposalID string) ([]entities.Proposal, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(proposalsRootIDIndex),
		KeyConditionExpression: aws.String("root_proposal_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: rootProposalID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProposals(raw)
}

// ListAll scans every proposal version; guard items are filtered out.
func (r *ProposalDynamoRepository) ListAll(ctx context.Context) ([]entities.Proposal, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_exists(#root)"),
		ExpressionAttributeNames: map[string]string{
			"#root": "root_proposal_id",
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalProposals(raw)
}

func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ProposalStatus) (entities.Proposal, error) {
	return r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ProposalDynamoRepository) update(ctx context.Context, id, condition string, build buildUpdate) (entities.Proposal, error) {
	var it proposalItem
	ok, err := updateExisting(ctx, r.ddb, r.tableName, id, condition, build, &it)
	if err != nil || !ok {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func unmarshalProposals(raw []map[string]types.AttributeValue) ([]entities.Proposal, error) {
	var its []proposalItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Proposal, 0, len(its))
	for _, it := range its {
		out = append(out, fromProposalItem(it))
	}
	return out, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:             p.ID,
		RootProposalID: p.RootProposalID,
		CustomerID:     p.CustomerID,
		Title:          p.Title,
		Version:        p.Version,
		Status:         string(p.Status),
		TotalAmount:    p.TotalAmount,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:             it.ID,
		RootProposalID: it.RootProposalID,
		CustomerID:     it.CustomerID,
		Title:          it.Title,
		Version:        it.Version,
		Status:         entities.ProposalStatus(it.Status),
		TotalAmount:    it.TotalAmount,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
