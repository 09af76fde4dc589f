package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "draft_quotes"

type draftQuoteItem struct {
	ResumeToken string `dynamodbav:"resume_token"`
	Status      string `dynamodbav:"status"`
	Payload     string `dynamodbav:"payload"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// DraftQuoteDynamoRepository persists DraftQuote entities in DynamoDB.
//
// Table requirements:
//   - PK: resume_token (string)
//
// The wire payload is stored as a JSON string so its shape can evolve with
// formVersion without touching the table.

type DraftQuoteDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDraftQuoteRepository = (*DraftQuoteDynamoRepository)(nil)

func NewDraftQuoteDynamoRepository(ddb dynamoAPI, tableName string) *DraftQuoteDynamoRepository {
	return &DraftQuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultDraftsTableName),
	}
}

// Save upserts the draft under its resume token. The write is conditional so a
// submitted draft cannot be overwritten, even by a concurrent request.
func (r *DraftQuoteDynamoRepository) Save(ctx context.Context, d entities.DraftQuote) (entities.DraftQuote, error) {
	it, err := toDraftQuoteItem(d)
	if err != nil {
		return entities.DraftQuote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DraftQuote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rt) OR #status <> :submitted"),
		ExpressionAttributeNames: map[string]string{
			"#rt":     "resume_token",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":submitted": &types.AttributeValueMemberS{Value: string(entities.DraftStatusSubmitted)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.DraftQuote{}, fmt.Errorf("%w: %s", interfaces.ErrDraftLocked, d.ResumeToken)
		}
		return entities.DraftQuote{}, err
	}
	return d, nil
}

func (r *DraftQuoteDynamoRepository) GetByResumeToken(ctx context.Context, token string) (entities.DraftQuote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"resume_token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DraftQuote{}, err
	}
	if len(out.Item) == 0 {
		return entities.DraftQuote{}, nil
	}

	var it draftQuoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DraftQuote{}, err
	}
	return fromDraftQuoteItem(it)
}

func toDraftQuoteItem(d entities.DraftQuote) (draftQuoteItem, error) {
	payload, err := json.Marshal(d.Payload)
	if err != nil {
		return draftQuoteItem{}, fmt.Errorf("encoding draft payload: %w", err)
	}
	return draftQuoteItem{
		ResumeToken: d.ResumeToken,
		Status:      string(d.Status),
		Payload:     string(payload),
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}, nil
}

func fromDraftQuoteItem(it draftQuoteItem) (entities.DraftQuote, error) {
	var payload entities.CreateDraftQuoteRequest
	if it.Payload != "" {
		if err := json.Unmarshal([]byte(it.Payload), &payload); err != nil {
			return entities.DraftQuote{}, fmt.Errorf("decoding draft payload: %w", err)
		}
	}
	return entities.DraftQuote{
		ResumeToken: it.ResumeToken,
		Status:      entities.DraftStatus(it.Status),
		Payload:     payload,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}, nil
}
