package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"freight_quote/internal/domain/entities"
	"freight_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExportsTableName = "quote_exports"
	exportsReferenceIndex   = "reference-index"

	// maxArtifactContent keeps items under the 400 KB DynamoDB limit with room
	// for the other attributes.
	maxArtifactContent = 380 * 1024
)

var (
	ErrArtifactTooLarge = errors.New("artifact too large for the archive")
	ErrArtifactExists   = errors.New("artifact already archived")
)

type quoteArtifactItem struct {
	ID        string `dynamodbav:"id"`
	Reference string `dynamodbav:"reference"`
	Kind      string `dynamodbav:"kind"`
	Filename  string `dynamodbav:"filename"`
	MimeType  string `dynamodbav:"mime_type"`
	Content   []byte `dynamodbav:"content"`
	Size      int    `dynamodbav:"size"`
	CreatedAt string `dynamodbav:"created_at"`
}

// QuoteArtifactDynamoRepository archives exported artifacts in DynamoDB. It is
// the default artifact sink of the service.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference-index (PK: reference, projection ALL)

type QuoteArtifactDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IArtifactArchive = (*QuoteArtifactDynamoRepository)(nil)

func NewQuoteArtifactDynamoRepository(ddb dynamoAPI, tableName string) *QuoteArtifactDynamoRepository {
	return &QuoteArtifactDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultExportsTableName),
	}
}

// Emit archives the artifact. Artifacts are immutable: an id can be written once.
func (r *QuoteArtifactDynamoRepository) Emit(ctx context.Context, a entities.Artifact) error {
	if len(a.Content) > maxArtifactContent {
		return fmt.Errorf("%w: %s is %d bytes", ErrArtifactTooLarge, a.Filename, len(a.Content))
	}

	av, err := attributevalue.MarshalMap(toQuoteArtifactItem(a))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("%w: %s", ErrArtifactExists, a.ID)
		}
		return err
	}
	return nil
}

func (r *QuoteArtifactDynamoRepository) GetByID(ctx context.Context, id string) (entities.Artifact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Artifact{}, err
	}
	if len(out.Item) == 0 {
		return entities.Artifact{}, nil
	}

	var it quoteArtifactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Artifact{}, err
	}
	return fromQuoteArtifactItem(it), nil
}

// ListByReference returns every artifact of a quote reference, oldest first.
func (r *QuoteArtifactDynamoRepository) ListByReference(ctx context.Context, reference string) ([]entities.Artifact, error) {
	items := []entities.Artifact{}
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(exportsReferenceIndex),
			KeyConditionExpression: aws.String("#ref = :ref"),
			ExpressionAttributeNames: map[string]string{
				"#ref": "reference",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ref": &types.AttributeValueMemberS{Value: reference},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quoteArtifactItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromQuoteArtifactItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func toQuoteArtifactItem(a entities.Artifact) quoteArtifactItem {
	return quoteArtifactItem{
		ID:        a.ID,
		Reference: a.Reference,
		Kind:      string(a.Kind),
		Filename:  a.Filename,
		MimeType:  a.MimeType,
		Content:   a.Content,
		Size:      a.Size,
		CreatedAt: formatTime(a.CreatedAt),
	}
}

func fromQuoteArtifactItem(it quoteArtifactItem) entities.Artifact {
	return entities.Artifact{
		ID:        it.ID,
		Reference: it.Reference,
		Kind:      entities.ArtifactKind(it.Kind),
		Filename:  it.Filename,
		MimeType:  it.MimeType,
		Content:   it.Content,
		Size:      it.Size,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
