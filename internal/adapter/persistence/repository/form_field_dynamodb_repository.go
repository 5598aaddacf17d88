package repository

import (
	"context"
	"time"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFormFieldsTableName = "form_fields"

	catalogKey = "catalog"
)

type fieldDescriptorItem struct {
	ID      string   `dynamodbav:"id"`
	Label   string   `dynamodbav:"label"`
	Type    string   `dynamodbav:"type"`
	Options []string `dynamodbav:"options,omitempty"`
}

type formFieldCatalogItem struct {
	ID        string                `dynamodbav:"id"`
	Fields    []fieldDescriptorItem `dynamodbav:"fields"`
	UpdatedAt string                `dynamodbav:"updated_at"`
}

// FormFieldDynamoRepository persists the quote-form field catalog in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is one document under a fixed key. Field order matters to the
// form designer, so the list is stored as-is instead of one item per field.

type FormFieldDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormFieldRepository = (*FormFieldDynamoRepository)(nil)

func NewFormFieldDynamoRepository(ddb *dynamodb.Client) *FormFieldDynamoRepository {
	return &FormFieldDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORM_FIELDS_TABLE", defaultFormFieldsTableName),
	}
}

func (r *FormFieldDynamoRepository) ListCatalog(ctx context.Context) ([]entities.FieldDescriptor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: catalogKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return []entities.FieldDescriptor{}, nil
	}

	var it formFieldCatalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}

	fields := make([]entities.FieldDescriptor, 0, len(it.Fields))
	for _, f := range it.Fields {
		fields = append(fields, entities.FieldDescriptor{
			ID:      f.ID,
			Label:   f.Label,
			Type:    entities.FieldType(f.Type),
			Options: f.Options,
		})
	}
	return fields, nil
}

func (r *FormFieldDynamoRepository) SaveCatalog(ctx context.Context, fields []entities.FieldDescriptor) error {
	it := formFieldCatalogItem{
		ID:        catalogKey,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Fields:    make([]fieldDescriptorItem, 0, len(fields)),
	}
	for _, f := range fields {
		it.Fields = append(it.Fields, fieldDescriptorItem{
			ID:      f.ID,
			Label:   f.Label,
			Type:    string(f.Type),
			Options: f.Options,
		})
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
