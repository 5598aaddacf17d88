package repository

import (
	"context"
	"fmt"
	"time"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPriceSettingsTableName = "price_settings"

	// The live configuration lives under a single well-known key; every
	// save also writes an immutable per-version snapshot for comparisons.
	currentSettingsKey = "current"
)

type lookupRowItem struct {
	Option string  `dynamodbav:"option"`
	Value  float64 `dynamodbav:"value"`
}

type parameterItem struct {
	ID          string          `dynamodbav:"id"`
	Name        string          `dynamodbav:"name"`
	Type        string          `dynamodbav:"type"`
	Value       float64         `dynamodbav:"value"`
	FormFieldID string          `dynamodbav:"form_field_id,omitempty"`
	LookupTable []lookupRowItem `dynamodbav:"lookup_table,omitempty"`
}

type priceSettingsItem struct {
	ID              string          `dynamodbav:"id"`
	Parameters      []parameterItem `dynamodbav:"parameters"`
	InternalFormula string          `dynamodbav:"internal_formula"`
	Version         int64           `dynamodbav:"version"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// PriceSettingsDynamoRepository persists the pricing configuration in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Items:
//   - "current"      the live configuration; version bumped via ADD so two
//     concurrent saves can never produce the same version number
//   - "v#<version>"  immutable snapshot written after every save, read back
//     when a difference summary needs the baseline parameters

type PriceSettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceSettingsRepository = (*PriceSettingsDynamoRepository)(nil)

func NewPriceSettingsDynamoRepository(ddb *dynamodb.Client) *PriceSettingsDynamoRepository {
	return &PriceSettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICE_SETTINGS_TABLE", defaultPriceSettingsTableName),
	}
}

func (r *PriceSettingsDynamoRepository) Get(ctx context.Context) (entities.PriceSettings, error) {
	return r.getByKey(ctx, currentSettingsKey)
}

// GetVersion reads an older snapshot. A pruned or never-written snapshot is
// not an error; the caller treats the zero value as "no baseline".
func (r *PriceSettingsDynamoRepository) GetVersion(ctx context.Context, version int64) (entities.PriceSettings, error) {
	return r.getByKey(ctx, versionKey(version))
}

func (r *PriceSettingsDynamoRepository) Save(ctx context.Context, parameters []entities.Parameter, internalFormula string) (entities.PriceSettings, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	params, err := attributevalue.Marshal(toParameterItems(parameters))
	if err != nil {
		return entities.PriceSettings{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: currentSettingsKey},
		},
		UpdateExpression: aws.String("SET #parameters = :parameters, #internal_formula = :internal_formula, #updated_at = :updated_at ADD #version :one"),
		ExpressionAttributeNames: map[string]string{
			"#parameters":       "parameters",
			"#internal_formula": "internal_formula",
			"#updated_at":       "updated_at",
			"#version":          "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":parameters":       params,
			":internal_formula": &types.AttributeValueMemberS{Value: internalFormula},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
			":one":              &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PriceSettings{}, err
	}

	var it priceSettingsItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PriceSettings{}, err
	}

	if err := r.putSnapshot(ctx, it); err != nil {
		return entities.PriceSettings{}, err
	}
	return fromPriceSettingsItem(it), nil
}

func (r *PriceSettingsDynamoRepository) getByKey(ctx context.Context, key string) (entities.PriceSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PriceSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.PriceSettings{}, nil
	}

	var it priceSettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PriceSettings{}, err
	}
	return fromPriceSettingsItem(it), nil
}

func (r *PriceSettingsDynamoRepository) putSnapshot(ctx context.Context, it priceSettingsItem) error {
	snapshot := it
	snapshot.ID = versionKey(it.Version)

	av, err := attributevalue.MarshalMap(snapshot)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func versionKey(version int64) string {
	return fmt.Sprintf("v#%d", version)
}

func toParameterItems(parameters []entities.Parameter) []parameterItem {
	items := make([]parameterItem, 0, len(parameters))
	for _, p := range parameters {
		it := parameterItem{
			ID:          p.ID,
			Name:        p.Name,
			Type:        string(p.Type),
			Value:       p.Value,
			FormFieldID: p.FormFieldID,
		}
		for _, row := range p.LookupTable {
			it.LookupTable = append(it.LookupTable, lookupRowItem(row))
		}
		items = append(items, it)
	}
	return items
}

func fromPriceSettingsItem(it priceSettingsItem) entities.PriceSettings {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	params := make([]entities.Parameter, 0, len(it.Parameters))
	for _, p := range it.Parameters {
		param := entities.Parameter{
			ID:          p.ID,
			Name:        p.Name,
			Type:        entities.ParameterType(p.Type),
			Value:       p.Value,
			FormFieldID: p.FormFieldID,
		}
		for _, row := range p.LookupTable {
			param.LookupTable = append(param.LookupTable, entities.LookupRow(row))
		}
		params = append(params, param)
	}

	return entities.PriceSettings{
		Parameters:      params,
		InternalFormula: it.InternalFormula,
		Version:         it.Version,
		UpdatedAt:       updatedAt,
	}
}
