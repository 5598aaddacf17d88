package repository

import (
	"context"
	"errors"
	"time"

	"portal_pricing/internal/domain/entities"
	"portal_pricing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRecordPricesTableName = "record_prices"

	// DynamoDB caps BatchGetItem at 100 keys per request.
	batchGetLimit = 100
)

type fieldValueItem struct {
	Kind    string   `dynamodbav:"kind"`
	Number  float64  `dynamodbav:"number,omitempty"`
	Text    string   `dynamodbav:"text,omitempty"`
	Options []string `dynamodbav:"options,omitempty"`
}

type overrideItem struct {
	Active bool    `dynamodbav:"active"`
	Price  float64 `dynamodbav:"price"`
	Note   string  `dynamodbav:"note,omitempty"`
	SetAt  string  `dynamodbav:"set_at,omitempty"`
	SetBy  string  `dynamodbav:"set_by,omitempty"`
}

type recordPriceItem struct {
	ID              string                    `dynamodbav:"id"`
	Name            string                    `dynamodbav:"name"`
	Price           float64                   `dynamodbav:"price"`
	CalculatedPrice float64                   `dynamodbav:"calculated_price"`
	AppliedVersion  int64                     `dynamodbav:"applied_version"`
	ComputedVersion int64                     `dynamodbav:"computed_version"`
	OriginalVersion int64                     `dynamodbav:"original_version"`
	LastCalculated  string                    `dynamodbav:"last_calculated,omitempty"`
	LastApplied     string                    `dynamodbav:"last_applied,omitempty"`
	FieldValues     map[string]fieldValueItem `dynamodbav:"field_values,omitempty"`
	Override        overrideItem              `dynamodbav:"override"`
}

// RecordPriceDynamoRepository persists the priced slice of quote records in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every mutation goes through an update expression with an existence
// condition; repricing must never create a record that the form surface has
// not created first. A failed condition surfaces as the zero state, which
// the usecases map to their not-found error.

type RecordPriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecordPriceRepository = (*RecordPriceDynamoRepository)(nil)

func NewRecordPriceDynamoRepository(ddb *dynamodb.Client) *RecordPriceDynamoRepository {
	return &RecordPriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECORD_PRICES_TABLE", defaultRecordPricesTableName),
	}
}

func (r *RecordPriceDynamoRepository) GetPriceState(ctx context.Context, id string) (entities.RecordPriceState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	if len(out.Item) == 0 {
		return entities.RecordPriceState{}, nil
	}

	var it recordPriceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RecordPriceState{}, err
	}
	return fromRecordPriceItem(it), nil
}

// ListPriceStates reads many records in input order. Unknown ids are
// silently dropped from the result; callers that need per-id errors use
// GetPriceState.
func (r *RecordPriceDynamoRepository) ListPriceStates(ctx context.Context, ids []string) ([]entities.RecordPriceState, error) {
	found := make(map[string]entities.RecordPriceState, len(ids))

	for start := 0; start < len(ids); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		requested := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for len(requested) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: requested,
			})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it recordPriceItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				found[it.ID] = fromRecordPriceItem(it)
			}
			requested = out.UnprocessedKeys
		}
	}

	states := make([]entities.RecordPriceState, 0, len(found))
	for _, id := range ids {
		if s, ok := found[id]; ok {
			states = append(states, s)
		}
	}
	return states, nil
}

func (r *RecordPriceDynamoRepository) ApplyPrice(ctx context.Context, id string, price float64, version int64) (entities.RecordPriceState, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #price = :price, #applied_version = :version, #last_applied = :last_applied"
		vals := map[string]types.AttributeValue{
			":price":        &types.AttributeValueMemberN{Value: floatToString(price)},
			":version":      &types.AttributeValueMemberN{Value: int64ToString(version)},
			":last_applied": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#price":           "price",
			"#applied_version": "applied_version",
			"#last_applied":    "last_applied",
		}
		return expr, vals, names
	})
}

func (r *RecordPriceDynamoRepository) SetComputed(ctx context.Context, id string, price float64, version int64) (entities.RecordPriceState, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #calculated_price = :price, #computed_version = :version, #last_calculated = :last_calculated"
		vals := map[string]types.AttributeValue{
			":price":           &types.AttributeValueMemberN{Value: floatToString(price)},
			":version":         &types.AttributeValueMemberN{Value: int64ToString(version)},
			":last_calculated": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#calculated_price": "calculated_price",
			"#computed_version": "computed_version",
			"#last_calculated":  "last_calculated",
		}
		return expr, vals, names
	})
}

func (r *RecordPriceDynamoRepository) SetOverride(ctx context.Context, id string, override entities.ManualOverride) (entities.RecordPriceState, error) {
	av, err := attributevalue.Marshal(toOverrideItem(override))
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	return r.update(ctx, id, func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #override = :override, #price = :price"
		vals := map[string]types.AttributeValue{
			":override": av,
			":price":    &types.AttributeValueMemberN{Value: floatToString(override.Price)},
		}
		names := map[string]string{
			"#override": "override",
			"#price":    "price",
		}
		return expr, vals, names
	})
}

// ClearOverride drops the pin but keeps the pinned price as the stored
// price; re-applying the calculated price is a separate, explicit step.
func (r *RecordPriceDynamoRepository) ClearOverride(ctx context.Context, id string) (entities.RecordPriceState, error) {
	av, err := attributevalue.Marshal(overrideItem{})
	if err != nil {
		return entities.RecordPriceState{}, err
	}
	return r.update(ctx, id, func(_ string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #override = :override"
		vals := map[string]types.AttributeValue{
			":override": av,
		}
		names := map[string]string{
			"#override": "override",
		}
		return expr, vals, names
	})
}

func (r *RecordPriceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.RecordPriceState, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RecordPriceState{}, nil
		}
		return entities.RecordPriceState{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RecordPriceState{}, nil
	}
	var it recordPriceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RecordPriceState{}, err
	}
	return fromRecordPriceItem(it), nil
}

func toOverrideItem(o entities.ManualOverride) overrideItem {
	it := overrideItem{
		Active: o.Active,
		Price:  o.Price,
		Note:   o.Note,
		SetBy:  o.SetBy,
	}
	if !o.SetAt.IsZero() {
		it.SetAt = o.SetAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromRecordPriceItem(it recordPriceItem) entities.RecordPriceState {
	lastCalculated, _ := time.Parse(time.RFC3339Nano, it.LastCalculated)
	lastApplied, _ := time.Parse(time.RFC3339Nano, it.LastApplied)
	setAt, _ := time.Parse(time.RFC3339Nano, it.Override.SetAt)

	var values map[string]entities.FieldValue
	if len(it.FieldValues) > 0 {
		values = make(map[string]entities.FieldValue, len(it.FieldValues))
		for fieldID, v := range it.FieldValues {
			values[fieldID] = entities.FieldValue{
				Kind:    entities.FieldValueKind(v.Kind),
				Number:  v.Number,
				Text:    v.Text,
				Options: v.Options,
			}
		}
	}

	return entities.RecordPriceState{
		RecordID:        it.ID,
		Name:            it.Name,
		Price:           it.Price,
		CalculatedPrice: it.CalculatedPrice,
		AppliedVersion:  it.AppliedVersion,
		ComputedVersion: it.ComputedVersion,
		OriginalVersion: it.OriginalVersion,
		LastCalculated:  lastCalculated,
		LastApplied:     lastApplied,
		FieldValues:     values,
		Override: entities.ManualOverride{
			Active: it.Override.Active,
			Price:  it.Override.Price,
			Note:   it.Override.Note,
			SetAt:  setAt,
			SetBy:  it.Override.SetBy,
		},
	}
}
