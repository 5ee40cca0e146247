package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scale_workshop/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// dynamoAPI is the subset of *dynamodb.Client the repositories call.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ dynamoAPI = (*dynamodb.Client)(nil)

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// itemDecoder parses the string attributes of a stored item and keeps the
// first failure. A corrupt item is an internal error, never a zero value.
type itemDecoder struct {
	entity string
	id     string
	err    error
}

func (d *itemDecoder) fail(field, raw string, err error) {
	if d.err == nil {
		d.err = fmt.Errorf("decode %s %s: %s %q: %v", d.entity, d.id, field, raw, err)
	}
}

// time accepts "" as the zero time; formatTime writes it that way.
func (d *itemDecoder) time(field, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		d.fail(field, raw, err)
		return time.Time{}
	}
	return t
}

// amount applies the same rules as input amounts: present, non-negative and
// at most two fraction digits.
func (d *itemDecoder) amount(field, raw string) decimal.Decimal {
	v, err := entities.ParseAmount(field, raw)
	if err != nil {
		d.fail(field, raw, err)
		return decimal.Zero
	}
	return v
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// cancelledAt returns the index of the first transaction item whose
// condition failed, or -1 when err is not such a cancellation.
func cancelledAt(err error) int {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return -1
	}
	for i, r := range tce.CancellationReasons {
		if aws.ToString(r.Code) == "ConditionalCheckFailed" {
			return i
		}
	}
	return -1
}
