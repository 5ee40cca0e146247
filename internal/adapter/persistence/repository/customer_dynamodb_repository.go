package repository

import (
	"context"
	"time"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CustomerDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tableName string) *CustomerDynamoRepository {
	return newCustomerRepository(ddb, tableName)
}

func newCustomerRepository(ddb dynamoAPI, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
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
			return entities.Customer{}, &entities.ConflictError{Field: "id", Value: c.ID}
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, &entities.NotFoundError{Entity: "customer", ID: id}
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func (r *CustomerDynamoRepository) UpdateContact(ctx context.Context, id string, contact entities.Contact, updatedAt time.Time) (entities.Customer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #phone = :phone, #email = :email, #address = :address, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone":      &types.AttributeValueMemberS{Value: contact.Phone},
			":email":      &types.AttributeValueMemberS{Value: contact.Email},
			":address":    &types.AttributeValueMemberS{Value: contact.Address},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#phone":      "phone",
			"#email":      "email",
			"#address":    "address",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Customer{}, &entities.NotFoundError{Entity: "customer", ID: id}
		}
		return entities.Customer{}, err
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Contact.Phone,
		Email:     c.Contact.Email,
		Address:   c.Contact.Address,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) (entities.Customer, error) {
	dec := &itemDecoder{entity: "customer", id: it.ID}
	c := entities.Customer{
		ID:   it.ID,
		Name: it.Name,
		Contact: entities.Contact{
			Phone:   it.Phone,
			Email:   it.Email,
			Address: it.Address,
		},
		CreatedAt: dec.time("created_at", it.CreatedAt),
		UpdatedAt: dec.time("updated_at", it.UpdatedAt),
	}
	if dec.err != nil {
		return entities.Customer{}, dec.err
	}
	return c, nil
}
