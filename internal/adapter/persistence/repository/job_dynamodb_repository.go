package repository

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/infrastructure/database"
	"scale_workshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	jobsStatusIndex  = "status-index"
	jobCounterKey    = "counter#job"
	numberKeyAttr    = "number_key"
	numberJobIDAttr  = "job_id"
	counterValueAttr = "seq"
)

type numberClaimItem struct {
	Key    string `dynamodbav:"number_key"`
	Kind   string `dynamodbav:"kind"`
	Number string `dynamodbav:"number"`
	JobID  string `dynamodbav:"job_id"`
}

// JobDynamoRepository persists the Job aggregate in DynamoDB.
//
// Table requirements:
//   - jobs: PK id (string), GSI status-index (PK status)
//   - job_numbers: PK number_key (string). Holds one item per claimed
//     job/quotation/invoice number and the job number counter.
//
// Every write of a job goes through a transaction that checks its version
// and reserves any new numbers, so stale or duplicate writes fail as a whole.
type JobDynamoRepository struct {
	ddb    dynamoAPI
	tables database.Tables
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client, tables database.Tables) *JobDynamoRepository {
	return newJobRepository(ddb, tables)
}

func newJobRepository(ddb dynamoAPI, tables database.Tables) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tables: tables}
}

func numberKey(kind entities.NumberKind, number string) string {
	return string(kind) + "#" + number
}

func (r *JobDynamoRepository) claimPut(jobID string, c entities.NumberClaim) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(numberClaimItem{
		Key:    numberKey(c.Kind, c.Number),
		Kind:   string(c.Kind),
		Number: c.Number,
		JobID:  jobID,
	})
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(r.tables.JobNumbers),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key) OR #job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#key":    numberKeyAttr,
			"#job_id": numberJobIDAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	}, nil
}

// write runs the job put and the claim puts in one transaction. A failed
// condition on item 0 yields onJob; on item i it is a conflict on claims[i-1].
func (r *JobDynamoRepository) write(ctx context.Context, jobPut *types.Put, jobID string, claims []entities.NumberClaim, onJob *entities.ConflictError) error {
	items := []types.TransactWriteItem{{Put: jobPut}}
	for _, c := range claims {
		put, err := r.claimPut(jobID, c)
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{Put: put})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		return nil
	}
	switch i := cancelledAt(err); {
	case i == 0:
		return onJob
	case i > 0 && i <= len(claims):
		return &entities.ConflictError{Field: claims[i-1].Kind.Field(), Value: claims[i-1].Number}
	}
	return err
}

// Create stores a new job at version 1 and claims its job number.
func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	job.Version = 1
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}
	put := &types.Put{
		TableName:           aws.String(r.tables.Jobs),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}
	claims := []entities.NumberClaim{{Kind: entities.NumberKindJob, Number: job.JobNumber}}
	if err := r.write(ctx, put, job.ID, claims, &entities.ConflictError{Field: "id", Value: job.ID}); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Jobs),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, &entities.NotFoundError{Entity: "job", ID: id}
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it)
}

// ListByStatus queries status-index, or scans the table when status is
// empty. Jobs come back oldest first.
func (r *JobDynamoRepository) ListByStatus(ctx context.Context, status entities.JobStatus) ([]entities.Job, error) {
	var pages [][]map[string]types.AttributeValue
	if status == "" {
		p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tables.Jobs)})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	} else {
		p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tables.Jobs),
			IndexName:              aws.String(jobsStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			pages = append(pages, out.Items)
		}
	}

	jobs := []entities.Job{}
	for _, page := range pages {
		for _, raw := range page {
			var it jobItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			job, err := fromJobItem(it)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, job)
		}
	}
	slices.SortStableFunc(jobs, func(a, b entities.Job) int {
		return a.ReceivedAt.Compare(b.ReceivedAt)
	})
	return jobs, nil
}

// NextJobSequence atomically increments the job number counter. The first
// call returns 1.
func (r *JobDynamoRepository) NextJobSequence(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tables.JobNumbers),
		Key: map[string]types.AttributeValue{
			numberKeyAttr: &types.AttributeValueMemberS{Value: jobCounterKey},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": counterValueAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes[counterValueAttr].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("job counter: missing %s attribute", counterValueAttr)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

// IsNumberTaken reports whether number is claimed by a job other than jobID.
func (r *JobDynamoRepository) IsNumberTaken(ctx context.Context, kind entities.NumberKind, number, jobID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.JobNumbers),
		Key: map[string]types.AttributeValue{
			numberKeyAttr: &types.AttributeValueMemberS{Value: numberKey(kind, number)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	var it numberClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	return it.JobID != jobID, nil
}

// Save writes job if the stored version still equals expectedVersion and
// reserves claims for it, all in one transaction.
func (r *JobDynamoRepository) Save(ctx context.Context, job entities.Job, expectedVersion int64, claims []entities.NumberClaim) (entities.Job, error) {
	job.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}
	expected := strconv.FormatInt(expectedVersion, 10)
	put := &types.Put{
		TableName:           aws.String(r.tables.Jobs),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: expected},
		},
	}
	if err := r.write(ctx, put, job.ID, claims, &entities.ConflictError{Field: "version", Value: expected}); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}
