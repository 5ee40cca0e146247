package database

import (
	"context"
	"fmt"

	"scale_workshop/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Tables names the DynamoDB tables the repositories write to.
type Tables struct {
	Customers  string
	Jobs       string
	JobNumbers string
}

func TablesFromConfig(cfg config.Config) Tables {
	return Tables{
		Customers:  cfg.DynamoDB.CustomersTable,
		Jobs:       cfg.DynamoDB.JobsTable,
		JobNumbers: cfg.DynamoDB.JobNumbersTable,
	}
}

// ConnectDynamoDB creates a DynamoDB client. A non-empty DynamoDB endpoint
// (e.g. http://dynamodb:8000) points the client at a local instance.
func ConnectDynamoDB(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDB.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDB.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWS.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
