package store

import (
	"context"
	"fmt"

	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoStore
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// DynamoStore reads progression records from a DynamoDB table keyed by playerName
type DynamoStore struct {
	client DynamoAPI
	table  string
}

func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// OpenDynamo builds a DynamoDB client from the default AWS credential chain
func OpenDynamo(ctx context.Context, cfg config.StoreConfig) (*DynamoStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		// DynamoDB Local or LocalStack
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewDynamoStore(client, cfg.TableName), nil
}

func (s *DynamoStore) Get(ctx context.Context, playerName string) (progress.Record, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"playerName": &types.AttributeValueMemberS{Value: playerName},
		},
	})
	if err != nil {
		return progress.Record{}, false, progress.NewLookupError(playerName, err)
	}
	if out == nil || len(out.Item) == 0 {
		return progress.Record{}, false, nil
	}

	var rec progress.Record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return progress.Record{}, false, progress.NewLookupError(playerName, fmt.Errorf("failed to decode item: %w", err))
	}
	return rec, true, nil
}

func (s *DynamoStore) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)})
	return err
}

func (s *DynamoStore) Close(ctx context.Context) error {
	return nil
}
