// Package dynamo implements the item repo over a DynamoDB table keyed by
// item id. The table itself is provisioned out of band; this package only
// issues single-item calls and one unbounded scan.
package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"todod"
)

// API is the subset of the DynamoDB client the repo uses. Narrowing the
// surface keeps tests to a small fake instead of a real endpoint.
type API interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Repo is a DynamoDB-backed ItemRepo.
type Repo struct {
	client    API
	tableName string
}

// NewRepo creates a Repo over a DynamoDB client.
func NewRepo(client API, tables todod.Tables) (*Repo, error) {
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("new repo: %w", err)
	}

	return &Repo{client: client, tableName: tables.Items}, nil
}

// NewClient builds a DynamoDB client from the ambient AWS configuration.
// endpoint overrides the service endpoint for local development
// (dynamodb-local, localstack).
func NewClient(ctx context.Context, region, endpoint string) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func itemKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *Repo) List(ctx context.Context) ([]todod.Item, error) {
	var items []todod.Item
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("list: scan: %w", err)
		}

		var page []todod.Item
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("list: unmarshal: %w", err)
		}
		items = append(items, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

func (r *Repo) Get(ctx context.Context, id string) (todod.Item, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(id),
	})
	if err != nil {
		return todod.Item{}, fmt.Errorf("get: %w", err)
	}

	if len(out.Item) == 0 {
		return todod.Item{}, todod.ErrNotFound
	}

	var item todod.Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return todod.Item{}, fmt.Errorf("get: unmarshal: %w", err)
	}

	return item, nil
}

func (r *Repo) Put(ctx context.Context, item todod.Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("put: marshal: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("put: %w", err)
	}

	return nil
}

func (r *Repo) SetCompleted(ctx context.Context, id string, completed bool) error {
	// attribute_exists(id) turns the blind update into a conditional one,
	// so a missing id surfaces as not-found instead of a silent upsert.
	expr, err := expression.NewBuilder().
		WithUpdate(expression.Set(expression.Name("completed"), expression.Value(completed))).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return fmt.Errorf("set completed: build expression: %w", err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       itemKey(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return todod.ErrNotFound
		}
		return fmt.Errorf("set completed: %w", err)
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(id),
	}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}
