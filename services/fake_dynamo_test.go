package services

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoClient implements DynamoDBAPI for tests. Behavior is supplied
// per test through the function fields; every call is recorded.
type fakeDynamoClient struct {
	mu sync.Mutex

	putInputs      []*dynamodb.PutItemInput
	getInputs      []*dynamodb.GetItemInput
	queryInputs    []*dynamodb.QueryInput
	scanInputs     []*dynamodb.ScanInput
	updateInputs   []*dynamodb.UpdateItemInput
	batchGetInputs []*dynamodb.BatchGetItemInput

	putFunc      func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getFunc      func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	queryFunc    func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scanFunc     func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	updateFunc   func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	batchGetFunc func(*dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error)
}

func (f *fakeDynamoClient) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	f.putInputs = append(f.putInputs, params)
	f.mu.Unlock()
	if f.putFunc != nil {
		return f.putFunc(params)
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) GetItem(_ context.Context, params *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	f.getInputs = append(f.getInputs, params)
	f.mu.Unlock()
	if f.getFunc != nil {
		return f.getFunc(params)
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamoClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	f.queryInputs = append(f.queryInputs, params)
	f.mu.Unlock()
	if f.queryFunc != nil {
		return f.queryFunc(params)
	}
	return &dynamodb.QueryOutput{}, nil
}

func (f *fakeDynamoClient) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	f.scanInputs = append(f.scanInputs, params)
	f.mu.Unlock()
	if f.scanFunc != nil {
		return f.scanFunc(params)
	}
	return &dynamodb.ScanOutput{}, nil
}

func (f *fakeDynamoClient) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	f.updateInputs = append(f.updateInputs, params)
	f.mu.Unlock()
	if f.updateFunc != nil {
		return f.updateFunc(params)
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamoClient) BatchGetItem(_ context.Context, params *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.mu.Lock()
	f.batchGetInputs = append(f.batchGetInputs, params)
	f.mu.Unlock()
	if f.batchGetFunc != nil {
		return f.batchGetFunc(params)
	}
	return &dynamodb.BatchGetItemOutput{}, nil
}

// putsToTable returns the recorded PutItem inputs for one table.
func (f *fakeDynamoClient) putsToTable(table string) []*dynamodb.PutItemInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	var puts []*dynamodb.PutItemInput
	for _, input := range f.putInputs {
		if input.TableName != nil && *input.TableName == table {
			puts = append(puts, input)
		}
	}
	return puts
}

func mustMarshalMap(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("failed to marshal %T: %v", v, err)
	}
	return item
}
