package tabular

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo emulates the key/condition semantics DynamoStore relies on.
type fakeDynamo struct {
	mu   sync.Mutex
	rows map[string]map[int][]string
	// contend makes the next N conditional puts lose to a competing writer.
	contend int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{rows: map[string]map[int][]string{}}
}

func keyOf(key map[string]types.AttributeValue) (string, int) {
	sheet := key["sheet"].(*types.AttributeValueMemberS).Value
	row, _ := strconv.Atoi(key["row"].(*types.AttributeValueMemberN).Value)
	return sheet, row
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sheet, row := keyOf(in.Key)
	cells, ok := f.rows[sheet][row]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	item, err := attributevalue.MarshalMap(rowItem{Sheet: sheet, Row: row, Cells: cloneRow(cells)})
	if err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var it rowItem
	if err := attributevalue.UnmarshalMap(in.Item, &it); err != nil {
		return nil, err
	}
	if f.rows[it.Sheet] == nil {
		f.rows[it.Sheet] = map[int][]string{}
	}
	if f.contend > 0 {
		f.contend--
		f.rows[it.Sheet][it.Row] = []string{"competitor"}
	}
	if _, exists := f.rows[it.Sheet][it.Row]; exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.rows[it.Sheet][it.Row] = it.Cells
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sheet, row := keyOf(in.Key)
	if _, ok := f.rows[sheet][row]; !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	var cells []string
	if err := attributevalue.Unmarshal(in.ExpressionAttributeValues[":cells"], &cells); err != nil {
		return nil, err
	}
	f.rows[sheet][row] = cells
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sheet := in.ExpressionAttributeValues[":sheet"].(*types.AttributeValueMemberS).Value

	nums := make([]int, 0, len(f.rows[sheet]))
	for n := range f.rows[sheet] {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	if in.ScanIndexForward != nil && !*in.ScanIndexForward {
		sort.Sort(sort.Reverse(sort.IntSlice(nums)))
	}
	if in.Limit != nil && int(*in.Limit) < len(nums) {
		nums = nums[:*in.Limit]
	}

	out := &dynamodb.QueryOutput{}
	for _, n := range nums {
		item, err := attributevalue.MarshalMap(rowItem{Sheet: sheet, Row: n, Cells: cloneRow(f.rows[sheet][n])})
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}
