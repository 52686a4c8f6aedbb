package tabular

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const appendAttempts = 5

// DynamoAPI is the subset of the DynamoDB client used by DynamoStore.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type rowItem struct {
	Sheet string   `dynamodbav:"sheet"`
	Row   int      `dynamodbav:"row"`
	Cells []string `dynamodbav:"cells"`
}

// DynamoStore keeps every sheet in one DynamoDB table.
//
// Table requirements:
//   - PK: sheet (string)
//   - SK: row (number), 0 being the header row
//   - cells: list of strings
type DynamoStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, tableName string) *DynamoStore {
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

func rowKey(sheet string, row int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"sheet": &types.AttributeValueMemberS{Value: sheet},
		"row":   &types.AttributeValueMemberN{Value: strconv.Itoa(row)},
	}
}

func (s *DynamoStore) getRow(ctx context.Context, sheet string, row int) (rowItem, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            rowKey(sheet, row),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return rowItem{}, false, err
	}
	if len(out.Item) == 0 {
		return rowItem{}, false, nil
	}
	var it rowItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return rowItem{}, false, err
	}
	return it, true, nil
}

// putNew writes a row that must not exist yet.
func (s *DynamoStore) putNew(ctx context.Context, it rowItem) error {
	if it.Cells == nil {
		it.Cells = []string{}
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#sheet)"),
		ExpressionAttributeNames: map[string]string{"#sheet": "sheet"},
	})
	return err
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func (s *DynamoStore) OpenTable(ctx context.Context, name string) (Table, error) {
	_, ok, err := s.getRow(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound(name)
	}
	return &dynamoTable{store: s, name: name}, nil
}

func (s *DynamoStore) CreateTable(ctx context.Context, name string, headers []string) (Table, error) {
	err := s.putNew(ctx, rowItem{Sheet: name, Row: 0, Cells: cloneRow(headers)})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("%w: %s", ErrTableExists, name)
		}
		return nil, err
	}
	return &dynamoTable{store: s, name: name}, nil
}

type dynamoTable struct {
	store *DynamoStore
	name  string
}

func (t *dynamoTable) Name() string { return t.name }

func (t *dynamoTable) query(ctx context.Context, forward bool, limit int32) ([]rowItem, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(t.store.tableName),
		KeyConditionExpression: aws.String("#sheet = :sheet"),
		ExpressionAttributeNames: map[string]string{
			"#sheet": "sheet",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sheet": &types.AttributeValueMemberS{Value: t.name},
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(forward),
	}
	if limit > 0 {
		in.Limit = aws.Int32(limit)
	}

	var items []rowItem
	for {
		out, err := t.store.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		var page []rowItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if limit > 0 || len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (t *dynamoTable) ReadAll(ctx context.Context) ([][]string, error) {
	items, err := t.query(ctx, true, 0)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, notFound(t.name)
	}
	out := make([][]string, len(items))
	for i, it := range items {
		out[i] = it.Cells
	}
	return out, nil
}

// AppendRow claims the next row number with a conditional put, retrying
// when a concurrent writer claimed it first.
func (t *dynamoTable) AppendRow(ctx context.Context, values []string) (int, error) {
	for attempt := 0; attempt < appendAttempts; attempt++ {
		last, err := t.query(ctx, false, 1)
		if err != nil {
			return 0, err
		}
		if len(last) == 0 {
			return 0, notFound(t.name)
		}
		next := last[0].Row + 1
		err = t.store.putNew(ctx, rowItem{Sheet: t.name, Row: next, Cells: cloneRow(values)})
		if err == nil {
			return next, nil
		}
		if !isConditionFailed(err) {
			return 0, err
		}
	}
	return 0, fmt.Errorf("append to %s: row contention after %d attempts", t.name, appendAttempts)
}

func (t *dynamoTable) WriteCell(ctx context.Context, row, col int, value string) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: %s[%d][%d]", ErrRowNotFound, t.name, row, col)
	}
	it, ok, err := t.store.getRow(ctx, t.name, row)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s[%d]", ErrRowNotFound, t.name, row)
	}
	cells := padRow(it.Cells, col+1)
	cells[col] = value

	av, err := attributevalue.Marshal(cells)
	if err != nil {
		return err
	}
	_, err = t.store.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(t.store.tableName),
		Key:                 rowKey(t.name, row),
		ConditionExpression: aws.String("attribute_exists(#sheet)"),
		UpdateExpression:    aws.String("SET #cells = :cells"),
		ExpressionAttributeNames: map[string]string{
			"#sheet": "sheet",
			"#cells": "cells",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cells": av,
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return fmt.Errorf("%w: %s[%d]", ErrRowNotFound, t.name, row)
		}
		return err
	}
	return nil
}
