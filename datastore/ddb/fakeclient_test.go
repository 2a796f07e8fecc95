/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeClient scripts the engine API per call so store behavior can be
// tested without a live table.
type fakeClient struct {
	GetItemFn        func(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItemFn        func(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItemFn     func(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	UpdateItemFn     func(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error)
	QueryFn          func(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
	ScanFn           func(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	BatchWriteItemFn func(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error)
	CreateTableFn    func(ctx context.Context, params *sdk.CreateTableInput, optFns ...func(*sdk.Options)) (*sdk.CreateTableOutput, error)
	DescribeTableFn  func(ctx context.Context, params *sdk.DescribeTableInput, optFns ...func(*sdk.Options)) (*sdk.DescribeTableOutput, error)
}

func (f *fakeClient) GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	if f.GetItemFn != nil {
		return f.GetItemFn(ctx, params, optFns...)
	}
	return &sdk.GetItemOutput{}, nil
}

func (f *fakeClient) PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	if f.PutItemFn != nil {
		return f.PutItemFn(ctx, params, optFns...)
	}
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeClient) DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	if f.DeleteItemFn != nil {
		return f.DeleteItemFn(ctx, params, optFns...)
	}
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeClient) UpdateItem(ctx context.Context, params *sdk.UpdateItemInput, optFns ...func(*sdk.Options)) (*sdk.UpdateItemOutput, error) {
	if f.UpdateItemFn != nil {
		return f.UpdateItemFn(ctx, params, optFns...)
	}
	return &sdk.UpdateItemOutput{}, nil
}

func (f *fakeClient) Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, params, optFns...)
	}
	return &sdk.QueryOutput{}, nil
}

func (f *fakeClient) Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	if f.ScanFn != nil {
		return f.ScanFn(ctx, params, optFns...)
	}
	return &sdk.ScanOutput{}, nil
}

func (f *fakeClient) BatchWriteItem(ctx context.Context, params *sdk.BatchWriteItemInput, optFns ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error) {
	if f.BatchWriteItemFn != nil {
		return f.BatchWriteItemFn(ctx, params, optFns...)
	}
	return &sdk.BatchWriteItemOutput{}, nil
}

func (f *fakeClient) CreateTable(ctx context.Context, params *sdk.CreateTableInput, optFns ...func(*sdk.Options)) (*sdk.CreateTableOutput, error) {
	if f.CreateTableFn != nil {
		return f.CreateTableFn(ctx, params, optFns...)
	}
	return &sdk.CreateTableOutput{}, nil
}

func (f *fakeClient) DescribeTable(ctx context.Context, params *sdk.DescribeTableInput, optFns ...func(*sdk.Options)) (*sdk.DescribeTableOutput, error) {
	if f.DescribeTableFn != nil {
		return f.DescribeTableFn(ctx, params, optFns...)
	}
	return &sdk.DescribeTableOutput{}, nil
}
