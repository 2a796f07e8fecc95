/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore/mock"
	"github.com/suparena/shopstore/objstore"
)

// fakeObjects records S3 traffic so tests can assert on uploads and
// deletions without a bucket.
type fakeObjects struct {
	mu      sync.Mutex
	puts    []string
	deletes []string
}

func (f *fakeObjects) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, obj := range params.Delete.Objects {
		f.deletes = append(f.deletes, *obj.Key)
	}
	return &s3.DeleteObjectsOutput{}, nil
}

func (f *fakeObjects) deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deletes...)
}

func (f *fakeObjects) uploaded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.puts...)
}

type testEnv struct {
	svc     *Service
	store   *mock.Store
	tokens  *mock.Store
	objects *fakeObjects
}

// newTestEnv wires a Service over in-memory stores with deterministic
// uuid and clock sequences.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := mock.New()
	tokens := mock.New()
	objects := &fakeObjects{}
	storage := objstore.New(objects, "test-bucket", "https://storage.test", zap.NewNop())

	svc := New(store, tokens, storage, zap.NewNop(), 7)

	var uuids, ticks int
	svc.NewUUID = func() string {
		uuids++
		return fmt.Sprintf("uuid-%04d", uuids)
	}
	svc.Now = func() string {
		ticks++
		return fmt.Sprintf("2026-09-01T10:%02d:%02dZ", ticks/60, ticks%60)
	}

	return &testEnv{svc: svc, store: store, tokens: tokens, objects: objects}
}

func upload(name string) *Upload {
	return &Upload{
		Filename:    name,
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	}
}
