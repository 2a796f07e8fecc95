/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	"github.com/suparena/shopstore/datastore"
)

const streamBuffer = 64

// Stream runs q and yields items as pages arrive, so consumers like the
// export path never hold a whole partition in memory. The channel closes
// when the query is exhausted, on the first failure, or when ctx is done.
func (s *TableStore) Stream(ctx context.Context, q *datastore.Query) <-chan datastore.StreamResult {
	results := make(chan datastore.StreamResult, streamBuffer)
	go s.streamWorker(ctx, q, results)
	return results
}

func (s *TableStore) streamWorker(ctx context.Context, q *datastore.Query, results chan<- datastore.StreamResult) {
	defer close(results)

	input, err := s.queryInput(q)
	if err != nil {
		results <- datastore.StreamResult{Err: translate("stream", "", err)}
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := s.client.Query(ctx, input)
		if err != nil {
			select {
			case <-ctx.Done():
			case results <- datastore.StreamResult{Err: translate("stream", "", err)}:
			}
			return
		}

		for _, item := range out.Items {
			select {
			case <-ctx.Done():
				return
			case results <- datastore.StreamResult{Item: item}:
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
