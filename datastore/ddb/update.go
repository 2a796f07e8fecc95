/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

// BuildUpdate transforms a change set into:
//   - a SET expression ("SET #f0 = :v0, #f1 = :v1")
//   - the expression attribute name map
//   - the expression attribute value map
//
// Every field gets its own placeholder pair so fields are never conflated,
// and attribute names never appear literally in the expression, which keeps
// reserved words out of play. Fields are ordered by name so the rendered
// expression is deterministic. An empty change set fails with ErrNoUpdateData
// before any write is attempted.
func BuildUpdate(fields storagemodels.Item) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(fields) == 0 {
		return "", nil, nil, errors.ErrNoUpdateData
	}

	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)

	setClauses := make([]string, 0, len(fields))
	exprNames := make(map[string]string, len(fields))
	exprValues := make(map[string]types.AttributeValue, len(fields))

	for i, field := range names {
		namePlaceholder := fmt.Sprintf("#f%d", i)
		valuePlaceholder := fmt.Sprintf(":v%d", i)

		setClauses = append(setClauses, fmt.Sprintf("%s = %s", namePlaceholder, valuePlaceholder))
		exprNames[namePlaceholder] = field
		exprValues[valuePlaceholder] = fields[field]
	}

	return "SET " + strings.Join(setClauses, ", "), exprNames, exprValues, nil
}
