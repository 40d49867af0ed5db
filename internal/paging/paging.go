// Package paging provides cursor-based pagination utilities.
package paging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Params holds the unified pagination parameters.
type Params struct {
	Cursor string `json:"cursor" form:"cursor"`
	Limit  int    `json:"limit" form:"limit"`
}

// Result holds the pagination result.
type Result[T any] struct {
	Items       []T    `json:"items"`
	Total       int    `json:"total,omitempty"`
	NextCursor  string `json:"next,omitempty"`
	HasNextPage bool   `json:"has_next"`
}

// NormalizeParams ensures that Limit is within an acceptable range.
func NormalizeParams(params Params) Params {
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 20
	}
	return params
}

// EncodeCursor encodes a row's timestamp and ID to an opaque cursor.
// The ID breaks ties between rows sharing a timestamp.
func EncodeCursor(t time.Time, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(t.Format(time.RFC3339Nano) + "," + id))
}

// DecodeCursor decodes a cursor back to its timestamp and row ID.
func DecodeCursor(cursor string) (time.Time, string, error) {
	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", err
	}
	ts, id, ok := strings.Cut(string(b), ",")
	if !ok {
		return time.Time{}, "", errors.New("malformed cursor")
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, id, nil
}

// PagingFunc implements the pagination query. It is called with limit+1
// so the extra row signals a next page; nextCursor must point at the
// last row the caller keeps, never at the probe row.
type PagingFunc[T any] func(cursor string, limit int) (items []T, total int, nextCursor string, err error)

// Paginate applies pagination using the provided PagingFunc.
func Paginate[T any](params Params, paginateFunc PagingFunc[T]) (*Result[T], error) {
	params = NormalizeParams(params)
	items, total, nextCursor, err := paginateFunc(params.Cursor, params.Limit+1)
	if err != nil {
		return nil, fmt.Errorf("pagination error: %v", err)
	}

	hasNextPage := false
	if len(items) > params.Limit {
		hasNextPage = true
		items = items[:params.Limit]
	}

	if items == nil {
		items = make([]T, 0)
	}

	return &Result[T]{
		Items:       items,
		Total:       total,
		NextCursor:  nextCursor,
		HasNextPage: hasNextPage,
	}, nil
}
