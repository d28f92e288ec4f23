package core

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/hjs-ah/portfolio/internal/db"
)

const orderField = "order"

// NextOrder returns one more than the highest order among docs, or 1 if there are none. Documents without a
// numeric order count as 0. Gaps left by deletions are never filled.
func NextOrder(docs []db.Document) int64 {
	if len(docs) == 0 {
		return 1
	}

	highest := int64(math.MinInt64)
	for _, d := range docs {
		if o := orderOf(d.Data); o > highest {
			highest = o
		}
	}
	return highest + 1
}

func orderOf(data map[string]any) int64 {
	switch v := data[orderField].(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int64(f)
		}
	}
	return 0
}

// insertOrdered adds a document after the last one of collection. Inserts into the same collection are
// serialized within this process; other processes sharing the store can still pick the same order.
func (s *AppService) insertOrdered(ctx context.Context, collection db.Collection, fields func(order int64) map[string]any) error {
	unlock := s.locks.Lock(string(collection))
	defer unlock()

	docs, err := s.DB.GetAll(ctx, collection, nil)
	if err != nil {
		return err
	}

	_, err = s.DB.Add(ctx, collection, fields(NextOrder(docs)))
	return err
}
