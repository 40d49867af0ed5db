package paging

import (
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	now := time.Now()

	decoded, id, err := DecodeCursor(EncodeCursor(now, "row-42"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Equal(now) {
		t.Errorf("got %v, want %v", decoded, now)
	}
	if id != "row-42" {
		t.Errorf("id = %q, want row-42", id)
	}

	if _, _, err := DecodeCursor("not-base64!"); err == nil {
		t.Error("bad cursor decoded without error")
	}
	if _, _, err := DecodeCursor(EncodeCursor(now, "")); err != nil {
		t.Errorf("empty id cursor: %v", err)
	}
}

func TestNormalizeParams(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 20},
		{-5, 20},
		{101, 20},
		{50, 50},
	}
	for _, c := range cases {
		if got := NormalizeParams(Params{Limit: c.in}).Limit; got != c.want {
			t.Errorf("NormalizeParams(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestPaginateTrimsExtraRow(t *testing.T) {
	items := []int{1, 2, 3, 4}

	result, err := Paginate(Params{Limit: 3}, func(cursor string, limit int) ([]int, int, string, error) {
		if limit != 4 {
			t.Errorf("paging func called with limit %d, want 4", limit)
		}
		return items, 10, "next", nil
	})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(result.Items) != 3 {
		t.Errorf("items = %d, want 3", len(result.Items))
	}
	if !result.HasNextPage {
		t.Error("has_next = false, want true")
	}
	if result.Total != 10 {
		t.Errorf("total = %d, want 10", result.Total)
	}
}

func TestPaginateShortPage(t *testing.T) {
	result, err := Paginate(Params{Limit: 10}, func(cursor string, limit int) ([]int, int, string, error) {
		return []int{1, 2}, 2, "", nil
	})
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(result.Items) != 2 || result.HasNextPage {
		t.Errorf("result = %+v", result)
	}
}
