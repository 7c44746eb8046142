// Package channel is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package channel_test

import (
	"testing"

	"github.com/loopstack/soundstage/channel"
)

func newRecord(id channel.ID) *channel.Record {
	return channel.NewRecord(id, nil, nil, nil, nil)
}

func TestInsertGetDelete(t *testing.T) {
	tbl := channel.NewTable()
	r := newRecord(1)
	tbl.Insert(r)

	got, ok := tbl.Get(1)
	if !ok || got != r {
		t.Fatalf("expected to find inserted record")
	}

	tbl.Delete(1)
	if _, ok := tbl.Get(1); ok {
		t.Fatalf("expected record to be gone after delete")
	}
}

func TestEachDeletesCurrent(t *testing.T) {
	tbl := channel.NewTable()
	tbl.Insert(newRecord(1))
	tbl.Insert(newRecord(2))
	tbl.Insert(newRecord(3))

	var seen []channel.ID
	tbl.Each(func(r *channel.Record) bool {
		seen = append(seen, r.ID)
		return r.ID != 2 // drop id 2
	})

	if len(seen) != 3 {
		t.Fatalf("expected to visit 3 records, visited %d", len(seen))
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 records remaining, got %d", tbl.Len())
	}
	if _, ok := tbl.Get(2); ok {
		t.Fatalf("expected id 2 to have been removed")
	}
}

func TestAddAllMovesAndEmptiesSource(t *testing.T) {
	dst := channel.NewTable()
	src := channel.NewTable()

	src.Insert(newRecord(1))
	src.Insert(newRecord(2))

	dst.AddAll(src)

	if dst.Len() != 2 {
		t.Fatalf("expected dst to have 2 records, got %d", dst.Len())
	}
	if src.Len() != 0 {
		t.Fatalf("expected src to be empty after AddAll, got %d", src.Len())
	}
}

func TestAddAllOverwrites(t *testing.T) {
	dst := channel.NewTable()
	src := channel.NewTable()

	original := newRecord(1)
	replacement := newRecord(1)

	dst.Insert(original)
	src.Insert(replacement)
	dst.AddAll(src)

	got, _ := dst.Get(1)
	if got != replacement {
		t.Fatalf("expected AddAll to overwrite existing key")
	}
}
