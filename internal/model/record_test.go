package model

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestTimestampFromString(t *testing.T) {
	cases := []struct {
		raw string
		ok  bool
	}{
		{"2026-06-15T12:30:00Z", true},
		{"2026-06-15T12:30:00.123Z", true},
		{"2026-06-15T12:30:00", true},
		{"2026-06-15", true},
		{"15/06/2026", false},
		{"not a date", false},
		{"", false},
	}

	for _, tc := range cases {
		_, ok := TimestampFromString(tc.raw).Time()
		if ok != tc.ok {
			t.Errorf("TimestampFromString(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
		}
	}
}

func TestTimestamp_DecodesBothStoreRepresentations(t *testing.T) {
	when := time.Date(2026, 6, 15, 12, 30, 0, 0, time.UTC)

	asString, err := bson.Marshal(bson.M{"_id": "c1", "createdAt": when.Format(time.RFC3339)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	asDate, err := bson.Marshal(bson.M{"_id": "c2", "createdAt": when})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, doc := range [][]byte{asString, asDate} {
		var record CollectionRecord
		if err := bson.Unmarshal(doc, &record); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		instant, ok := record.CreatedAt.Time()
		if !ok {
			t.Fatalf("record %s: timestamp did not decode", record.ID)
		}
		if !instant.Equal(when) {
			t.Fatalf("record %s: instant = %v, want %v", record.ID, instant, when)
		}
	}
}

func TestTimestamp_MalformedValueDecodesInvalid(t *testing.T) {
	doc, err := bson.Marshal(bson.M{"_id": "c3", "createdAt": int64(42)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var record CollectionRecord
	if err := bson.Unmarshal(doc, &record); err != nil {
		t.Fatalf("a malformed timestamp must not fail the decode: %v", err)
	}
	if _, ok := record.CreatedAt.Time(); ok {
		t.Fatal("expected an invalid timestamp")
	}
}

func TestCollectionRecordArea(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"12 Main St, Central, Metro", "Central"},
		{"12 Main St,  Spaced  ,X", "Spaced"},
		{"no-comma", UnknownArea},
		{"trailing-comma,", UnknownArea},
		{"", UnknownArea},
	}

	for _, tc := range cases {
		if got := (CollectionRecord{Address: tc.address}).Area(); got != tc.want {
			t.Errorf("Area(%q) = %q, want %q", tc.address, got, tc.want)
		}
	}
}
