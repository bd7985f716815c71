package model

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPending PaymentStatus = "Pending Verification"
)

type ScheduleStatus string

const (
	ScheduleScheduled  ScheduleStatus = "Scheduled"
	ScheduleCancelled  ScheduleStatus = "Cancelled"
	ScheduleInProgress ScheduleStatus = "In Progress"
)

// DefaultWasteType is assumed for records created without a category.
const DefaultWasteType = "Mixed"

// Timestamp is a record creation time that arrives from the store in one of
// two representations: a native datetime or an ISO-8601 string. A value that
// could not be decoded reports !ok from Time and is treated as out of range
// by the date filter.
type Timestamp struct {
	t     time.Time
	valid bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t, valid: true}
}

// TimestampFromString parses an ISO-8601-ish string. Unparseable input yields
// an invalid Timestamp, not an error.
func TimestampFromString(raw string) Timestamp {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Timestamp{t: t, valid: true}
		}
	}
	return Timestamp{}
}

func (ts Timestamp) Time() (time.Time, bool) {
	return ts.t, ts.valid
}

// UnmarshalBSONValue accepts either bson datetime or string. Anything else
// (null, missing, malformed) decodes to an invalid Timestamp so a bad record
// never aborts a whole collection read.
func (ts *Timestamp) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDateTime:
		dt, ok := raw.DateTimeOK()
		if !ok {
			*ts = Timestamp{}
			return nil
		}
		*ts = Timestamp{t: time.UnixMilli(dt).UTC(), valid: true}
	case bson.TypeString:
		s, ok := raw.StringValueOK()
		if !ok {
			*ts = Timestamp{}
			return nil
		}
		*ts = TimestampFromString(s)
	default:
		*ts = Timestamp{}
	}
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.t)
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*ts = TimestampFromString(s)
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err == nil {
		*ts = Timestamp{t: t, valid: true}
		return nil
	}
	*ts = Timestamp{}
	return nil
}

func (ts Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !ts.valid {
		return bson.TypeNull, nil, nil
	}
	typ, data, err := bson.MarshalValue(ts.t)
	if err != nil {
		return typ, nil, fmt.Errorf("marshal timestamp: %w", err)
	}
	return typ, data, nil
}

// CollectionRecord is one completed waste pickup. Immutable once written,
// apart from payment status transitions performed by the payment flow.
type CollectionRecord struct {
	ID          string        `bson:"_id" json:"id"`
	Address     string        `bson:"address" json:"address"`
	WasteType   string        `bson:"wasteType" json:"wasteType"`
	TotalWeight string        `bson:"totalWeight" json:"totalWeight"`
	TotalCost   string        `bson:"totalCost" json:"totalCost"`
	Status      PaymentStatus `bson:"status" json:"status"`
	CreatedAt   Timestamp     `bson:"createdAt" json:"createdAt"`
}

// Area returns the second comma-separated token of the address, the
// convention the mobile client uses when composing addresses.
func (r CollectionRecord) Area() string {
	return areaOf(r.Address)
}

// ScheduleRecord is a requested pickup. There is no Completed status: a
// schedule counts as completed once a matching CollectionRecord exists.
type ScheduleRecord struct {
	ID        string         `bson:"_id" json:"id"`
	WasteType string         `bson:"wasteType" json:"wasteType"`
	Status    ScheduleStatus `bson:"status" json:"status"`
	CreatedAt Timestamp      `bson:"createdAt" json:"createdAt"`
}

// Account is a platform user as stored in the users collection. Only Role is
// consulted by the authorization gate.
type Account struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Role  string `bson:"role" json:"role"`
}
