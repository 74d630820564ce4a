package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/projectledger/internal/domain"
)

// dateLayouts are tried in order when parsing a Date. The zoneless layouts
// match what HTML datetime-local inputs send and are read as UTC; parsing
// accepts fractional seconds after the seconds field.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// DateError reports a JSON string that is not a recognised date.
type DateError struct {
	Value string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid date %s: want YYYY-MM-DD, YYYY-MM-DDTHH:MM[:SS] or RFC 3339", e.Value)
}

// Date is a JSON date that accepts RFC 3339 timestamps, zoneless
// timestamps and plain YYYY-MM-DD dates. It marshals as RFC 3339.
type Date struct {
	time.Time
}

// ParseDate parses s with the layouts Date accepts. The result is in UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &DateError{Value: fmt.Sprintf("%q", s)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &DateError{Value: string(b)}
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Nullable is a request field that tells apart an absent key, an explicit
// null and a value. Tag fields with omitzero so unset values are not sent.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Value returns a Nullable holding v.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Null returns a Nullable that encodes as JSON null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when the key
// is present, which is what marks the field as set.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// MarshalJSON implements json.Marshaler.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// domainNullable converts n, mapping the value through conv.
func domainNullable[T, U any](n Nullable[T], conv func(T) U) domain.Nullable[U] {
	switch {
	case !n.Set:
		return domain.Nullable[U]{}
	case n.Null:
		return domain.Null[U]()
	default:
		return domain.Some(conv(n.Value))
	}
}

func identity[T any](v T) T { return v }

func dateTime(d Date) time.Time { return d.Time }

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
