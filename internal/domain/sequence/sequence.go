// Package sequence defines the human-readable document numbers minted from
// persisted counters.
//
// A counter is addressed by a Key. Typed documents share one counter per
// type for the lifetime of the deployment; day-scoped documents embed the
// calendar day in the key, so every day starts a fresh counter at 1 without
// any reset step.
package sequence

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownType   = errors.New("unknown sequence type")
	ErrInvalidNumber = errors.New("sequence number must be positive")
)

const dayLayout = "2006-01-02"

type Type string

const (
	TypeQuote           Type = "COT"
	TypeInvoice         Type = "FACT"
	TypeProformaInvoice Type = "FACTPF"
	TypePurchaseOrder   Type = "OC"
	TypeDeliveryNote    Type = "COND"
	TypeTicket          Type = "TK"
)

// Format fixes how a counter value is rendered for one document type.
type Format struct {
	Prefix  string
	Padding int
	Daily   bool
}

var formats = map[Type]Format{
	TypeQuote:           {Prefix: "COT", Padding: 6},
	TypeInvoice:         {Prefix: "FACT", Padding: 6},
	TypeProformaInvoice: {Prefix: "FACTPF", Padding: 6},
	TypePurchaseOrder:   {Prefix: "OC", Padding: 6},
	TypeDeliveryNote:    {Prefix: "COND", Padding: 6},
	TypeTicket:          {Prefix: "TK", Padding: 3, Daily: true},
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := formats[t]; !ok {
		return "", ErrUnknownType
	}
	return t, nil
}

func (t Type) Format() (Format, bool) {
	f, ok := formats[t]
	return f, ok
}

func (t Type) String() string {
	return string(t)
}

// Key identifies exactly one persisted counter.
type Key struct {
	typ Type
	day string
}

// KeyFor resolves the counter key for t at instant now. Day-scoped types use
// the calendar day of now in loc.
func KeyFor(t Type, now time.Time, loc *time.Location) (Key, error) {
	f, ok := formats[t]
	if !ok {
		return Key{}, ErrUnknownType
	}
	if !f.Daily {
		return Key{typ: t}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	return Key{typ: t, day: now.In(loc).Format(dayLayout)}, nil
}

func (k Key) Type() Type  { return k.typ }
func (k Key) Day() string { return k.day }

// String is the storage identifier of the counter, e.g. "COT" or "TK:2025-11-30".
func (k Key) String() string {
	if k.day == "" {
		return string(k.typ)
	}
	return string(k.typ) + ":" + k.day
}

// Render formats an issued counter value. Padding is a minimum width and never truncates.
func (k Key) Render(n int64) (string, error) {
	if n <= 0 {
		return "", ErrInvalidNumber
	}
	f, ok := formats[k.typ]
	if !ok {
		return "", ErrUnknownType
	}
	if k.day != "" {
		return fmt.Sprintf("%s-%s-%0*d", f.Prefix, k.day, f.Padding, n), nil
	}
	return fmt.Sprintf("%s-%0*d", f.Prefix, f.Padding, n), nil
}
