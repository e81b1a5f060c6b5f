package stmtcache

import (
	"slices"
	"strconv"
	"strings"
)

// CursorType selects the scrolling behaviour of a statement's cursor.
type CursorType int

const (
	// ForwardOnly cursors move forward only. This is the default.
	ForwardOnly CursorType = iota
	// ScrollInsensitive cursors are scrollable and do not observe changes
	// made by others after the cursor was opened.
	ScrollInsensitive
	// ScrollSensitive cursors are scrollable and observe concurrent changes.
	ScrollSensitive
)

func (t CursorType) String() string {
	switch t {
	case ForwardOnly:
		return "forward_only"
	case ScrollInsensitive:
		return "scroll_insensitive"
	case ScrollSensitive:
		return "scroll_sensitive"
	default:
		return "unknown"
	}
}

// Concurrency selects whether a statement's result rows may be updated in
// place through the cursor.
type Concurrency int

const (
	// ReadOnly results cannot be updated through the cursor. This is the default.
	ReadOnly Concurrency = iota
	// Updatable results may be modified through the cursor.
	Updatable
)

func (c Concurrency) String() string {
	switch c {
	case ReadOnly:
		return "read_only"
	case Updatable:
		return "updatable"
	default:
		return "unknown"
	}
}

// Holdability controls whether a statement's cursor stays open across a
// transaction commit. The zero value leaves the choice to the driver, and
// keys that leave it unspecified only match keys that do the same.
type Holdability int

const (
	// HoldOverCommit keeps the cursor open when the transaction commits.
	HoldOverCommit Holdability = iota + 1
	// CloseAtCommit closes the cursor when the transaction commits.
	CloseAtCommit
)

func (h Holdability) String() string {
	switch h {
	case HoldOverCommit:
		return "hold_over_commit"
	case CloseAtCommit:
		return "close_at_commit"
	default:
		return "unknown"
	}
}

// GeneratedKeys controls whether auto-generated keys should be made
// retrievable after execution. The zero value means the option was not
// requested at all, which is distinct from explicitly declining it.
type GeneratedKeys int

const (
	// ReturnGeneratedKeys makes auto-generated keys retrievable.
	ReturnGeneratedKeys GeneratedKeys = iota + 1
	// NoGeneratedKeys declines retrieval of auto-generated keys.
	NoGeneratedKeys
)

func (g GeneratedKeys) String() string {
	switch g {
	case ReturnGeneratedKeys:
		return "return_generated_keys"
	case NoGeneratedKeys:
		return "no_generated_keys"
	default:
		return "unknown"
	}
}

// Key is the immutable identity of a prepared statement: its SQL text plus
// every driver-level execution option that changes what preparing that text
// produces. Statements with identical SQL but different options must not
// share a cached handle, so all fields participate in equality.
//
// The zero Key is valid and identifies an empty statement with all options
// at their defaults. Construct keys with NewKey and its variants.
type Key struct {
	sql           string
	cursor        CursorType
	concurrency   Concurrency
	holdability   Holdability
	generatedKeys GeneratedKeys
	columnIndexes []int
	columnNames   []string
}

// NewKey returns a key for sql with every execution option at its default.
func NewKey(sql string) Key {
	return Key{sql: sql}
}

// NewKeyWithGeneratedKeys returns a key for sql prepared with an explicit
// auto-generated-keys mode.
func NewKeyWithGeneratedKeys(sql string, mode GeneratedKeys) Key {
	return Key{sql: sql, generatedKeys: mode}
}

// NewKeyWithCursor returns a key for sql prepared with the given cursor
// type and concurrency.
func NewKeyWithCursor(sql string, cursor CursorType, concurrency Concurrency) Key {
	return Key{sql: sql, cursor: cursor, concurrency: concurrency}
}

// NewKeyWithHoldability returns a key for sql prepared with the given
// cursor type, concurrency and cursor holdability.
func NewKeyWithHoldability(sql string, cursor CursorType, concurrency Concurrency, holdability Holdability) Key {
	return Key{sql: sql, cursor: cursor, concurrency: concurrency, holdability: holdability}
}

// NewKeyWithColumnIndexes returns a key for sql prepared to report the
// generated values of the columns at the given indexes. The slice is
// copied; later mutation of the argument does not affect the key.
func NewKeyWithColumnIndexes(sql string, indexes []int) Key {
	return Key{sql: sql, columnIndexes: slices.Clone(indexes)}
}

// NewKeyWithColumnNames returns a key for sql prepared to report the
// generated values of the named columns. The slice is copied; later
// mutation of the argument does not affect the key.
func NewKeyWithColumnNames(sql string, names []string) Key {
	return Key{sql: sql, columnNames: slices.Clone(names)}
}

// SQL returns the statement text the key was built from.
func (k Key) SQL() string {
	return k.sql
}

// Equal reports whether two keys identify the same prepared statement.
// Every field participates: optional fields match only when both keys set
// them (or both leave them unset), and column sequences are compared
// element-wise in order.
func (k Key) Equal(o Key) bool {
	return k.sql == o.sql &&
		k.cursor == o.cursor &&
		k.concurrency == o.concurrency &&
		k.holdability == o.holdability &&
		k.generatedKeys == o.generatedKeys &&
		(k.columnIndexes == nil) == (o.columnIndexes == nil) &&
		slices.Equal(k.columnIndexes, o.columnIndexes) &&
		(k.columnNames == nil) == (o.columnNames == nil) &&
		slices.Equal(k.columnNames, o.columnNames)
}

// String renders the key for logs: the SQL text followed by whichever
// options deviate from the defaults.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.sql)
	if k.cursor != ForwardOnly {
		b.WriteString(" cursor=")
		b.WriteString(k.cursor.String())
	}
	if k.concurrency != ReadOnly {
		b.WriteString(" concurrency=")
		b.WriteString(k.concurrency.String())
	}
	if k.holdability != 0 {
		b.WriteString(" holdability=")
		b.WriteString(k.holdability.String())
	}
	if k.generatedKeys != 0 {
		b.WriteString(" generated_keys=")
		b.WriteString(k.generatedKeys.String())
	}
	if k.columnIndexes != nil {
		b.WriteString(" column_indexes=")
		for i, idx := range k.columnIndexes {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(idx))
		}
	}
	if k.columnNames != nil {
		b.WriteString(" column_names=")
		b.WriteString(strings.Join(k.columnNames, ","))
	}
	return b.String()
}
