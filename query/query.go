// Package query models ordered URL query parameters.
package query

import (
	"slices"
	"strings"

	"urllib/percent"
)

// Pair is one key/value parameter in its decoded, logical form.
type Pair struct {
	Key   string
	Value string
}

// Query is an ordered list of parameters. Keys may repeat; insertion order
// is kept for serialization and equality. Encoding happens at construction,
// so a Query always carries its wire form next to the logical pairs.
type Query struct {
	pairs   []Pair
	encoded []Pair
}

func Empty() Query { return Query{} }

// Create builds a Query from pairs, keeping their order.
func Create(pairs ...Pair) Query {
	q := Query{
		pairs:   make([]Pair, len(pairs)),
		encoded: make([]Pair, len(pairs)),
	}
	copy(q.pairs, pairs)
	for idx, pair := range pairs {
		q.encoded[idx] = encodePair(pair)
	}
	return q
}

// Of is the single-pair convenience form of Create.
func Of(key, value string) Query { return Create(Pair{Key: key, Value: value}) }

func encodePair(pair Pair) Pair {
	return Pair{
		Key:   percent.Encode(pair.Key, percent.QueryComponent),
		Value: percent.Encode(pair.Value, percent.QueryComponent),
	}
}

// Append returns a new Query with the pair added; q stays untouched.
func (q Query) Append(key, value string) Query {
	pair := Pair{Key: key, Value: value}

	out := Query{
		pairs:   make([]Pair, 0, len(q.pairs)+1),
		encoded: make([]Pair, 0, len(q.encoded)+1),
	}
	out.pairs = append(append(out.pairs, q.pairs...), pair)
	out.encoded = append(append(out.encoded, q.encoded...), encodePair(pair))
	return out
}

func (q Query) IsEmpty() bool { return len(q.pairs) == 0 }

// Pairs returns a copy of the logical pairs in insertion order.
func (q Query) Pairs() []Pair {
	out := make([]Pair, len(q.pairs))
	copy(out, q.pairs)
	return out
}

// Get returns the value of the first pair whose key matches.
func (q Query) Get(key string) (string, bool) {
	for _, pair := range q.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// String returns the wire form: encoded pairs joined as "key=value" with
// '&', in insertion order. The empty query yields "".
func (q Query) String() string {
	if q.IsEmpty() {
		return ""
	}

	b := new(strings.Builder)
	for idx, pair := range q.encoded {
		if idx > 0 {
			b.WriteByte('&')
		}
		b.WriteString(pair.Key)
		b.WriteByte('=')
		b.WriteString(pair.Value)
	}
	return b.String()
}

// Equal compares queries over their logical pairs, order included.
func (q Query) Equal(o Query) bool { return slices.Equal(q.pairs, o.pairs) }
