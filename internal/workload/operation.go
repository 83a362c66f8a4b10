// Package workload generates random test workloads for an external Fenwick
// tree (binary indexed tree) implementation.
//
// A workload is a text file: the first line is "<size> <operations>", and
// each following line is one operation, either "q <index>" (prefix query up
// to index) or "a <index> <value>" (add value at index). The file is replayed
// by a separate Fenwick tree program; this package only produces it.
package workload

import "fmt"

// Wire labels for operation lines. Query and add are the only labels this
// package emits. The consuming side of the format also recognizes "d"
// (delete) mutation lines, but no generated workload ever contains one.
const (
	LabelQuery  = "q"
	LabelAdd    = "a"
	LabelDelete = "d"
)

// Kind discriminates the operation variants of a workload.
type Kind uint8

const (
	// KindQuery is a prefix-sum query up to an index.
	KindQuery Kind = iota
	// KindAdd is a point update adding a value at an index.
	KindAdd
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindAdd:
		return "add"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Operation is a single line of a generated workload. Index is in
// [0, size-1]. Value is meaningful only when Kind is KindAdd; it is zero for
// queries.
type Operation struct {
	Kind  Kind
	Index int
	Value int
}
