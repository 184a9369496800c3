package tactic

import (
	"fmt"
	"sort"
)

// Symbol table for grammar fragments. Every tactic owns one table, holding
// the non-terminals the compiler allocated for its pattern.

// --- Tags ------------------------------------------------------------------

// Tag is the entry type of symbol tables. It may be a little surprising this
// type is not called 'Symbol', but grammars consist of symbols, too. Tags
// describe which pattern node a grammar symbol has been created for.
type Tag struct {
	name  string
	Kind  TagKind
	UData interface{} // user data, e.g. the name of a reference
}

// TagKind tells which kind of pattern node a tag has been created for.
type TagKind int8

// Kinds of tags.
const (
	TextTag TagKind = iota
	ReferenceTag
	IterationTag
	EitherTag
	SequenceTag
)

func (k TagKind) String() string {
	switch k {
	case TextTag:
		return "text"
	case ReferenceTag:
		return "ref"
	case IterationTag:
		return "iteration"
	case EitherTag:
		return "either"
	case SequenceTag:
		return "sequence"
	}
	return "?"
}

// Name gets the tag's name, i.e. the name of the grammar symbol.
func (t *Tag) Name() string {
	return t.name
}

// String is a debug Stringer for tags.
func (t *Tag) String() string {
	if t.UData != nil {
		return fmt.Sprintf("<tag '%s':%s %v>", t.name, t.Kind, t.UData)
	}
	return fmt.Sprintf("<tag '%s':%s>", t.name, t.Kind)
}

// === Symbol Tables =========================================================

// SymbolTable stores tags (map-like semantics). New tags are named from a
// prefix and a counter, making names deterministic.
type SymbolTable struct {
	prefix  string
	counter int
	Table   map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable(prefix string) *SymbolTable {
	return &SymbolTable{
		prefix: prefix,
		Table:  make(map[string]*Tag),
	}
}

// DefineTag creates a new tag of kind k with the next free name.
func (st *SymbolTable) DefineTag(k TagKind, udata interface{}) *Tag {
	name := fmt.Sprintf("%s#%d", st.prefix, st.counter)
	st.counter++
	tag := &Tag{name: name, Kind: k, UData: udata}
	st.Table[name] = tag
	return tag
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
func (st *SymbolTable) ResolveTag(name string) *Tag {
	return st.Table[name]
}

// Size counts the tags in a symbol table.
func (st *SymbolTable) Size() int {
	return len(st.Table)
}

// Each iterates over each tag in the table in order of definition.
func (st *SymbolTable) Each(mapper func(string, *Tag)) {
	names := make([]string, 0, len(st.Table))
	for name := range st.Table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return st.serial(names[i]) < st.serial(names[j])
	})
	for _, name := range names {
		mapper(name, st.Table[name])
	}
}

func (st *SymbolTable) serial(name string) int {
	var n int
	fmt.Sscanf(name[len(st.prefix)+1:], "%d", &n)
	return n
}
