package ziv

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// A CodeTable maps symbols to prefix-free bitstrings. No code is a prefix of
// another, which is guaranteed by the merge tree the table is derived from.
type CodeTable map[byte]string

// Frequencies counts the occurrences of every symbol of s.
func Frequencies(s string) map[byte]int {
	freq := make(map[byte]int)
	for i := 0; i < len(s); i++ {
		freq[s[i]]++
	}
	return freq
}

// A mergeNode is a node in the Huffman merge tree. Leaves carry a symbol,
// internal nodes carry the summed frequency of their two children. seq orders
// nodes of equal frequency: leaves in ascending (frequency, symbol) order,
// merged nodes after everything that existed when they were formed. This
// reproduces the ordering of repeatedly re-sorting the candidate list with a
// stable sort after each merge.
type mergeNode struct {
	freq   int
	seq    int
	symbol byte
	left   *mergeNode
	right  *mergeNode
}

type mergeHeap []*mergeNode

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h mergeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(*mergeNode)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	*h = old[:n-1]
	return node
}

// BuildCodeTable derives a prefix-free code table from symbol frequencies.
// Symbols with high frequency receive short codes. The two lowest-frequency
// nodes are merged repeatedly until a single root remains; codes are the
// root-to-leaf paths, '0' for a left edge and '1' for a right edge.
//
// A single distinct symbol is a special case: the merge tree would be a lone
// leaf with an empty path, so the symbol is assigned the code "0".
func BuildCodeTable(frequencies map[byte]int) (CodeTable, error) {
	if len(frequencies) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no symbol frequencies")
	}

	leaves := make([]*mergeNode, 0, len(frequencies))
	for symbol, freq := range frequencies {
		if freq < 1 {
			return nil, errors.Wrapf(ErrInvalidInput, "frequency %d of symbol %q is not positive", freq, symbol)
		}
		leaves = append(leaves, &mergeNode{freq: freq, symbol: symbol})
	}
	sort.Slice(leaves, func(i, j int) bool {
		if leaves[i].freq != leaves[j].freq {
			return leaves[i].freq < leaves[j].freq
		}
		return leaves[i].symbol < leaves[j].symbol
	})
	if len(leaves) == 1 {
		return CodeTable{leaves[0].symbol: "0"}, nil
	}

	h := make(mergeHeap, len(leaves))
	for i, leaf := range leaves {
		leaf.seq = i
		h[i] = leaf
	}
	heap.Init(&h)

	seq := len(leaves)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*mergeNode)
		right := heap.Pop(&h).(*mergeNode)
		heap.Push(&h, &mergeNode{freq: left.freq + right.freq, seq: seq, left: left, right: right})
		seq++
	}
	root := heap.Pop(&h).(*mergeNode)

	table := make(CodeTable, len(frequencies))
	assignCodes(table, root, "")
	return table, nil
}

// assignCodes walks the merge tree depth-first, recording the accumulated
// path bitstring at every leaf.
func assignCodes(table CodeTable, node *mergeNode, path string) {
	if node.left == nil && node.right == nil {
		table[node.symbol] = path
		return
	}
	assignCodes(table, node.left, path+"0")
	assignCodes(table, node.right, path+"1")
}

// Encode translates s symbol by symbol into code table bitstrings.
func (t CodeTable) Encode(s string) ([]string, error) {
	if s == "" {
		return nil, errors.Wrap(ErrInvalidInput, "encode of empty string")
	}
	codes := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		code, ok := t[s[i]]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownSymbol, "symbol %q at offset %d", s[i], i)
		}
		codes[i] = code
	}
	return codes, nil
}

// Decode translates code table bitstrings back into symbols.
func (t CodeTable) Decode(codes []string) (string, error) {
	if len(t) == 0 {
		return "", errors.Wrap(ErrInvalidInput, "decode with empty code table")
	}
	symbols := make(map[string]byte, len(t))
	for symbol, code := range t {
		symbols[code] = symbol
	}

	var s strings.Builder
	s.Grow(len(codes))
	for i, code := range codes {
		symbol, ok := symbols[code]
		if !ok {
			return "", errors.Wrapf(ErrUnknownCode, "code %q at offset %d", code, i)
		}
		s.WriteByte(symbol)
	}
	return s.String(), nil
}
