package corpus

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/couchbase/vellum"
)

// Vocab is the token vocabulary of a corpus, held as an FST mapping
// each distinct token to its occurrence count. It lets the benchmark
// harness pick patterns that are known to occur (or not occur) in a
// real text.
type Vocab struct {
	fst       *vellum.FST
	numTokens int
}

// BuildVocab tokenizes text and builds its vocabulary.
func BuildVocab(text string) (*Vocab, error) {
	counts := make(map[string]uint64)
	for _, token := range tokenize(text) {
		counts[token]++
	}

	// vellum requires insertion in lexical order.
	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create FST builder: %w", err)
	}
	for _, token := range tokens {
		if err := builder.Insert([]byte(token), counts[token]); err != nil {
			return nil, fmt.Errorf("failed to insert token %q: %w", token, err)
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to load FST: %w", err)
	}

	return &Vocab{fst: fst, numTokens: len(tokens)}, nil
}

// Len returns the number of distinct tokens.
func (v *Vocab) Len() int { return v.numTokens }

// Lookup returns the occurrence count of a token.
func (v *Vocab) Lookup(token string) (uint64, bool) {
	count, exists, err := v.fst.Get([]byte(strings.ToLower(token)))
	if err != nil || !exists {
		return 0, false
	}
	return count, true
}

// Tokens returns up to limit tokens in lexical order, with their
// counts. limit <= 0 means all tokens.
func (v *Vocab) Tokens(limit int) ([]string, []uint64, error) {
	var tokens []string
	var counts []uint64

	iter, err := v.fst.Iterator(nil, nil)
	for err == nil {
		if limit > 0 && len(tokens) == limit {
			break
		}
		key, count := iter.Current()
		tokens = append(tokens, string(key))
		counts = append(counts, count)
		err = iter.Next()
	}
	if err != nil && err != vellum.ErrIteratorDone {
		return nil, nil, err
	}

	return tokens, counts, nil
}

// tokenize lowercases text and splits it into alphanumeric runs.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
