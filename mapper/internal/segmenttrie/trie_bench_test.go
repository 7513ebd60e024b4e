/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"math/rand"
	"strings"
	"testing"
)

const labelChars = "abcdefghijklmnopqrstuvwxyz0123456789-"

// genLabel returns a valid DNS-style label of length [min, max].
func genLabel(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	var b strings.Builder
	b.WriteByte(byte('a' + rng.Intn(26)))
	for i := 1; i < n; i++ {
		b.WriteByte(labelChars[rng.Intn(len(labelChars))])
	}
	return b.String()
}

// makeDomain builds a dotted domain of the given depth. When wildEvery > 0,
// every wildEvery-th label is "*".
func makeDomain(rng *rand.Rand, depth, wildEvery int) string {
	labels := make([]string, depth)
	for i := range labels {
		if wildEvery > 0 && (i+1)%wildEvery == 0 {
			labels[i] = "*"
			continue
		}
		labels[i] = genLabel(rng, 2, 10)
	}
	return strings.Join(labels, ".")
}

// buildTrie inserts n rules and returns queries that extend each rule by
// two labels, so every query is an LPM hit.
func buildTrie(b *testing.B, n, depth, wildEvery int) (*Trie[int], []string) {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	queries := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p := makeDomain(rng, depth, wildEvery)
		if err := tr.Insert(p, 400+i); err != nil {
			b.Fatalf("insert %q: %v", p, err)
		}
		labels := strings.Split(p, ".")
		for j := range labels {
			if labels[j] == "*" {
				labels[j] = genLabel(rng, 2, 10)
			}
		}
		queries = append(queries, strings.Join(labels, ".")+"."+genLabel(rng, 2, 6)+"."+genLabel(rng, 2, 6))
	}
	return tr, queries
}

func BenchmarkTrieInsert_N128_Depth3(b *testing.B)       { benchInsert(b, 128, 3, 0) }
func BenchmarkTrieInsert_N1024_Depth3(b *testing.B)      { benchInsert(b, 1024, 3, 0) }
func BenchmarkTrieInsert_N1024_Depth4_Wild(b *testing.B) { benchInsert(b, 1024, 4, 3) }

func benchInsert(b *testing.B, n, depth, wildEvery int) {
	rng := rand.New(rand.NewSource(2))
	prefixes := make([]string, n)
	for i := range prefixes {
		prefixes[i] = makeDomain(rng, depth, wildEvery)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New[int]()
		for j, p := range prefixes {
			if err := tr.Insert(p, j); err != nil {
				b.Fatalf("insert: %v", err)
			}
		}
	}
}

func BenchmarkTrieMatch_N16_Depth3(b *testing.B)        { benchMatch(b, 16, 3, 0) }
func BenchmarkTrieMatch_N1024_Depth3(b *testing.B)      { benchMatch(b, 1024, 3, 0) }
func BenchmarkTrieMatch_N1024_Depth4_Wild(b *testing.B) { benchMatch(b, 1024, 4, 3) }

func benchMatch(b *testing.B, n, depth, wildEvery int) {
	tr, queries := buildTrie(b, n, depth, wildEvery)

	// misses
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < n/8+1; i++ {
		queries = append(queries, makeDomain(rng, depth+1, 0))
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sum int
	for i := 0; i < b.N; i++ {
		if v, ok := tr.Match(queries[i%len(queries)]); ok {
			sum += v
		}
	}
	if sum == 42 {
		b.Log("keep")
	}
}

func BenchmarkTrieMatchParallel_N1024_Depth3(b *testing.B) {
	tr, queries := buildTrie(b, 1024, 3, 0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = tr.Match(queries[i%len(queries)])
			i++
		}
	})
}
