package structure

import (
	"hash/fnv"
	"math"
)

// BloomFilter answers "definitely absent" / "maybe present" for
// customer ids before the engine bothers descending the index. A
// "maybe" still goes to the tree; only the definite miss is saved.
type BloomFilter struct {
	bitset []bool
	k      uint
	m      uint
	count  uint
}

func NewBloomFilter(n uint, p float64) *BloomFilter {
	// m = - (n * ln(p)) / (ln(2)^2)
	// k = (m / n) * ln(2)
	m := uint(math.Ceil(float64(n) * math.Log(p) / math.Log(1.0/math.Pow(2.0, math.Log(2.0)))))
	k := uint(math.Ceil((float64(m) / float64(n)) * math.Log(2.0)))

	return &BloomFilter{
		bitset: make([]bool, m),
		k:      k,
		m:      m,
		count:  0,
	}
}

func (bf *BloomFilter) Add(key string) {
	h1, h2 := hashPair(key)
	for i := uint(0); i < bf.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(bf.m)
		bf.bitset[pos] = true
	}
	bf.count++
}

func (bf *BloomFilter) Contains(key string) bool {
	h1, h2 := hashPair(key)
	for i := uint(0); i < bf.k; i++ {
		pos := (h1 + uint32(i)*h2) % uint32(bf.m)
		if !bf.bitset[pos] {
			return false
		}
	}
	return true
}

// hashPair derives the double-hashing pair from one 64-bit fnv sum.
// The second hash is forced odd so the probe stride never collapses.
func hashPair(key string) (uint32, uint32) {
	h := fnv.New64a()
	h.Write([]byte(key))
	sum := h.Sum64()
	return uint32(sum), uint32(sum>>32) | 1
}

func (bf *BloomFilter) Stats() map[string]interface{} {
	return map[string]interface{}{
		"bloom_bits_size": bf.m,
		"bloom_hashes":    bf.k,
		"bloom_count":     bf.count,
	}
}
