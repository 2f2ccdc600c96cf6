// Package hashing implements the storage-map key hashers named by
// runtime metadata. Metadata itself only tags entries with a hasher
// name; these are the actual functions a client needs to turn a key
// into its position in the underlying key-value store.
package hashing

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"

	"polkameta.dev/framemeta/v14"
)

// Blake2_128 returns the 16-byte Blake2b hash of data.
func Blake2_128(data []byte) []byte {
	h, err := blake2b.New(16, nil)
	if err != nil {
		// blake2b.New only fails for invalid key/size arguments.
		panic(err)
	}
	h.Write(data)
	return h.Sum(nil)
}

// Blake2_256 returns the 32-byte Blake2b hash of data.
func Blake2_256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// Blake2_128Concat returns Blake2_128(data) followed by data itself,
// making the key recoverable from the stored form.
func Blake2_128Concat(data []byte) []byte {
	return append(Blake2_128(data), data...)
}

// Twox64Concat returns the little-endian 8-byte xxHash64 of data
// followed by data itself.
func Twox64Concat(data []byte) []byte {
	return append(twox(data, 1), data...)
}

// Twox128 returns the concatenation of two seeded xxHash64 rounds,
// little-endian, 16 bytes.
func Twox128(data []byte) []byte {
	return twox(data, 2)
}

// Twox256 returns the concatenation of four seeded xxHash64 rounds,
// little-endian, 32 bytes.
func Twox256(data []byte) []byte {
	return twox(data, 4)
}

// Identity returns data unchanged. Used for keys that are already
// uniformly distributed.
func Identity(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// twox concatenates rounds xxHash64 digests of data, seeded 0..rounds-1,
// each encoded little-endian.
func twox(data []byte, rounds int) []byte {
	out := make([]byte, 0, rounds*8)
	for seed := 0; seed < rounds; seed++ {
		d := xxhash.NewWithSeed(uint64(seed))
		d.Write(data)
		v := d.Sum64()
		for i := 0; i < 8; i++ {
			out = append(out, byte(v>>(8*i)))
		}
	}
	return out
}

// Apply hashes key with the named hasher.
func Apply(hasher v14.StorageHasher, key []byte) ([]byte, error) {
	switch hasher {
	case v14.Blake2_128:
		return Blake2_128(key), nil
	case v14.Blake2_256:
		return Blake2_256(key), nil
	case v14.Blake2_128Concat:
		return Blake2_128Concat(key), nil
	case v14.Twox128:
		return Twox128(key), nil
	case v14.Twox256:
		return Twox256(key), nil
	case v14.Twox64Concat:
		return Twox64Concat(key), nil
	case v14.Identity:
		return Identity(key), nil
	default:
		return nil, fmt.Errorf("unknown storage hasher %q", hasher)
	}
}

// PrefixFor returns the storage key prefix of one entry:
// twox128(prefix) ++ twox128(entry).
func PrefixFor(prefix, entry string) []byte {
	return append(Twox128([]byte(prefix)), Twox128([]byte(entry))...)
}
