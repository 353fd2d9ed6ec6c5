// Package huffman implements Huffman coding of byte sequences.  Encoding
// counts symbol frequencies, builds a prefix-code tree, and concatenates
// per-symbol codes into a bit string; decoding walks the same tree back to
// the original bytes.
//
// Trees and code tables are immutable once built, so they may be shared
// freely between goroutines.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package huffman
