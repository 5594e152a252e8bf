// Package constraints declares type constraints shared by generic helpers.
package constraints

// Byteseq is any raw URI text: a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
