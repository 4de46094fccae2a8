package util

// util.RamUsageEstimator.java

/* An object whose RAM usage can be computed. */
type Accountable interface {
	// Return the memory usage of this object in bytes. Negative values are illegal.
	RamBytesUsed() int64
}

// 64-bit Go runtime
const (
	NUM_BYTES_INT     = 8
	NUM_BYTES_POINTER = 8

	// Pointer, length and capacity of a slice header.
	NUM_BYTES_SLICE_HEADER = 24
	// Pointer and length of a string header.
	NUM_BYTES_STRING_HEADER = 16

	// Heap objects are rounded up to a multiple of this.
	NUM_BYTES_OBJECT_ALIGNMENT = 8
)

/* Aligns an object size to be the next multiple of NUM_BYTES_OBJECT_ALIGNMENT */
func AlignObjectSize(size int64) int64 {
	size += NUM_BYTES_OBJECT_ALIGNMENT - 1
	return size - size%NUM_BYTES_OBJECT_ALIGNMENT
}

/* Returns the size in bytes of a slice, header included. */
func SizeOf(arr interface{}) int64 {
	switch v := arr.(type) {
	case []byte:
		return NUM_BYTES_SLICE_HEADER + AlignObjectSize(int64(cap(v)))
	case []int:
		return NUM_BYTES_SLICE_HEADER + AlignObjectSize(NUM_BYTES_INT*int64(cap(v)))
	case [][]byte:
		size := NUM_BYTES_SLICE_HEADER + AlignObjectSize(NUM_BYTES_SLICE_HEADER*int64(cap(v)))
		for _, b := range v {
			if b != nil {
				size += AlignObjectSize(int64(cap(b)))
			}
		}
		return size
	case string:
		return NUM_BYTES_STRING_HEADER + AlignObjectSize(int64(len(v)))
	}
	panic("not supported yet")
}
