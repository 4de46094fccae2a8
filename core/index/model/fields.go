package model

/* Flex API for access to fields and terms. */
type Fields interface {
	// Returns field names in ascending order.
	Names() []string
	// Get the Terms for this field. Returns nil if the field does not
	// exist.
	Terms(field string) Terms
	// Returns the number of fields or -1 if the number of distinct
	// field names is unknown.
	Size() int
}
