package snmpdecode

import (
	"strconv"
	"strings"
)

// OID is a decoded Object Identifier, arc by arc.
type OID []uint32

// String renders the OID the way the teacher's oidToString renders its own
// decoded identifiers: a leading dot followed by dot-separated arcs.
func (o OID) String() string {
	var b strings.Builder
	for _, arc := range o {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(arc), 10))
	}
	return b.String()
}

// Equal reports whether two OIDs have identical arcs, in order.
func (o OID) Equal(other OID) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}
