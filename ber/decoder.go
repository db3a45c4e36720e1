package ber

//go:generate mockgen -source=decoder.go -destination=bermock/mock_decoder.go -package=bermock

// Decoder is the BER primitive contract the upper SNMP decoding layers are
// built against (spec §4.1's "BER Primitive Layer"). Production code always
// uses Default; tests substitute a generated mock (see ber/bermock) to
// exercise error-propagation paths in the layers above without needing a
// handcrafted malformed byte sequence for every failure branch.
type Decoder interface {
	// Header decodes one identifier+length header from input, returning
	// the header and the bytes that follow it.
	Header(input []byte) (Header, []byte, error)
	// Any decodes one full TLV and returns the remaining bytes.
	Any(input []byte) (rest []byte, value Any, err error)
	// Sequence decodes a UNIVERSAL SEQUENCE header, returning its content
	// slice and the bytes following the whole TLV.
	Sequence(input []byte) (body []byte, rest []byte, err error)
	// Int32 decodes an INTEGER narrowed to int32.
	Int32(input []byte) (rest []byte, value int32, err error)
	// Uint32 decodes an INTEGER narrowed to uint32.
	Uint32(input []byte) (rest []byte, value uint32, err error)
	// Uint64 decodes an INTEGER narrowed to uint64.
	Uint64(input []byte) (rest []byte, value uint64, err error)
	// OctetString decodes a UNIVERSAL OCTET STRING, borrowing its content.
	OctetString(input []byte) (rest []byte, content []byte, err error)
	// OID decodes a UNIVERSAL OBJECT IDENTIFIER into its arc sequence.
	OID(input []byte) (rest []byte, arcs []uint32, err error)
	// BitString decodes a UNIVERSAL BIT STRING.
	BitString(input []byte) (rest []byte, unusedBits byte, bits []byte, err error)
	// Null decodes a UNIVERSAL NULL, failing on non-empty content.
	Null(input []byte) (rest []byte, err error)
}

type defaultDecoder struct{}

// Default is the production ber.Decoder, backed by this package's own
// definite-length-only primitive decoders.
var Default Decoder = defaultDecoder{}

func (defaultDecoder) Header(input []byte) (Header, []byte, error) { return ReadHeader(input) }
func (defaultDecoder) Any(input []byte) ([]byte, Any, error)        { return ReadAny(input) }
func (defaultDecoder) Sequence(input []byte) ([]byte, []byte, error) {
	return ReadSequence(input)
}
func (defaultDecoder) Int32(input []byte) ([]byte, int32, error)   { return ReadInt32(input) }
func (defaultDecoder) Uint32(input []byte) ([]byte, uint32, error) { return ReadUint32(input) }
func (defaultDecoder) Uint64(input []byte) ([]byte, uint64, error) { return ReadUint64(input) }
func (defaultDecoder) OctetString(input []byte) ([]byte, []byte, error) {
	return ReadOctetString(input)
}
func (defaultDecoder) OID(input []byte) ([]byte, []uint32, error) { return ReadOID(input) }
func (defaultDecoder) BitString(input []byte) ([]byte, byte, []byte, error) {
	return ReadBitString(input)
}
func (defaultDecoder) Null(input []byte) ([]byte, error) { return ReadNull(input) }
