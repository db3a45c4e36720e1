package snmpdecode

import (
	"unicode/utf8"

	"github.com/rusticata-go/snmpdecode/ber"
)

// SnmpMessage is a decoded v1 or v2c message: SEQUENCE { version,
// community, pdu } (spec §4.5).
type SnmpMessage struct {
	Version   uint32
	Community string
	Pdu       SnmpPdu
}

func decodeCommunityMessage(input []byte, dec ber.Decoder, expectedVersion uint32, allowedTags map[uint32]bool) ([]byte, SnmpMessage, error) {
	body, outerRest, err := dec.Sequence(input)
	if err != nil {
		return nil, SnmpMessage{}, wrapErr(ErrInvalidMessage, "not a SEQUENCE", err)
	}

	afterVersion, version, err := dec.Uint32(body)
	if err != nil {
		return nil, SnmpMessage{}, wrapErr(ErrInvalidVersion, "version", err)
	}
	if version != expectedVersion {
		return nil, SnmpMessage{}, newErr(ErrInvalidVersion, "version does not match entry point")
	}

	afterCommunity, communityBytes, err := dec.OctetString(afterVersion)
	if err != nil {
		return nil, SnmpMessage{}, wrapErr(ErrInvalidMessage, "community", err)
	}
	if !utf8.Valid(communityBytes) {
		return nil, SnmpMessage{}, newErr(ErrInvalidMessage, "community is not valid UTF-8")
	}
	community := string(communityBytes)

	afterPdu, pdu, err := decodePDU(afterCommunity, dec, allowedTags)
	if err != nil {
		return nil, SnmpMessage{}, err
	}
	if len(afterPdu) != 0 {
		return nil, SnmpMessage{}, newErr(ErrInvalidMessage, "trailing bytes inside message")
	}

	return outerRest, SnmpMessage{Version: version, Community: community, Pdu: pdu}, nil
}

// ParseSnmpV1 decodes an SNMPv1 message. It requires version == 0.
func ParseSnmpV1(input []byte) ([]byte, SnmpMessage, error) {
	return decodeCommunityMessage(input, ber.Default, 0, allowedTagsV1)
}

// ParseSnmpV2c decodes an SNMPv2c message. It requires version == 1.
func ParseSnmpV2c(input []byte) ([]byte, SnmpMessage, error) {
	return decodeCommunityMessage(input, ber.Default, 1, allowedTagsV2cOrV3)
}
