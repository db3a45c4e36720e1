package snmpdecode

import (
	"fmt"

	"github.com/rusticata-go/snmpdecode/ber"
)

// MessageVersion discriminates the SnmpGenericMessage sum type by the
// version field peeked from the outer SEQUENCE.
type MessageVersion uint8

const (
	MessageV1 MessageVersion = iota
	MessageV2c
	MessageV3
)

func (v MessageVersion) String() string {
	switch v {
	case MessageV1:
		return "v1"
	case MessageV2c:
		return "v2c"
	case MessageV3:
		return "v3"
	default:
		return fmt.Sprintf("MessageVersion(%d)", uint8(v))
	}
}

// SnmpGenericMessage is the result of ParseSnmpGenericMessage: whichever
// one of the three message shapes the peeked version field selected.
type SnmpGenericMessage struct {
	Version MessageVersion
	V1      SnmpMessage
	V2c     SnmpMessage
	V3      SnmpV3Message
}

// ParseSnmpGenericMessage decodes a message of unknown SNMP version. It
// peeks the version field of the outer SEQUENCE without consuming it, then
// redispatches the full input to ParseSnmpV1, ParseSnmpV2c, or ParseSnmpV3
// (spec §4.7). Any version other than 0, 1, or 3 is ErrInvalidVersion.
func ParseSnmpGenericMessage(input []byte) ([]byte, SnmpGenericMessage, error) {
	dec := ber.Default
	body, _, err := dec.Sequence(input)
	if err != nil {
		return nil, SnmpGenericMessage{}, wrapErr(ErrInvalidMessage, "not a SEQUENCE", err)
	}
	_, version, err := dec.Uint32(body)
	if err != nil {
		return nil, SnmpGenericMessage{}, wrapErr(ErrInvalidVersion, "version", err)
	}

	switch version {
	case 0:
		rest, msg, err := ParseSnmpV1(input)
		if err != nil {
			return nil, SnmpGenericMessage{}, err
		}
		return rest, SnmpGenericMessage{Version: MessageV1, V1: msg}, nil
	case 1:
		rest, msg, err := ParseSnmpV2c(input)
		if err != nil {
			return nil, SnmpGenericMessage{}, err
		}
		return rest, SnmpGenericMessage{Version: MessageV2c, V2c: msg}, nil
	case 3:
		rest, msg, err := ParseSnmpV3(input)
		if err != nil {
			return nil, SnmpGenericMessage{}, err
		}
		return rest, SnmpGenericMessage{Version: MessageV3, V3: msg}, nil
	default:
		return nil, SnmpGenericMessage{}, newErr(ErrInvalidVersion, fmt.Sprintf("unsupported SNMP version %d", version))
	}
}
