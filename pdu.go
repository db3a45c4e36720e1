package snmpdecode

import (
	"fmt"

	"github.com/rusticata-go/snmpdecode/ber"
)

// PduShapeKind discriminates the SnmpPdu sum type (spec §4.4).
type PduShapeKind uint8

const (
	PduGeneric PduShapeKind = iota
	PduBulk
	PduTrapV1
)

// SnmpGenericPdu is the body shape shared by GetRequest, GetNextRequest,
// Response, SetRequest, InformRequest, TrapV2, and Report.
type SnmpGenericPdu struct {
	PduType  PduType
	ReqID    uint32
	Err      ErrorStatus
	ErrIndex uint32
	Var      []SnmpVariable
}

// SnmpBulkPdu is the GetBulkRequest body shape.
type SnmpBulkPdu struct {
	ReqID          uint32
	NonRepeaters   uint32
	MaxRepetitions uint32
	Var            []SnmpVariable
}

// SnmpTrapPdu is the SNMPv1 Trap-PDU body shape.
type SnmpTrapPdu struct {
	Enterprise   OID
	AgentAddr    [4]byte
	GenericTrap  TrapType
	SpecificTrap uint32
	Timestamp    uint32
	Var          []SnmpVariable
}

// SnmpPdu is the decoded PDU, tagged by which of the three shapes the
// framing context tag selected.
type SnmpPdu struct {
	Kind    PduShapeKind
	Generic SnmpGenericPdu
	Bulk    SnmpBulkPdu
	TrapV1  SnmpTrapPdu
}

// pduShapeForTag maps a framing context tag to the shape it decodes as
// (spec §4.4's table, one entry per tag); which tags an envelope permits is
// held separately in allowedTagsV1 and allowedTagsV2cOrV3.
var pduShapeForTag = map[uint32]PduShapeKind{
	0: PduGeneric, // GetRequest
	1: PduGeneric, // GetNextRequest
	2: PduGeneric, // Response
	3: PduGeneric, // SetRequest
	4: PduTrapV1,  // Trap-v1
	5: PduBulk,    // GetBulkRequest
	6: PduGeneric, // InformRequest
	7: PduGeneric, // TrapV2
	8: PduGeneric, // Report
}

// allowedTagsV1 is the set of context tags a v1 envelope may carry.
var allowedTagsV1 = map[uint32]bool{0: true, 1: true, 2: true, 3: true, 4: true}

// allowedTagsV2cOrV3 is the set of context tags a v2c envelope, or a v3
// ScopedPdu's inner PDU, may carry.
var allowedTagsV2cOrV3 = map[uint32]bool{
	0: true, 1: true, 2: true, 3: true, 4: true,
	5: true, 6: true, 7: true, 8: true,
}

// decodePDU reads the IMPLICIT context-specific tag framing a PDU,
// validates it against allowed, and dispatches to the matching shape
// decoder. input must start at the PDU's own tag octet.
func decodePDU(input []byte, dec ber.Decoder, allowed map[uint32]bool) ([]byte, SnmpPdu, error) {
	rest, any, err := dec.Any(input)
	if err != nil {
		return nil, SnmpPdu{}, wrapErr(ErrInvalidPdu, "PDU framing", err)
	}
	if any.Header.Class != ber.ClassContextSpecific {
		return nil, SnmpPdu{}, newErr(ErrInvalidPduType, fmt.Sprintf("PDU tag class %d is not context-specific", any.Header.Class))
	}
	if !allowed[any.Header.Tag] {
		return nil, SnmpPdu{}, newErr(ErrInvalidPduType, fmt.Sprintf("PDU tag %d not permitted for this envelope", any.Header.Tag))
	}
	shape, ok := pduShapeForTag[any.Header.Tag]
	if !ok {
		return nil, SnmpPdu{}, newErr(ErrInvalidPduType, fmt.Sprintf("unknown PDU tag %d", any.Header.Tag))
	}
	pduType := PduType(any.Header.Tag)

	switch shape {
	case PduGeneric:
		g, err := decodeGenericPdu(pduType, any.Content, dec)
		if err != nil {
			return nil, SnmpPdu{}, err
		}
		return rest, SnmpPdu{Kind: PduGeneric, Generic: g}, nil
	case PduBulk:
		b, err := decodeBulkPdu(any.Content, dec)
		if err != nil {
			return nil, SnmpPdu{}, err
		}
		return rest, SnmpPdu{Kind: PduBulk, Bulk: b}, nil
	case PduTrapV1:
		tr, err := decodeTrapV1Pdu(any.Content, dec)
		if err != nil {
			return nil, SnmpPdu{}, err
		}
		return rest, SnmpPdu{Kind: PduTrapV1, TrapV1: tr}, nil
	default:
		return nil, SnmpPdu{}, newErr(ErrInvalidPduType, "unreachable PDU shape")
	}
}

func decodeVarBindListSequence(input []byte, dec ber.Decoder) ([]SnmpVariable, error) {
	body, rest, err := dec.Sequence(input)
	if err != nil {
		return nil, wrapErr(ErrInvalidPdu, "VarBindList is not a SEQUENCE", err)
	}
	if len(rest) != 0 {
		return nil, newErr(ErrInvalidPdu, "trailing bytes after VarBindList")
	}
	return decodeVarBindList(body, dec)
}

func decodeGenericPdu(pduType PduType, body []byte, dec ber.Decoder) (SnmpGenericPdu, error) {
	rest, reqID, err := dec.Uint32(body)
	if err != nil {
		return SnmpGenericPdu{}, wrapErr(ErrInvalidPdu, "request-id", err)
	}
	rest, errStatus, err := dec.Uint32(rest)
	if err != nil {
		return SnmpGenericPdu{}, wrapErr(ErrInvalidPdu, "error-status", err)
	}
	rest, errIndex, err := dec.Uint32(rest)
	if err != nil {
		return SnmpGenericPdu{}, wrapErr(ErrInvalidPdu, "error-index", err)
	}
	vars, err := decodeVarBindListSequence(rest, dec)
	if err != nil {
		return SnmpGenericPdu{}, err
	}
	return SnmpGenericPdu{
		PduType:  pduType,
		ReqID:    reqID,
		Err:      ErrorStatus(errStatus),
		ErrIndex: errIndex,
		Var:      vars,
	}, nil
}

func decodeBulkPdu(body []byte, dec ber.Decoder) (SnmpBulkPdu, error) {
	rest, reqID, err := dec.Uint32(body)
	if err != nil {
		return SnmpBulkPdu{}, wrapErr(ErrInvalidPdu, "request-id", err)
	}
	rest, nonRep, err := dec.Uint32(rest)
	if err != nil {
		return SnmpBulkPdu{}, wrapErr(ErrInvalidPdu, "non-repeaters", err)
	}
	rest, maxRep, err := dec.Uint32(rest)
	if err != nil {
		return SnmpBulkPdu{}, wrapErr(ErrInvalidPdu, "max-repetitions", err)
	}
	vars, err := decodeVarBindListSequence(rest, dec)
	if err != nil {
		return SnmpBulkPdu{}, err
	}
	return SnmpBulkPdu{ReqID: reqID, NonRepeaters: nonRep, MaxRepetitions: maxRep, Var: vars}, nil
}

// decodeNetworkAddress reads a [APPLICATION 0] IMPLICIT OCTET STRING (SIZE
// 4), the IPv4 encoding SNMP calls NetworkAddress.
func decodeNetworkAddress(input []byte, dec ber.Decoder) ([]byte, [4]byte, error) {
	rest, any, err := dec.Any(input)
	if err != nil {
		return nil, [4]byte{}, wrapErr(ErrInvalidPdu, "agent-addr", err)
	}
	if any.Header.Class != ber.ClassApplication || any.Header.Tag != 0 {
		return nil, [4]byte{}, newErr(ErrInvalidPdu, "agent-addr is not [APPLICATION 0]")
	}
	if len(any.Content) != 4 {
		return nil, [4]byte{}, newErr(ErrInvalidPdu, "agent-addr must be exactly 4 octets")
	}
	var addr [4]byte
	copy(addr[:], any.Content)
	return rest, addr, nil
}

// decodeTimeTicksTag reads an [APPLICATION 3] IMPLICIT INTEGER, the
// encoding the v1 Trap-PDU's timestamp field uses.
func decodeTimeTicksTag(input []byte, dec ber.Decoder) ([]byte, uint32, error) {
	rest, any, err := dec.Any(input)
	if err != nil {
		return nil, 0, wrapErr(ErrInvalidPdu, "timestamp", err)
	}
	if any.Header.Class != ber.ClassApplication || any.Header.Tag != 3 {
		return nil, 0, newErr(ErrInvalidPdu, "timestamp is not [APPLICATION 3]")
	}
	v, err := ber.Uint32FromContent(any.Content)
	if err != nil {
		return nil, 0, wrapErr(ErrInvalidPdu, "timestamp", err)
	}
	return rest, v, nil
}

func decodeTrapV1Pdu(body []byte, dec ber.Decoder) (SnmpTrapPdu, error) {
	rest, arcs, err := dec.OID(body)
	if err != nil {
		return SnmpTrapPdu{}, wrapErr(ErrInvalidPdu, "enterprise", err)
	}
	rest, agentAddr, err := decodeNetworkAddress(rest, dec)
	if err != nil {
		return SnmpTrapPdu{}, err
	}
	rest, genericTrap, err := dec.Int32(rest)
	if err != nil {
		return SnmpTrapPdu{}, wrapErr(ErrInvalidPdu, "generic-trap", err)
	}
	if genericTrap < 0 || genericTrap > 255 {
		return SnmpTrapPdu{}, newErr(ErrInvalidPdu, "generic-trap out of range for u8")
	}
	rest, specificTrap, err := dec.Uint32(rest)
	if err != nil {
		return SnmpTrapPdu{}, wrapErr(ErrInvalidPdu, "specific-trap", err)
	}
	rest, timestamp, err := decodeTimeTicksTag(rest, dec)
	if err != nil {
		return SnmpTrapPdu{}, err
	}
	vars, err := decodeVarBindListSequence(rest, dec)
	if err != nil {
		return SnmpTrapPdu{}, err
	}
	return SnmpTrapPdu{
		Enterprise:   OID(arcs),
		AgentAddr:    agentAddr,
		GenericTrap:  TrapType(genericTrap),
		SpecificTrap: specificTrap,
		Timestamp:    timestamp,
		Var:          vars,
	}, nil
}
