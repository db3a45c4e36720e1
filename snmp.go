package snmpdecode

import (
	"fmt"

	"github.com/rusticata-go/snmpdecode/ber"
)

// PduType names the context-specific tag that frames a PDU (spec §4.4).
// It is a Stringer the way the teacher's SnmpV3MsgFlags/SnmpV3AuthProtocol
// are named integer types meant for readable %v output.
type PduType uint8

const (
	GetRequest      PduType = 0
	GetNextRequest  PduType = 1
	Response        PduType = 2
	SetRequest      PduType = 3
	TrapV1          PduType = 4
	GetBulkRequest  PduType = 5
	InformRequest   PduType = 6
	TrapV2          PduType = 7
	Report          PduType = 8
)

func (t PduType) String() string {
	switch t {
	case GetRequest:
		return "GetRequest"
	case GetNextRequest:
		return "GetNextRequest"
	case Response:
		return "Response"
	case SetRequest:
		return "SetRequest"
	case TrapV1:
		return "TrapV1"
	case GetBulkRequest:
		return "GetBulkRequest"
	case InformRequest:
		return "InformRequest"
	case TrapV2:
		return "TrapV2"
	case Report:
		return "Report"
	default:
		return fmt.Sprintf("PduType(%d)", uint8(t))
	}
}

// TrapType is the generic-trap code of an SNMPv1 Trap-PDU.
type TrapType uint8

const (
	ColdStart             TrapType = 0
	WarmStart             TrapType = 1
	LinkDown              TrapType = 2
	LinkUp                TrapType = 3
	AuthenticationFailure TrapType = 4
	EgpNeighborLoss       TrapType = 5
	EnterpriseSpecific    TrapType = 6
)

func (t TrapType) String() string {
	switch t {
	case ColdStart:
		return "ColdStart"
	case WarmStart:
		return "WarmStart"
	case LinkDown:
		return "LinkDown"
	case LinkUp:
		return "LinkUp"
	case AuthenticationFailure:
		return "AuthenticationFailure"
	case EgpNeighborLoss:
		return "EgpNeighborLoss"
	case EnterpriseSpecific:
		return "EnterpriseSpecific"
	default:
		return fmt.Sprintf("TrapType(%d)", uint8(t))
	}
}

// ErrorStatus is the error-status field of a generic PDU (RFC 3416 §3).
type ErrorStatus uint32

const (
	NoError             ErrorStatus = 0
	TooBig              ErrorStatus = 1
	NoSuchName          ErrorStatus = 2
	BadValue            ErrorStatus = 3
	ReadOnly            ErrorStatus = 4
	GenErr              ErrorStatus = 5
	NoAccess            ErrorStatus = 6
	WrongType           ErrorStatus = 7
	WrongLength         ErrorStatus = 8
	WrongEncoding       ErrorStatus = 9
	WrongValue          ErrorStatus = 10
	NoCreation          ErrorStatus = 11
	InconsistentValue   ErrorStatus = 12
	ResourceUnavailable ErrorStatus = 13
	CommitFailed        ErrorStatus = 14
	UndoFailed          ErrorStatus = 15
	AuthorizationError  ErrorStatus = 16
	NotWritable         ErrorStatus = 17
	InconsistentName    ErrorStatus = 18
)

func (e ErrorStatus) String() string {
	names := map[ErrorStatus]string{
		NoError: "NoError", TooBig: "TooBig", NoSuchName: "NoSuchName",
		BadValue: "BadValue", ReadOnly: "ReadOnly", GenErr: "GenErr",
		NoAccess: "NoAccess", WrongType: "WrongType", WrongLength: "WrongLength",
		WrongEncoding: "WrongEncoding", WrongValue: "WrongValue", NoCreation: "NoCreation",
		InconsistentValue: "InconsistentValue", ResourceUnavailable: "ResourceUnavailable",
		CommitFailed: "CommitFailed", UndoFailed: "UndoFailed",
		AuthorizationError: "AuthorizationError", NotWritable: "NotWritable",
		InconsistentName: "InconsistentName",
	}
	if n, ok := names[e]; ok {
		return n
	}
	return fmt.Sprintf("ErrorStatus(%d)", uint32(e))
}

// ObjectSyntaxKind discriminates the SMI ObjectSyntax sum type (spec §4.2).
type ObjectSyntaxKind uint8

const (
	SyntaxNumber ObjectSyntaxKind = iota
	SyntaxString
	SyntaxObject
	SyntaxBitString
	SyntaxEmpty
	SyntaxUnknownSimple
	SyntaxIPAddress
	SyntaxCounter32
	SyntaxGauge32
	SyntaxTimeTicks
	SyntaxOpaque
	SyntaxNsapAddress
	SyntaxCounter64
	SyntaxUInteger32
	SyntaxUnknownApplication
)

// ObjectSyntax is the decoded value of one VarBind, tagged by Kind. Only
// the fields relevant to Kind are populated; this mirrors the teacher's
// UsmSecurityParameters, which carries every protocol variant as plain
// fields instead of a discriminated union of Go types, avoiding a
// per-VarBind interface allocation.
type ObjectSyntax struct {
	Kind ObjectSyntaxKind

	Number     int32    // SyntaxNumber
	Bytes      []byte   // SyntaxString, SyntaxOpaque, SyntaxNsapAddress (borrowed)
	Object     OID      // SyntaxObject
	Unused     byte     // SyntaxBitString: count of unused trailing bits
	Bits       []byte   // SyntaxBitString (borrowed)
	IPAddress  [4]byte  // SyntaxIPAddress
	Counter32  uint32   // SyntaxCounter32
	Gauge32    uint32   // SyntaxGauge32
	TimeTicks  uint32   // SyntaxTimeTicks
	Counter64  uint64   // SyntaxCounter64
	UInteger32 uint32   // SyntaxUInteger32
	Any        ber.Any  // SyntaxUnknownSimple, SyntaxUnknownApplication — preserved verbatim
}

// decodeObjectSyntax maps a decoded BER Any to an ObjectSyntax per spec
// §4.2: APPLICATION tags 0-7 are SNMP application types, everything else
// falls back to the universal-tag table.
func decodeObjectSyntax(any ber.Any) (ObjectSyntax, error) {
	if any.Header.Class == ber.ClassApplication {
		switch any.Header.Tag {
		case 0:
			if len(any.Content) != 4 {
				return ObjectSyntax{}, newErr(ErrInvalidPdu, "APPLICATION 0 IpAddress must be exactly 4 octets")
			}
			var ip [4]byte
			copy(ip[:], any.Content)
			return ObjectSyntax{Kind: SyntaxIPAddress, IPAddress: ip}, nil
		case 1:
			v, err := ber.Uint32FromContent(any.Content)
			if err != nil {
				return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "Counter32", err)
			}
			return ObjectSyntax{Kind: SyntaxCounter32, Counter32: v}, nil
		case 2:
			v, err := ber.Uint32FromContent(any.Content)
			if err != nil {
				return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "Gauge32", err)
			}
			return ObjectSyntax{Kind: SyntaxGauge32, Gauge32: v}, nil
		case 3:
			v, err := ber.Uint32FromContent(any.Content)
			if err != nil {
				return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "TimeTicks", err)
			}
			return ObjectSyntax{Kind: SyntaxTimeTicks, TimeTicks: v}, nil
		case 4:
			return ObjectSyntax{Kind: SyntaxOpaque, Bytes: any.Content}, nil
		case 5:
			return ObjectSyntax{Kind: SyntaxNsapAddress, Bytes: any.Content}, nil
		case 6:
			v, err := ber.Uint64FromContent(any.Content)
			if err != nil {
				return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "Counter64", err)
			}
			return ObjectSyntax{Kind: SyntaxCounter64, Counter64: v}, nil
		case 7:
			v, err := ber.Uint32FromContent(any.Content)
			if err != nil {
				return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "UInteger32", err)
			}
			return ObjectSyntax{Kind: SyntaxUInteger32, UInteger32: v}, nil
		default:
			return ObjectSyntax{Kind: SyntaxUnknownApplication, Any: any}, nil
		}
	}

	switch any.Header.Tag {
	case ber.TagInteger:
		v, err := ber.Integer(any.Content)
		if err != nil {
			return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "INTEGER", err)
		}
		if v < -(1<<31) || v > (1<<31)-1 {
			return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "INTEGER overflows i32", ber.ErrOverflow)
		}
		return ObjectSyntax{Kind: SyntaxNumber, Number: int32(v)}, nil
	case ber.TagOctetString:
		return ObjectSyntax{Kind: SyntaxString, Bytes: any.Content}, nil
	case ber.TagOID:
		arcs, err := ber.DecodeOIDArcs(any.Content)
		if err != nil {
			return ObjectSyntax{}, wrapErr(ErrInvalidPdu, "OID", err)
		}
		return ObjectSyntax{Kind: SyntaxObject, Object: OID(arcs)}, nil
	case ber.TagNull:
		return ObjectSyntax{Kind: SyntaxEmpty}, nil
	case ber.TagBitString:
		if len(any.Content) == 0 {
			return ObjectSyntax{}, newErr(ErrInvalidPdu, "empty BIT STRING content")
		}
		return ObjectSyntax{Kind: SyntaxBitString, Unused: any.Content[0], Bits: any.Content[1:]}, nil
	default:
		// Observed field behavior: some agents elide NULL and send a
		// zero-length payload of an otherwise-unknown universal tag;
		// accept that as Empty rather than rejecting it.
		if len(any.Content) == 0 {
			return ObjectSyntax{Kind: SyntaxEmpty}, nil
		}
		return ObjectSyntax{Kind: SyntaxUnknownSimple, Any: any}, nil
	}
}

// VarBindKind discriminates the VarBindValue sum type (spec §4.3).
type VarBindKind uint8

const (
	VarBindValueKind VarBindKind = iota
	VarBindUnspecified
	VarBindNoSuchObject
	VarBindNoSuchInstance
	VarBindEndOfMibView
)

// VarBindValue is the CHOICE decoded for the second element of a VarBind.
type VarBindValue struct {
	Kind  VarBindKind
	Value ObjectSyntax // only populated when Kind == VarBindValueKind
}

// SnmpVariable is one decoded (OID, value) pair from a VarBindList.
type SnmpVariable struct {
	OID OID
	Val VarBindValue
}

func decodeVarBindChoice(any ber.Any) (VarBindValue, error) {
	if any.Header.Class == ber.ClassContextSpecific {
		switch any.Header.Tag {
		case 0:
			return VarBindValue{Kind: VarBindNoSuchObject}, nil
		case 1:
			return VarBindValue{Kind: VarBindNoSuchInstance}, nil
		case 2:
			return VarBindValue{Kind: VarBindEndOfMibView}, nil
		default:
			return VarBindValue{}, newErr(ErrInvalidPdu, fmt.Sprintf("unknown VarBind exception tag %d", any.Header.Tag))
		}
	}
	if any.Header.Class == ber.ClassUniversal && any.Header.Tag == ber.TagNull {
		if len(any.Content) != 0 {
			return VarBindValue{}, newErr(ErrInvalidPdu, "NULL VarBind value with non-empty content")
		}
		return VarBindValue{Kind: VarBindUnspecified}, nil
	}
	syn, err := decodeObjectSyntax(any)
	if err != nil {
		return VarBindValue{}, err
	}
	return VarBindValue{Kind: VarBindValueKind, Value: syn}, nil
}

// decodeVarBind decodes one SEQUENCE { ObjectName, CHOICE } element.
func decodeVarBind(input []byte, dec ber.Decoder) ([]byte, SnmpVariable, error) {
	body, rest, err := dec.Sequence(input)
	if err != nil {
		return nil, SnmpVariable{}, wrapErr(ErrInvalidPdu, "VarBind is not a SEQUENCE", err)
	}
	afterOID, arcs, err := dec.OID(body)
	if err != nil {
		return nil, SnmpVariable{}, wrapErr(ErrInvalidPdu, "VarBind ObjectName", err)
	}
	afterValue, any, err := dec.Any(afterOID)
	if err != nil {
		return nil, SnmpVariable{}, wrapErr(ErrInvalidPdu, "VarBind value", err)
	}
	if len(afterValue) != 0 {
		return nil, SnmpVariable{}, newErr(ErrInvalidPdu, "trailing bytes inside VarBind")
	}
	val, err := decodeVarBindChoice(any)
	if err != nil {
		return nil, SnmpVariable{}, err
	}
	return rest, SnmpVariable{OID: OID(arcs), Val: val}, nil
}

// decodeVarBindList decodes a SEQUENCE OF VarBind whose content is body.
// Any trailing bytes that don't form a complete, well-formed VarBind cause
// a failure, satisfying spec §4.3's "trailing bytes MUST cause failure".
func decodeVarBindList(body []byte, dec ber.Decoder) ([]SnmpVariable, error) {
	var vars []SnmpVariable
	for len(body) > 0 {
		// Check the element's own header is well-formed BER before asking
		// whether it looks like a VarBind: a truncated or malformed
		// length encoding here is a bare structural failure from the BER
		// layer, not yet a claim about VarBind shape, so it is reported
		// as ErrBerError rather than relabeled under this caller's kind.
		if _, _, err := dec.Header(body); err != nil {
			return nil, wrapErr(ErrBerError, "VarBindList element framing", err)
		}
		rest, v, err := decodeVarBind(body, dec)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
		body = rest
	}
	return vars, nil
}
