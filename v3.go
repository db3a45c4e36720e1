package snmpdecode

import (
	"fmt"
	"unicode/utf8"

	"github.com/rusticata-go/snmpdecode/ber"
)

// SecurityModel names the msgSecurityModel field of an SNMPv3 HeaderData.
// USM (3) is the only model this decoder interprets further; any other
// value is surfaced as SecurityParameters.Raw untouched.
type SecurityModel uint32

const (
	SecurityModelSnmpV1  SecurityModel = 1
	SecurityModelSnmpV2c SecurityModel = 2
	SecurityModelUSM     SecurityModel = 3
)

func (s SecurityModel) String() string {
	switch s {
	case SecurityModelSnmpV1:
		return "SnmpV1"
	case SecurityModelSnmpV2c:
		return "SnmpV2c"
	case SecurityModelUSM:
		return "USM"
	default:
		return fmt.Sprintf("SecurityModel(%d)", uint32(s))
	}
}

// HeaderData is SNMPv3's HeaderData SEQUENCE (spec §4.6).
type HeaderData struct {
	MsgID            uint32
	MsgMaxSize       uint32
	MsgFlags         uint8
	MsgSecurityModel SecurityModel
}

// IsAuthenticated reports bit 0 of msgFlags.
func (h HeaderData) IsAuthenticated() bool { return h.MsgFlags&0b001 != 0 }

// IsEncrypted reports bit 1 of msgFlags.
func (h HeaderData) IsEncrypted() bool { return h.MsgFlags&0b010 != 0 }

// IsReportable reports bit 2 of msgFlags.
func (h HeaderData) IsReportable() bool { return h.MsgFlags&0b100 != 0 }

// UsmSecurityParameters is RFC 3414's USM security parameters structure.
// Only UserName is an owned, UTF-8-validated copy; every other field
// borrows from the caller's buffer.
type UsmSecurityParameters struct {
	AuthoritativeEngineID    []byte
	AuthoritativeEngineBoots uint32
	AuthoritativeEngineTime  uint32
	UserName                 string
	AuthenticationParameters []byte
	PrivacyParameters        []byte
}

// SecurityParametersKind discriminates the SecurityParameters sum type.
type SecurityParametersKind uint8

const (
	SecurityParamsUSM SecurityParametersKind = iota
	SecurityParamsRaw
)

// SecurityParameters is the decoded msgSecurityParameters blob: a parsed
// UsmSecurityParameters when msgSecurityModel is USM, otherwise the raw
// inner bytes untouched.
type SecurityParameters struct {
	Kind SecurityParametersKind
	USM  UsmSecurityParameters
	Raw  []byte
}

// ScopedPduDataKind discriminates the ScopedPduData sum type.
type ScopedPduDataKind uint8

const (
	ScopedPduPlaintext ScopedPduDataKind = iota
	ScopedPduEncrypted
)

// ScopedPdu pairs a context engine id/name with the inner PDU (spec §4.6).
type ScopedPdu struct {
	ContextEngineID   []byte
	ContextEngineName []byte
	Data              SnmpPdu
}

// ScopedPduData is either a decoded plaintext ScopedPdu or, when the
// privacy flag is set, the still-encrypted inner bytes untouched — no
// cryptographic processing is performed here (spec §1 Non-goals).
type ScopedPduData struct {
	Kind      ScopedPduDataKind
	Plaintext ScopedPdu
	Encrypted []byte
}

// SnmpV3Message is a fully decoded SNMPv3 message (spec §4.6).
type SnmpV3Message struct {
	Version        uint32
	HeaderData     HeaderData
	SecurityParams SecurityParameters
	Data           ScopedPduData
}

func decodeHeaderData(input []byte, dec ber.Decoder) ([]byte, HeaderData, error) {
	body, rest, err := dec.Sequence(input)
	if err != nil {
		return nil, HeaderData{}, wrapErr(ErrInvalidHeaderData, "not a SEQUENCE", err)
	}
	afterID, msgID, err := dec.Uint32(body)
	if err != nil {
		return nil, HeaderData{}, wrapErr(ErrInvalidHeaderData, "msgID", err)
	}
	afterMax, maxSize, err := dec.Uint32(afterID)
	if err != nil {
		return nil, HeaderData{}, wrapErr(ErrInvalidHeaderData, "msgMaxSize", err)
	}
	afterFlags, flagsContent, err := dec.OctetString(afterMax)
	if err != nil {
		return nil, HeaderData{}, wrapErr(ErrInvalidHeaderData, "msgFlags", err)
	}
	if len(flagsContent) != 1 {
		return nil, HeaderData{}, newErr(ErrInvalidHeaderData, "msgFlags must be exactly one octet")
	}
	afterModel, model, err := dec.Uint32(afterFlags)
	if err != nil {
		return nil, HeaderData{}, wrapErr(ErrInvalidHeaderData, "msgSecurityModel", err)
	}
	if len(afterModel) != 0 {
		return nil, HeaderData{}, newErr(ErrInvalidHeaderData, "trailing bytes inside HeaderData")
	}
	return rest, HeaderData{
		MsgID:            msgID,
		MsgMaxSize:       maxSize,
		MsgFlags:         flagsContent[0],
		MsgSecurityModel: SecurityModel(model),
	}, nil
}

// ParseUsmSecurityParameters decodes the inner bytes of a msgSecurityParameters
// OCTET STRING as RFC 3414's UsmSecurityParameters SEQUENCE.
func ParseUsmSecurityParameters(input []byte) ([]byte, UsmSecurityParameters, error) {
	dec := ber.Default
	body, rest, err := dec.Sequence(input)
	if err != nil {
		return nil, UsmSecurityParameters{}, wrapErr(ErrInvalidSecurityModel, "not a SEQUENCE", err)
	}
	afterEngineID, engineID, err := dec.OctetString(body)
	if err != nil {
		return nil, UsmSecurityParameters{}, wrapErr(ErrInvalidSecurityModel, "msgAuthoritativeEngineID", err)
	}
	afterBoots, boots, err := dec.Uint32(afterEngineID)
	if err != nil {
		return nil, UsmSecurityParameters{}, wrapErr(ErrInvalidSecurityModel, "msgAuthoritativeEngineBoots", err)
	}
	afterTime, engTime, err := dec.Uint32(afterBoots)
	if err != nil {
		return nil, UsmSecurityParameters{}, wrapErr(ErrInvalidSecurityModel, "msgAuthoritativeEngineTime", err)
	}
	afterUser, userBytes, err := dec.OctetString(afterTime)
	if err != nil {
		return nil, UsmSecurityParameters{}, wrapErr(ErrInvalidSecurityModel, "msgUserName", err)
	}
	if !utf8.Valid(userBytes) {
		return nil, UsmSecurityParameters{}, newErr(ErrInvalidSecurityModel, "msgUserName is not valid UTF-8")
	}
	afterAuth, authParams, err := dec.OctetString(afterUser)
	if err != nil {
		return nil, UsmSecurityParameters{}, wrapErr(ErrInvalidSecurityModel, "msgAuthenticationParameters", err)
	}
	afterPriv, privParams, err := dec.OctetString(afterAuth)
	if err != nil {
		return nil, UsmSecurityParameters{}, wrapErr(ErrInvalidSecurityModel, "msgPrivacyParameters", err)
	}
	if len(afterPriv) != 0 {
		return nil, UsmSecurityParameters{}, newErr(ErrInvalidSecurityModel, "trailing bytes inside UsmSecurityParameters")
	}
	return rest, UsmSecurityParameters{
		AuthoritativeEngineID:    engineID,
		AuthoritativeEngineBoots: boots,
		AuthoritativeEngineTime:  engTime,
		UserName:                 string(userBytes),
		AuthenticationParameters: authParams,
		PrivacyParameters:        privParams,
	}, nil
}

func decodeSecurityParameters(content []byte, model SecurityModel, dec ber.Decoder) (SecurityParameters, error) {
	if model != SecurityModelUSM {
		return SecurityParameters{Kind: SecurityParamsRaw, Raw: content}, nil
	}
	rest, usm, err := ParseUsmSecurityParameters(content)
	if err != nil {
		return SecurityParameters{}, err
	}
	if len(rest) != 0 {
		return SecurityParameters{}, newErr(ErrInvalidSecurityModel, "trailing bytes after UsmSecurityParameters")
	}
	return SecurityParameters{Kind: SecurityParamsUSM, USM: usm}, nil
}

func decodeScopedPduData(input []byte, hdr HeaderData, dec ber.Decoder) ([]byte, ScopedPduData, error) {
	if hdr.IsEncrypted() {
		rest, content, err := dec.OctetString(input)
		if err != nil {
			return nil, ScopedPduData{}, wrapErr(ErrInvalidScopedPduData, "encrypted scopedPduData", err)
		}
		return rest, ScopedPduData{Kind: ScopedPduEncrypted, Encrypted: content}, nil
	}

	body, rest, err := dec.Sequence(input)
	if err != nil {
		return nil, ScopedPduData{}, wrapErr(ErrInvalidScopedPduData, "ScopedPdu is not a SEQUENCE", err)
	}
	afterCtxID, ctxEngineID, err := dec.OctetString(body)
	if err != nil {
		return nil, ScopedPduData{}, wrapErr(ErrInvalidScopedPduData, "contextEngineID", err)
	}
	afterCtxName, ctxEngineName, err := dec.OctetString(afterCtxID)
	if err != nil {
		return nil, ScopedPduData{}, wrapErr(ErrInvalidScopedPduData, "contextEngineName", err)
	}
	afterPdu, innerPdu, err := decodePDU(afterCtxName, dec, allowedTagsV2cOrV3)
	if err != nil {
		return nil, ScopedPduData{}, err
	}
	if len(afterPdu) != 0 {
		return nil, ScopedPduData{}, newErr(ErrInvalidScopedPduData, "trailing bytes inside ScopedPdu")
	}
	return rest, ScopedPduData{
		Kind: ScopedPduPlaintext,
		Plaintext: ScopedPdu{
			ContextEngineID:   ctxEngineID,
			ContextEngineName: ctxEngineName,
			Data:              innerPdu,
		},
	}, nil
}

// ParseSnmpV3 decodes an SNMPv3 message: SEQUENCE { version=3, HeaderData,
// msgSecurityParameters, ScopedPduData } (spec §4.6).
func ParseSnmpV3(input []byte) ([]byte, SnmpV3Message, error) {
	dec := ber.Default
	body, outerRest, err := dec.Sequence(input)
	if err != nil {
		return nil, SnmpV3Message{}, wrapErr(ErrInvalidMessage, "not a SEQUENCE", err)
	}
	afterVersion, version, err := dec.Uint32(body)
	if err != nil {
		return nil, SnmpV3Message{}, wrapErr(ErrInvalidVersion, "version", err)
	}
	if version != 3 {
		return nil, SnmpV3Message{}, newErr(ErrInvalidVersion, "version is not 3")
	}
	afterHeader, hdr, err := decodeHeaderData(afterVersion, dec)
	if err != nil {
		return nil, SnmpV3Message{}, err
	}
	afterSecParam, secParamContent, err := dec.OctetString(afterHeader)
	if err != nil {
		return nil, SnmpV3Message{}, wrapErr(ErrInvalidMessage, "msgSecurityParameters", err)
	}
	secParams, err := decodeSecurityParameters(secParamContent, hdr.MsgSecurityModel, dec)
	if err != nil {
		return nil, SnmpV3Message{}, err
	}
	afterData, scopedData, err := decodeScopedPduData(afterSecParam, hdr, dec)
	if err != nil {
		return nil, SnmpV3Message{}, err
	}
	if len(afterData) != 0 {
		return nil, SnmpV3Message{}, newErr(ErrInvalidMessage, "trailing bytes inside v3 message")
	}
	return outerRest, SnmpV3Message{
		Version:        version,
		HeaderData:     hdr,
		SecurityParams: secParams,
		Data:           scopedData,
	}, nil
}
