// Package snmpdecode decodes SNMP v1, v2c, and v3 messages from BER/DER
// bytes. Allocations are limited to the owned UTF-8 strings (community,
// msgUserName), the VarBind slices, and the decoded OID arc slices. Every
// []byte field aliases the caller's input buffer and is only valid for as
// long as that buffer is; OID values are freshly decoded copies.
//
// The package performs no encoding, no transport I/O, no cryptographic
// verification or decryption, and no MIB-based OID resolution: an
// encrypted SNMPv3 scopedPduData is returned as opaque bytes, and a
// caller that needs to decrypt or authenticate it must do so itself. No
// exported function decodes a decrypted ScopedPdu.
//
// Entry points are ParseSnmpV1, ParseSnmpV2c, ParseSnmpV3, and the
// version-sniffing ParseSnmpGenericMessage. The ber subpackage
// implements the underlying BER/DER primitives and is usable on its own.
package snmpdecode
