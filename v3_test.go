package snmpdecode

import "testing"

func TestParseSnmpV3Req(t *testing.T) {
	rest, msg, err := ParseSnmpV3(readFixture(t, "snmpv3_req.bin"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rest) != 0 {
		t.Errorf("expected no trailing bytes, got %d", len(rest))
	}
	if msg.Version != 3 {
		t.Errorf("got version %d", msg.Version)
	}
	hdr := msg.HeaderData
	if hdr.MsgID != 821490644 || hdr.MsgMaxSize != 65507 || hdr.MsgFlags != 4 {
		t.Errorf("got header %+v", hdr)
	}
	if hdr.MsgSecurityModel != SecurityModelUSM {
		t.Errorf("got security model %v", hdr.MsgSecurityModel)
	}
	if hdr.IsReportable() != true || hdr.IsAuthenticated() != false || hdr.IsEncrypted() != false {
		t.Errorf("got flag bits auth=%v priv=%v reportable=%v", hdr.IsAuthenticated(), hdr.IsEncrypted(), hdr.IsReportable())
	}

	if msg.SecurityParams.Kind != SecurityParamsUSM {
		t.Fatalf("expected USM security params, got %v", msg.SecurityParams.Kind)
	}
	usm := msg.SecurityParams.USM
	if usm.UserName != "" || usm.AuthoritativeEngineBoots != 0 || usm.AuthoritativeEngineTime != 0 {
		t.Errorf("got %+v", usm)
	}

	if msg.Data.Kind != ScopedPduPlaintext {
		t.Fatalf("expected plaintext ScopedPduData, got %v", msg.Data.Kind)
	}
	scoped := msg.Data.Plaintext
	wantCei := []byte{0x80, 0x00, 0x1f, 0x88, 0x80, 0x59, 0xdc, 0x48, 0x61, 0x45, 0xa2, 0x63, 0x22}
	if len(scoped.ContextEngineID) != len(wantCei) {
		t.Fatalf("got contextEngineID %x", scoped.ContextEngineID)
	}
	for i := range wantCei {
		if scoped.ContextEngineID[i] != wantCei[i] {
			t.Errorf("contextEngineID[%d]: got %x want %x", i, scoped.ContextEngineID[i], wantCei[i])
		}
	}
	if scoped.Data.Kind != PduGeneric || scoped.Data.Generic.PduType != GetRequest {
		t.Fatalf("expected a GetRequest PDU, got %+v", scoped.Data)
	}
	if scoped.Data.Generic.ReqID != 2098071598 {
		t.Errorf("got req-id %d", scoped.Data.Generic.ReqID)
	}
	if len(scoped.Data.Generic.Var) != 0 {
		t.Errorf("expected an empty VarBindList, got %d entries", len(scoped.Data.Generic.Var))
	}
}

func TestParseSnmpV3ReqEncrypted(t *testing.T) {
	rest, msg, err := ParseSnmpV3(readFixture(t, "snmpv3_req_encrypted.bin"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rest) != 0 {
		t.Errorf("expected no trailing bytes, got %d", len(rest))
	}
	if msg.Version != 3 || msg.HeaderData.MsgSecurityModel != SecurityModelUSM {
		t.Errorf("got %+v", msg)
	}
	if !msg.HeaderData.IsEncrypted() {
		t.Error("expected the privacy flag to be set")
	}
	if msg.Data.Kind != ScopedPduEncrypted {
		t.Fatalf("expected encrypted scopedPduData, got %v", msg.Data.Kind)
	}
	if len(msg.Data.Encrypted) == 0 {
		t.Error("expected non-empty encrypted scopedPduData bytes")
	}
}

func TestParseSnmpV3Report(t *testing.T) {
	rest, msg, err := ParseSnmpV3(readFixture(t, "snmpv3-report.bin"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(rest) != 0 {
		t.Errorf("expected no trailing bytes, got %d", len(rest))
	}
	if msg.Version != 3 || msg.HeaderData.MsgSecurityModel != SecurityModelUSM {
		t.Errorf("got %+v", msg)
	}
	scoped := msg.Data.Plaintext
	if scoped.Data.Kind != PduGeneric || scoped.Data.Generic.PduType != Report {
		t.Fatalf("expected a Report PDU, got %+v", scoped.Data)
	}
	if len(scoped.Data.Generic.Var) != 1 {
		t.Fatalf("expected 1 VarBind, got %d", len(scoped.Data.Generic.Var))
	}
	if scoped.Data.Generic.Var[0].Val.Value.Kind != SyntaxCounter32 {
		t.Errorf("expected a Counter32 report varbind, got %+v", scoped.Data.Generic.Var[0].Val.Value)
	}
}

func TestParseUsmSecurityParametersDirect(t *testing.T) {
	// SEQUENCE { engineID="", boots=7, time=9, userName="bob", authParams="",
	// privParams="" }, with one trailing junk byte appended after the TLV.
	given := []byte{
		0x30, 0x11,
		0x04, 0x00, // engineID
		0x02, 0x01, 0x07, // boots
		0x02, 0x01, 0x09, // time
		0x04, 0x03, 'b', 'o', 'b', // userName
		0x04, 0x00, // authParams
		0x04, 0x00, // privParams
		0xff, // trailing junk, outside the SEQUENCE TLV
	}
	rest, usm, err := ParseUsmSecurityParameters(given)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if usm.UserName != "bob" || usm.AuthoritativeEngineBoots != 7 || usm.AuthoritativeEngineTime != 9 {
		t.Errorf("got %+v", usm)
	}
	if len(rest) != 1 || rest[0] != 0xff {
		t.Errorf("expected the one trailing byte to be returned as rest, got %x", rest)
	}
}

func TestParseSnmpV3RejectsWrongVersion(t *testing.T) {
	_, _, err := ParseSnmpV3(readFixture(t, "snmpv1_req.bin"))
	if err == nil {
		t.Fatal("expected an error decoding a v1 message through ParseSnmpV3")
	}
}
