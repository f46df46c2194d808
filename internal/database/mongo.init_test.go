// Package database - Test parse tag index trên model.
package database

import "testing"

func TestParseIndexTag_NhieuCauHinh(t *testing.T) {
	entries := parseIndexTag("single;compound:wa_id_timestamp")
	if len(entries) != 2 {
		t.Fatalf("tag phải cho 2 entry, có %d", len(entries))
	}
	if _, ok := entries[0]["single"]; !ok {
		t.Errorf("entry đầu phải là single, là %v", entries[0])
	}
	if group := entries[1]["compound"]; group != "wa_id_timestamp" {
		t.Errorf("entry hai phải thuộc group wa_id_timestamp, là %q", group)
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	entries := parseIndexTag("unique,sparse")
	if len(entries) != 1 {
		t.Fatalf("tag phải cho 1 entry, có %d", len(entries))
	}
	if _, ok := entries[0]["unique"]; !ok {
		t.Error("entry phải có unique")
	}
	if _, ok := entries[0]["sparse"]; !ok {
		t.Error("entry phải có sparse")
	}
}

func TestParseOrder(t *testing.T) {
	if got := parseOrder("compound:wa_id_timestamp,order:-1"); got != -1 {
		t.Errorf("tag có order:-1 phải cho -1, nhận %d", got)
	}
	if got := parseOrder("compound:wa_id_timestamp"); got != 1 {
		t.Errorf("tag không có order phải mặc định 1, nhận %d", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("single phải mặc định 1, nhận %d", got)
	}
}
