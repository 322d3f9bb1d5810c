package database

import (
	"testing"
)

func TestParseIndexTag_DonGian(t *testing.T) {
	configs := parseIndexTag("single")
	if len(configs) != 1 {
		t.Fatalf("Tag 'single' phải cho 1 cấu hình, có %d", len(configs))
	}
	if _, ok := configs[0]["single"]; !ok {
		t.Errorf("Cấu hình phải có key 'single': %v", configs[0])
	}
}

func TestParseIndexTag_NhieuKeyValue(t *testing.T) {
	configs := parseIndexTag("unique,sparse")
	if len(configs) != 1 {
		t.Fatalf("Tag 'unique,sparse' phải cho 1 cấu hình, có %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Errorf("Cấu hình thiếu 'unique': %v", configs[0])
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Errorf("Cấu hình thiếu 'sparse': %v", configs[0])
	}
}

func TestParseIndexTag_CoGiaTri(t *testing.T) {
	configs := parseIndexTag("ttl:3600")
	if configs[0]["ttl"] != "3600" {
		t.Errorf("ttl phải là '3600', có %q", configs[0]["ttl"])
	}

	configs = parseIndexTag("compound:status_created")
	if configs[0]["compound"] != "status_created" {
		t.Errorf("compound phải là 'status_created', có %q", configs[0]["compound"])
	}
}

func TestParseIndexTag_NhieuCauHinh(t *testing.T) {
	configs := parseIndexTag("single;compound:status_created,order:-1")
	if len(configs) != 2 {
		t.Fatalf("Tag 2 cấu hình cách nhau bởi ';' phải cho 2 phần, có %d", len(configs))
	}
	if configs[1]["compound"] != "status_created" {
		t.Errorf("Cấu hình thứ hai không đúng: %v", configs[1])
	}
}

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single,order:-1"); got != -1 {
		t.Errorf("order:-1 phải cho -1, có %d", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("Mặc định phải là 1, có %d", got)
	}
}
