package ctypes

import (
	"testing"
	"time"
)

func TestMyTimeScanBytes(t *testing.T) {
	var mt MyTime
	if err := mt.Scan([]byte("2026-08-31 10:30:00")); err != nil {
		t.Fatalf("扫描[]byte失败: %v", err)
	}
	if got := mt.String(); got != "2026-08-31 10:30:00" {
		t.Fatalf("期望 2026-08-31 10:30:00，实际 %s", got)
	}
}

func TestMyTimeScanNil(t *testing.T) {
	var mt MyTime
	if err := mt.Scan(nil); err != nil {
		t.Fatalf("扫描nil失败: %v", err)
	}
	if !time.Time(mt).IsZero() {
		t.Fatal("nil应扫描为零值时间")
	}
}

func TestMyTimeValueZeroIsNull(t *testing.T) {
	var mt MyTime
	v, err := mt.Value()
	if err != nil {
		t.Fatalf("Value失败: %v", err)
	}
	if v != nil {
		t.Fatal("零值时间应写入NULL")
	}
}

func TestMyTimeUnmarshalFallback(t *testing.T) {
	var mt MyTime
	if err := mt.UnmarshalJSON([]byte(`"2026-08-31 10:30:00"`)); err != nil {
		t.Fatalf("解析传统格式失败: %v", err)
	}
	if err := mt.UnmarshalJSON([]byte(`"2026-08-31T10:30:00+08:00"`)); err != nil {
		t.Fatalf("解析RFC3339失败: %v", err)
	}
}
