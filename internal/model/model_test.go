package model

import (
	"reflect"
	"testing"
)

func TestStringArray_RoundTrip(t *testing.T) {
	in := StringArray{"a", "b c", `with "quote"`, `back\slash`, "x,y", ""}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value 失败: %v", err)
	}

	var out StringArray
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("往返不一致: in=%q out=%q", in, out)
	}
}

func TestStringArray_ScanPostgresLiteral(t *testing.T) {
	var out StringArray
	if err := out.Scan([]byte(`{plain,"quoted one",NULL}`)); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	want := StringArray{"plain", "quoted one", ""}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("期望 %q，实际 %q", want, out)
	}
}

func TestStringArray_Empty(t *testing.T) {
	var out StringArray
	if err := out.Scan("{}"); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("空数组应解析为非 nil 空切片，实际 %#v", out)
	}

	v, _ := StringArray(nil).Value()
	if v != "{}" {
		t.Errorf("nil 应序列化为 {}，实际 %v", v)
	}
}

func TestStringArray_Invalid(t *testing.T) {
	var out StringArray
	if err := out.Scan(`{"open`); err == nil {
		t.Error("非法字面量应返回错误")
	}
	if err := out.Scan(42); err == nil {
		t.Error("不支持的类型应返回错误")
	}
}

func TestApplicationStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		ok       bool
	}{
		{ApplicationPending, ApplicationApproved, true},
		{ApplicationPending, ApplicationRejected, true},
		{ApplicationApproved, ApplicationRejected, true},
		{ApplicationRejected, ApplicationApproved, true},
		{ApplicationApproved, ApplicationPending, false},
		{ApplicationPending, ApplicationPending, true},
		{ApplicationPending, "accepted", false},
		{"legacy-status", ApplicationApproved, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: 期望 %v，实际 %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestReportStatus_Transitions(t *testing.T) {
	if !ReportSubmitted.CanTransitionTo(ReportReviewed) {
		t.Error("submitted -> reviewed 应允许")
	}
	if !ReportRevisionRequested.CanTransitionTo(ReportReviewed) {
		t.Error("revision_requested -> reviewed 应允许")
	}
	if ReportReviewed.CanTransitionTo(ReportSubmitted) {
		t.Error("reviewed 为终态")
	}
	if ReportStatus("bogus").Valid() {
		t.Error("未知状态不应合法")
	}
}
