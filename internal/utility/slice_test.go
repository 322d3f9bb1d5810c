package utility

import (
	"reflect"
	"testing"
)

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains phải tìm thấy phần tử có trong slice")
	}
	if Contains([]string{"a", "b"}, "c") {
		t.Error("Contains không được tìm thấy phần tử vắng mặt")
	}
	if Contains([]string{}, "a") {
		t.Error("Slice rỗng không chứa gì")
	}
}

func TestExclude(t *testing.T) {
	got := Exclude([]string{"u1", "u2", "u1", "u3"}, "u1")
	if !reflect.DeepEqual(got, []string{"u2", "u3"}) {
		t.Errorf("Exclude phải loại mọi lần xuất hiện, có %v", got)
	}

	got = Exclude([]string{"u2", "u3"}, "u9")
	if !reflect.DeepEqual(got, []string{"u2", "u3"}) {
		t.Errorf("Exclude phần tử vắng mặt phải giữ nguyên slice, có %v", got)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"A", "B", "A", "C", "B"})
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Unique phải giữ thứ tự xuất hiện đầu tiên, có %v", got)
	}

	got = Unique([]string{})
	if len(got) != 0 {
		t.Errorf("Unique slice rỗng phải rỗng, có %v", got)
	}
}
