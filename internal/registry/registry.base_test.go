// Package registry - Test registry generic thread-safe.
package registry

import "testing"

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "giá trị a")
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("Register lần đầu phải trả về isNew = true")
	}

	isNew, err = r.Register("a", "giá trị a mới")
	if err != nil {
		t.Fatalf("Register lần hai lỗi: %v", err)
	}
	if isNew {
		t.Error("Register key đã tồn tại phải trả về isNew = false")
	}

	got, ok := r.Get("a")
	if !ok {
		t.Fatal("Get không tìm thấy key đã đăng ký")
	}
	if got != "giá trị a mới" {
		t.Errorf("Get = %q, Register phải ghi đè giá trị", got)
	}

	if _, ok := r.Get("không tồn tại"); ok {
		t.Error("Get key chưa đăng ký phải trả về ok = false")
	}
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	if _, err := r.Register("", 1); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}
}

func TestRegistry_Count(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)
	r.Register("a", 3)
	if r.Count() != 2 {
		t.Errorf("Count = %d, mong đợi 2", r.Count())
	}
	if !r.Clear("a") {
		t.Error("Clear item tồn tại phải trả về true")
	}
	if r.Clear("a") {
		t.Error("Clear item đã xóa phải trả về false")
	}
	if r.Count() != 1 {
		t.Errorf("Count sau Clear = %d, mong đợi 1", r.Count())
	}
}
