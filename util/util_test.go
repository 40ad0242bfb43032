package util

import "testing"

var a, b, c = 1, 2, 3

func TestMaxI(t *testing.T) {
	num := MaxI(int64(a), int64(b))
	if num != int64(b) {
		t.Errorf("test MaxI failed, num value is: %d", num)
	}

	num1 := MaxI(int64(c), int64(b))
	if num1 != int64(c) {
		t.Errorf("test MaxI failed, num value is: %d", num1)
	}
}

func TestMinI(t *testing.T) {
	num := MinI(int64(a), int64(b))
	if num != int64(a) {
		t.Errorf("test MinI failed, num value is: %d", num)
	}

	num1 := MinI(int64(c), int64(b))
	if num1 != int64(b) {
		t.Errorf("test MinI failed, num value is: %d", num1)
	}
}
