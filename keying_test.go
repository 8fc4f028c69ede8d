package morse

import (
	"errors"
	"testing"
)

func TestBinarizeThreshold(t *testing.T) {
	// 阈值 = 最大值的 50%，等于阈值的点也算 ON
	envelope := []float64{0, 0.2, 0.9, 1.0, 0.5, 0.49, 0}
	want := []int{0, 0, 1, 1, 1, 0, 0}

	got := Binarize(envelope)
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBinarizeSilence(t *testing.T) {
	// 全零包络没有参照基准，应视为全程静音而不是全程 ON
	got := Binarize(make([]float64, 16))
	for i, v := range got {
		if v != 0 {
			t.Fatalf("sample %d: got %d, silence must stay off", i, v)
		}
	}
}

func TestDetectRuns(t *testing.T) {
	keying := []int{0, 1, 1, 1, 0, 0, 1, 0}

	onRuns, offRuns, err := DetectRuns(keying)
	if err != nil {
		t.Fatalf("DetectRuns failed: %v", err)
	}

	wantOn := []int{3, 1}
	wantOff := []int{2}
	assertIntSlice(t, "onRuns", onRuns, wantOn)
	assertIntSlice(t, "offRuns", offRuns, wantOff)
}

func TestDetectRunsAlternationInvariant(t *testing.T) {
	// 游程交替不变量: len(on) 与 len(off) 最多相差 1
	// (这里的实现恒为 len(on) == len(off)+1，因为 OFF 只统计内部间隔)
	patterns := [][]int{
		{0, 1, 0, 1, 0, 1, 0},
		{1, 0, 1, 0, 1},
		{1, 1, 0, 0, 1, 1},
		{0, 0, 1, 1, 1, 0},
	}
	for _, keying := range patterns {
		onRuns, offRuns, err := DetectRuns(keying)
		if err != nil {
			t.Fatalf("DetectRuns(%v) failed: %v", keying, err)
		}
		if len(onRuns) != len(offRuns)+1 {
			t.Errorf("keying %v: len(on)=%d len(off)=%d, want difference of exactly 1",
				keying, len(onRuns), len(offRuns))
		}
	}
}

func TestDetectRunsMidTone(t *testing.T) {
	// 信号在音调中开始和结束: 通过合成边界沿正确计长，而不是崩溃
	keying := []int{1, 1, 0, 1, 1, 1}

	onRuns, offRuns, err := DetectRuns(keying)
	if err != nil {
		t.Fatalf("DetectRuns failed: %v", err)
	}

	assertIntSlice(t, "onRuns", onRuns, []int{2, 3})
	assertIntSlice(t, "offRuns", offRuns, []int{1})
}

func TestDetectRunsNoTone(t *testing.T) {
	if _, _, err := DetectRuns(make([]int, 100)); !errors.Is(err, ErrNoTransitions) {
		t.Errorf("all-silent keying: got %v, want ErrNoTransitions", err)
	}
}

func TestDetectRunsTooShort(t *testing.T) {
	if _, _, err := DetectRuns([]int{1}); err == nil {
		t.Error("single-sample keying should be rejected")
	}
}

func assertIntSlice(t *testing.T, name string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", name, got, want)
		}
	}
}
