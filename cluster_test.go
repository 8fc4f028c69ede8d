package morse

import (
	"errors"
	"testing"
)

func TestClassifyMarks(t *testing.T) {
	// 带抖动的点 (~50) 和划 (~150) 必须按质心大小映射为 . 和 -
	onRuns := []int{48, 52, 150, 49, 145, 51}

	symbols, err := ClassifyMarks(onRuns, DefaultConfig())
	if err != nil {
		t.Fatalf("ClassifyMarks failed: %v", err)
	}
	if symbols != "..-.-." {
		t.Errorf("symbols: got %q, want %q", symbols, "..-.-.")
	}
}

func TestClassifyMarksSingleMagnitude(t *testing.T) {
	// 只有一种时长量级 (消息中没有划) 必须报时序歧义，而不是硬解出单符号结果
	onRuns := []int{50, 50, 50, 50}

	_, err := ClassifyMarks(onRuns, DefaultConfig())

	var ambiguous *AmbiguousTimingError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("got %v, want *AmbiguousTimingError", err)
	}
	if ambiguous.Stage != "mark" {
		t.Errorf("stage: got %q, want %q", ambiguous.Stage, "mark")
	}
	if ambiguous.Clusters != 2 {
		t.Errorf("clusters: got %d, want 2", ambiguous.Clusters)
	}
}

func TestClassifyMarksJitterOnly(t *testing.T) {
	// 采样抖动把同一量级拆成了相邻的几个取值，
	// 质心比值过近时必须判为退化划分而不是硬造出点划两类
	onRuns := []int{479, 480, 481, 480, 479}

	_, err := ClassifyMarks(onRuns, DefaultConfig())

	var ambiguous *AmbiguousTimingError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("got %v, want *AmbiguousTimingError", err)
	}
	if ambiguous.Stage != "mark" {
		t.Errorf("stage: got %q, want %q", ambiguous.Stage, "mark")
	}
}

func TestClassifySpaces(t *testing.T) {
	// 三类间隔: ~50 字符内、~150 字符间、~350 单词间
	offRuns := []int{50, 48, 150, 350, 52, 148}

	charBreaks, wordBreaks, err := ClassifySpaces(offRuns, DefaultConfig())
	if err != nil {
		t.Fatalf("ClassifySpaces failed: %v", err)
	}

	// 间隔 i 在符号 i 和 i+1 之间，断点即插入位置 i+1
	assertIntSlice(t, "charBreaks", charBreaks, []int{3, 4, 6})
	// 单词断点在字符序列中重新编号: 单词间隔前已有 2 个字符断点
	assertIntSlice(t, "wordBreaks", wordBreaks, []int{2})
}

func TestClassifySpacesTwoMagnitudes(t *testing.T) {
	// 单个单词的消息没有单词间隔，只剩两种量级，必须报歧义
	offRuns := []int{50, 150, 50, 150, 50}

	_, _, err := ClassifySpaces(offRuns, DefaultConfig())

	var ambiguous *AmbiguousTimingError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("got %v, want *AmbiguousTimingError", err)
	}
	if ambiguous.Stage != "space" {
		t.Errorf("stage: got %q, want %q", ambiguous.Stage, "space")
	}
}

func TestKMeansDeterministic(t *testing.T) {
	// 相同输入必须得到完全相同的划分
	data := []float64{48, 52, 150, 49, 145, 51, 350, 347}

	c1, l1, err := kMeans1D(data, 3, 50, 1.5)
	if err != nil {
		t.Fatalf("kMeans1D failed: %v", err)
	}
	c2, l2, err := kMeans1D(data, 3, 50, 1.5)
	if err != nil {
		t.Fatalf("kMeans1D failed: %v", err)
	}

	for i := range c1 {
		if c1[i] != c2[i] {
			t.Fatalf("centroids differ between runs: %v vs %v", c1, c2)
		}
	}
	for i := range l1 {
		if l1[i] != l2[i] {
			t.Fatalf("labels differ between runs: %v vs %v", l1, l2)
		}
	}

	// 质心必须升序，标签语义按名次分配
	for i := 1; i < len(c1); i++ {
		if c1[i] <= c1[i-1] {
			t.Fatalf("centroids not ascending: %v", c1)
		}
	}
}
