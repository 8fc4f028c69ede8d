package morse

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Binarize 把包络硬阈值化为二值键控序列 (1 = 有音调, 0 = 无音调)。
// 阈值取包络最大值的 50%。这里不做迟滞处理，
// 包络纹波产生的零星短游程依赖下游聚类按时长规模隐式排除
func Binarize(envelope []float64) []int {
	if len(envelope) == 0 {
		return nil
	}

	threshold := floats.Max(envelope) * 0.5
	keying := make([]int, len(envelope))

	// 全零包络没有可比较的基准，视为全程静音
	if threshold == 0 {
		return keying
	}

	for i, v := range envelope {
		if v >= threshold {
			keying[i] = 1
		}
	}
	return keying
}

// DetectRuns 从键控序列中提取 ON/OFF 游程长度 (单位: 采样点)。
// 一阶差分中 +1 为上升沿，-1 为下降沿。信号在 ON 状态开始或结束时合成边界沿:
//   - 起始即为 ON: 在 -1 处合成上升沿 (视为游程在数据开始前一个采样点起步)
//   - 结束仍为 ON: 在最后一个有效下标处合成下降沿
//
// OFF 游程只统计相邻 ON 游程之间的间隔 (含字符间隔与单词间隔，由下游按时长区分)，
// 因此恒有 len(onRuns) == len(offRuns) + 1
func DetectRuns(keying []int) (onRuns, offRuns []int, err error) {
	n := len(keying)
	if n < 2 {
		return nil, nil, fmt.Errorf("keying sequence too short: %d samples", n)
	}

	var rising, falling []int
	for i := 1; i < n; i++ {
		switch keying[i] - keying[i-1] {
		case 1:
			rising = append(rising, i-1)
		case -1:
			falling = append(falling, i-1)
		}
	}

	// 合成边界沿
	if keying[0] == 1 {
		rising = append([]int{-1}, rising...)
	}
	if keying[n-1] == 1 {
		falling = append(falling, n-1)
	}

	if len(rising) == 0 {
		return nil, nil, ErrNoTransitions
	}

	onRuns = make([]int, len(rising))
	for i := range rising {
		onRuns[i] = falling[i] - rising[i]
	}

	offRuns = make([]int, 0, len(rising)-1)
	for i := 1; i < len(rising); i++ {
		offRuns = append(offRuns, rising[i]-falling[i-1])
	}

	return onRuns, offRuns, nil
}
