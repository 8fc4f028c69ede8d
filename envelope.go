package morse

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Sample 约束所有支持的采样类型。
// 整型采样在平方前统一提升为 float64，避免窄类型平方时截断/溢出
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~float32 | ~float64
}

// PromoteSamples 把任意采样类型提升为 float64
func PromoteSamples[T Sample](samples []T) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}
	return out
}

// SmoothedPower 计算信号的滑动 RMS 功率包络。
// 步骤: 逐点平方 (瞬时功率) -> 与归一化汉宁窗卷积 (加权滑动平均) -> 开方。
// mode 决定输出长度，语义与 np.convolve 的 "valid"/"same" 一致:
//   - ConvValid: 输出长度 n - w + 1
//   - ConvSame:  输出长度 n
func SmoothedPower(samples []float64, windowSize int, mode ConvMode) ([]float64, error) {
	n := len(samples)
	if n == 0 {
		return nil, ErrEmptySignal
	}
	if windowSize < 2 {
		return nil, fmt.Errorf("smoothing window must be at least 2 samples, got %d", windowSize)
	}
	if windowSize > n {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrSignalTooShort, n, windowSize)
	}

	// 汉宁窗归一化到积分为 1，卷积结果即为加权平均
	win := window.Hann(windowSize)
	var winSum float64
	for _, w := range win {
		winSum += w
	}
	for i := range win {
		win[i] /= winSum
	}

	squared := make([]float64, n)
	for i, s := range samples {
		squared[i] = s * s
	}

	full := linearConvolve(squared, win)

	var conv []float64
	switch mode {
	case ConvValid:
		conv = full[windowSize-1 : n]
	case ConvSame:
		start := (windowSize - 1) / 2
		conv = full[start : start+n]
	default:
		return nil, fmt.Errorf("unknown convolution mode %q", mode)
	}

	out := make([]float64, len(conv))
	for i, v := range conv {
		// FFT 卷积的舍入误差可能产生极小的负值，开方前截断
		if v < 0 {
			v = 0
		}
		out[i] = math.Sqrt(v)
	}
	return out, nil
}

// linearConvolve 通过零填充 + FFT 计算线性卷积，返回完整 (full) 结果，
// 长度为 len(x) + len(y) - 1
func linearConvolve(x, y []float64) []float64 {
	size := len(x) + len(y) - 1

	cx := dsputils.ZeroPad(dsputils.ToComplex(x), size)
	cy := dsputils.ZeroPad(dsputils.ToComplex(y), size)

	conv := fft.Convolve(cx, cy)

	out := make([]float64, size)
	for i, c := range conv {
		out[i] = real(c)
	}
	return out
}
