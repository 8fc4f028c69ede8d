package morse

import "fmt"

// BatchDecoder 一次性解码整段音频的批处理解码器。
// 流水线: 包络提取 -> 二值化 -> 游程检测 -> 时长聚类 -> 切分 -> 译码。
// 整个过程是纯同步计算，所有中间数组归单次调用独占，
// 除惰性构建的只读电码表外没有任何跨调用状态，可并发调用
type BatchDecoder struct {
	cfg *Config
}

// NewBatchDecoder 创建解码器实例，cfg 为 nil 时使用默认配置
func NewBatchDecoder(cfg *Config) *BatchDecoder {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &BatchDecoder{cfg: cfg}
}

// Decode 解码一段单声道音频，返回译出的明文。
// samples 为原始振幅序列，整型采样请先经 PromoteSamples 提升 (或使用 DecodeSamples)。
// 时长聚类失败时返回 *AmbiguousTimingError，其余错误均为输入不合法
func (d *BatchDecoder) Decode(sampleRate int, samples []float64) (string, error) {
	if sampleRate <= 0 {
		return "", fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if len(samples) == 0 {
		return "", ErrEmptySignal
	}

	windowSize := int(d.cfg.Envelope.WindowFraction * float64(sampleRate))
	if windowSize < 2 {
		windowSize = 2
	}

	envelope, err := SmoothedPower(samples, windowSize, d.cfg.Envelope.Mode)
	if err != nil {
		return "", err
	}

	keying := Binarize(envelope)

	onRuns, offRuns, err := DetectRuns(keying)
	if err != nil {
		return "", err
	}

	symbols, err := ClassifyMarks(onRuns, d.cfg)
	if err != nil {
		return "", err
	}

	charBreaks, wordBreaks, err := ClassifySpaces(offRuns, d.cfg)
	if err != nil {
		return "", err
	}

	return Translate(SplitWords(symbols, charBreaks, wordBreaks)), nil
}

// DecodeSamples 泛型入口: 接受任意整型/浮点采样类型，平方前统一提升为 float64
func DecodeSamples[T Sample](sampleRate int, samples []T, cfg *Config) (string, error) {
	return NewBatchDecoder(cfg).Decode(sampleRate, PromoteSamples(samples))
}
