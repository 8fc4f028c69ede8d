package morse

import (
	"fmt"
	"math"
	"strings"
)

// 标准摩尔斯时序 (以点长为单位)
const (
	dotUnits       = 1
	dashUnits      = 3
	symbolGapUnits = 1
	charGapUnits   = 3
	wordGapUnits   = 7
)

// Keyer 把文本合成为键控正弦音频。
// 用于生成测试信号与 -encode 模式，时序严格按标准比例，
// 正好构成 BatchDecoder 的往返验证输入
type Keyer struct {
	SampleRate int
	cfg        *Config
}

// NewKeyer 创建发报器实例，cfg 为 nil 时使用默认配置
func NewKeyer(sampleRate int, cfg *Config) *Keyer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Keyer{SampleRate: sampleRate, cfg: cfg}
}

// KeySequence 把文本转为以点长为单位的二值键控序列。
// 点 = 1 单位 ON，划 = 3 单位 ON，符号间隔 1、字符间隔 3、单词间隔 7 单位 OFF。
// 首尾各填充 PadUnits 个静音单位，保证信号不在音调中开始或结束
func (k *Keyer) KeySequence(text string) ([]int, error) {
	words := strings.Fields(strings.ToUpper(text))
	if len(words) == 0 {
		return nil, fmt.Errorf("nothing to encode")
	}

	var units []int
	units = append(units, make([]int, k.cfg.Keyer.PadUnits)...)

	for wi, word := range words {
		if wi > 0 {
			units = append(units, make([]int, wordGapUnits)...)
		}
		for ci, ch := range strings.Split(word, "") {
			code, ok := charToMorse[ch]
			if !ok {
				return nil, fmt.Errorf("cannot encode character %q", ch)
			}
			if ci > 0 {
				units = append(units, make([]int, charGapUnits)...)
			}
			for si, sym := range code {
				if si > 0 {
					units = append(units, make([]int, symbolGapUnits)...)
				}
				n := dotUnits
				if sym == '-' {
					n = dashUnits
				}
				for j := 0; j < n; j++ {
					units = append(units, 1)
				}
			}
		}
	}

	units = append(units, make([]int, k.cfg.Keyer.PadUnits)...)
	return units, nil
}

// Synthesize 把文本渲染为键控正弦波采样。
// 单位点长 = 1.2/WPM 秒 (业余无线电通用换算)
func (k *Keyer) Synthesize(text string) ([]float64, error) {
	units, err := k.KeySequence(text)
	if err != nil {
		return nil, err
	}

	unitSamples := int(1.2 / k.cfg.Keyer.WPM * float64(k.SampleRate))
	if unitSamples < 1 {
		return nil, fmt.Errorf("wpm %v too fast for sample rate %d", k.cfg.Keyer.WPM, k.SampleRate)
	}

	out := make([]float64, 0, len(units)*unitSamples)
	step := 2 * math.Pi * k.cfg.Keyer.Frequency / float64(k.SampleRate)
	phase := 0.0

	for _, on := range units {
		for i := 0; i < unitSamples; i++ {
			if on == 1 {
				out = append(out, k.cfg.Keyer.Amplitude*math.Sin(phase))
			} else {
				out = append(out, 0)
			}
			// 相位连续累积，键控边沿不产生额外跳变
			phase += step
		}
	}
	return out, nil
}
