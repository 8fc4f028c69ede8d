package morse

// ConvMode 指定包络卷积的输出模式
type ConvMode string

const (
	// ConvValid 只输出平滑窗口与信号完全重叠的位置 (输出长度 = n - w + 1)
	ConvValid ConvMode = "valid"
	// ConvSame 输出与输入等长的结果 (边缘由部分重叠隐式补齐)
	ConvSame ConvMode = "same"
)

// Config 结构体用于集中管理解码器的所有可调参数
type Config struct {
	// --- 包络提取 (Envelope) ---
	// 负责把原始波形转换为平滑的 RMS 功率包络
	Envelope struct {
		WindowFraction float64  // 平滑窗口长度占采样率的比例 (例如 0.01 即 10ms 窗口)
		Mode           ConvMode // 卷积模式，"valid" 或 "same"
	}

	// --- 时长聚类 (Cluster) ---
	// 负责把 ON/OFF 游程时长划分为点/划与三类间隔
	Cluster struct {
		MaxIterations int     // K-Means 最大迭代次数。一维数据通常几轮即收敛，这里只是兜底
		MinSeparation float64 // 相邻质心的最小比值。标准时序相邻类别比值为 3 或 7/3，低于此值视为划分退化
	}

	// --- 发报 (Keyer) ---
	// 仅用于合成测试信号和 -encode 模式，不参与解码
	Keyer struct {
		Frequency float64 // 音调频率 (Hz)
		WPM       float64 // 发报速度 (words per minute)。单位点长 = 1.2/WPM 秒
		Amplitude float64 // 峰值振幅 (0.0 ~ 1.0)
		PadUnits  int     // 首尾静音填充的单位数
	}
}

// DefaultConfig 返回一个包含当前最佳实践的默认配置
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Envelope.WindowFraction = 0.01 // 10ms 窗口
	cfg.Envelope.Mode = ConvValid

	cfg.Cluster.MaxIterations = 50
	cfg.Cluster.MinSeparation = 1.5

	cfg.Keyer.Frequency = 600.0
	cfg.Keyer.WPM = 20.0
	cfg.Keyer.Amplitude = 0.8
	cfg.Keyer.PadUnits = 2

	return cfg
}
