package morse

import (
	"errors"
	"fmt"
)

// 输入数据不合法时返回的哨兵错误
var (
	// ErrEmptySignal 输入信号为空
	ErrEmptySignal = errors.New("empty signal")
	// ErrNoTransitions 键控序列中没有任何音调 (无上升/下降沿)
	ErrNoTransitions = errors.New("keying sequence has no transitions")
	// ErrSignalTooShort 信号长度不足一个平滑窗口
	ErrSignalTooShort = errors.New("signal shorter than one smoothing window")
)

// AmbiguousTimingError 表示时长聚类无法可靠地分离出期望数量的类别。
// 例如点划时长只有一种量级，或间隔数据中不存在单词间隔。
// 这是数据质量问题而非程序错误，必须原样传递给调用方，
// 由命令行层捕获后以友好信息提示用户。
type AmbiguousTimingError struct {
	Stage    string // 出错的分类阶段: "mark" (点划) 或 "space" (间隔)
	Clusters int    // 期望的时长类别数量
	Reason   string // 失败原因 (量级不足、空聚类等)
}

func (e *AmbiguousTimingError) Error() string {
	return fmt.Sprintf("ambiguous %s timing: cannot separate %d duration classes: %s",
		e.Stage, e.Clusters, e.Reason)
}
