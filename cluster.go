package morse

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// kMeans1D 对一维时长数据做确定性 K-Means 聚类。
// 初始质心均匀分布在去重排序后的取值范围上 (k=2 取最小/最大，k=3 再加中位)，
// 相同输入必然得到相同划分。
// 返回升序排列的质心，以及每个数据点所属质心的名次 (0 = 质心最小的一类)。
// 聚类下标本身的顺序不保证稳定，语义角色一律按质心升序名次分配。
// 相邻质心比值低于 minSep 视为划分退化 (例如抖动把同一量级拆成了两类)
func kMeans1D(data []float64, k, maxIter int, minSep float64) (centroids []float64, labels []int, err error) {
	uniq := distinctSorted(data)
	if len(uniq) < k {
		return nil, nil, fmt.Errorf("only %d distinct durations for %d clusters", len(uniq), k)
	}

	// 从去重后的取值中取种子，保证初始质心互不相同
	centroids = make([]float64, k)
	for i := range centroids {
		centroids[i] = uniq[i*(len(uniq)-1)/(k-1)]
	}

	labels = make([]int, len(data))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, v := range data {
			best := 0
			bestDist := math.Abs(v - centroids[0])
			for j := 1; j < k; j++ {
				if d := math.Abs(v - centroids[j]); d < bestDist {
					bestDist = d
					best = j
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		// 重新计算质心
		groups := make([][]float64, k)
		for i, v := range data {
			groups[labels[i]] = append(groups[labels[i]], v)
		}
		for j := range centroids {
			if len(groups[j]) == 0 {
				return nil, nil, fmt.Errorf("cluster %d is empty, partition degenerate", j)
			}
			centroids[j] = stat.Mean(groups[j], nil)
		}
	}

	// 按质心升序重排标签语义
	sortedCentroids := append([]float64(nil), centroids...)
	inds := make([]int, k)
	floats.Argsort(sortedCentroids, inds)

	for i := 1; i < k; i++ {
		if sortedCentroids[i] < sortedCentroids[i-1]*minSep {
			return nil, nil, fmt.Errorf("centroids %.1f and %.1f not separable (ratio below %.1f)",
				sortedCentroids[i-1], sortedCentroids[i], minSep)
		}
	}

	rank := make([]int, k)
	for r, old := range inds {
		rank[old] = r
	}
	for i := range labels {
		labels[i] = rank[labels[i]]
	}

	return sortedCentroids, labels, nil
}

// ClassifyMarks 把 ON 游程时长聚为两类并映射为点划符号。
// 质心小的一类为点 (.)，大的一类为划 (-)。
// 无法分出两种量级时返回 *AmbiguousTimingError
func ClassifyMarks(onRuns []int, cfg *Config) (string, error) {
	data := intsToFloats(onRuns)

	_, labels, err := kMeans1D(data, 2, cfg.Cluster.MaxIterations, cfg.Cluster.MinSeparation)
	if err != nil {
		return "", &AmbiguousTimingError{Stage: "mark", Clusters: 2, Reason: err.Error()}
	}

	var sb strings.Builder
	sb.Grow(len(labels))
	for _, l := range labels {
		if l == 0 {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String(), nil
}

// ClassifySpaces 把 OFF 游程时长聚为三类并换算为断点下标。
// 质心升序依次为: 字符内间隔 (无断点)、字符间隔、单词间隔。
// 第 i 个间隔位于符号 i 与 i+1 之间，字符断点即符号序列中的插入位置 i+1。
// 单词间隔在追加字符断点之后记录 len(charBreaks)，
// 相当于在去除字符内间隔后的字符序列中重新编号。
// 无法分出三种量级时 (例如整条消息只有一个单词) 返回 *AmbiguousTimingError
func ClassifySpaces(offRuns []int, cfg *Config) (charBreaks, wordBreaks []int, err error) {
	data := intsToFloats(offRuns)

	_, labels, err := kMeans1D(data, 3, cfg.Cluster.MaxIterations, cfg.Cluster.MinSeparation)
	if err != nil {
		return nil, nil, &AmbiguousTimingError{Stage: "space", Clusters: 3, Reason: err.Error()}
	}

	for i, l := range labels {
		if l >= 1 {
			charBreaks = append(charBreaks, i+1)
		}
		if l == 2 {
			wordBreaks = append(wordBreaks, len(charBreaks))
		}
	}
	return charBreaks, wordBreaks, nil
}

func intsToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

func distinctSorted(data []float64) []float64 {
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	uniq := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			uniq = append(uniq, v)
		}
	}
	return uniq
}
