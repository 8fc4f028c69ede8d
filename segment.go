package morse

// SplitWords 按断点把扁平的点划符号序列切分为单词。
// 断点下标 i 表示"紧邻位置 i 之前存在边界"，首尾段由序列两端隐式界定。
// charBreaks 是符号序列中的断点，wordBreaks 是字符序列中的断点，均要求升序
func SplitWords(symbols string, charBreaks, wordBreaks []int) [][]string {
	charStarts := append([]int{0}, charBreaks...)
	charEnds := append(append([]int(nil), charBreaks...), len(symbols))

	chars := make([]string, len(charStarts))
	for i := range charStarts {
		chars[i] = symbols[charStarts[i]:charEnds[i]]
	}

	wordStarts := append([]int{0}, wordBreaks...)
	wordEnds := append(append([]int(nil), wordBreaks...), len(chars))

	words := make([][]string, len(wordStarts))
	for i := range wordStarts {
		words[i] = chars[wordStarts[i]:wordEnds[i]]
	}
	return words
}
