package morse

import (
	"strings"
	"sync"
)

// UnknownMark 用于替换查表失败的点划组合。
// 故意选用电码表中不存在的字符，保证不会与正常译文 (含标点 "?") 混淆。
// 查表失败的字符绝不静默丢弃
const UnknownMark = "#"

// charToMorse 定义字符到电码的静态映射，发报 (Keyer) 与译码反查表共用
var charToMorse = map[string]string{
	// 字母
	"A": ".-", "B": "-...", "C": "-.-.", "D": "-..", "E": ".",
	"F": "..-.", "G": "--.", "H": "....", "I": "..", "J": ".---",
	"K": "-.-", "L": ".-..", "M": "--", "N": "-.", "O": "---",
	"P": ".--.", "Q": "--.-", "R": ".-.", "S": "...", "T": "-",
	"U": "..-", "V": "...-", "W": ".--", "X": "-..-", "Y": "-.--",
	"Z": "--..",
	// 数字
	"1": ".----", "2": "..---", "3": "...--", "4": "....-", "5": ".....",
	"6": "-....", "7": "--...", "8": "---..", "9": "----.", "0": "-----",
	// 标点符号
	".": ".-.-.-", // Period
	",": "--..--", // Comma
	"?": "..--..", // Question Mark
	"/": "-..-.",  // Slash
	"=": "-...-",  // BT (Break / Pause)
	"+": ".-.-.",  // AR (End of Message)
	"-": "-....-", // Hyphen
}

var (
	morseToCharOnce sync.Once
	morseToChar     map[string]string
)

// morseTable 返回电码到字符的反查表。
// 首次调用时由 charToMorse 构建一次，之后只读共享，并发解码可安全复用
func morseTable() map[string]string {
	morseToCharOnce.Do(func() {
		morseToChar = make(map[string]string, len(charToMorse))
		for ch, code := range charToMorse {
			morseToChar[code] = ch
		}
	})
	return morseToChar
}

// Translate 把单词列表译为明文。
// 单词内的字符直接拼接，单词之间以单个空格分隔。
// 查表失败的点划组合替换为 UnknownMark
func Translate(words [][]string) string {
	table := morseTable()

	out := make([]string, len(words))
	for i, word := range words {
		var sb strings.Builder
		for _, code := range word {
			if ch, ok := table[code]; ok {
				sb.WriteString(ch)
			} else {
				sb.WriteString(UnknownMark)
			}
		}
		out[i] = sb.String()
	}
	return strings.Join(out, " ")
}
