package morse

import "testing"

func TestSplitWordsHelloWorld(t *testing.T) {
	// HELLO WORLD 的扁平符号序列与断点
	// H=.... E=. L=.-.. L=.-.. O=--- | W=.-- O=--- R=.-. L=.-.. D=-..
	symbols := "...." + "." + ".-.." + ".-.." + "---" + ".--" + "---" + ".-." + ".-.." + "-.."
	charBreaks := []int{4, 5, 9, 13, 16, 19, 22, 25, 29}
	wordBreaks := []int{5}

	words := SplitWords(symbols, charBreaks, wordBreaks)

	want := [][]string{
		{"....", ".", ".-..", ".-..", "---"},
		{".--", "---", ".-.", ".-..", "-.."},
	}
	if len(words) != len(want) {
		t.Fatalf("words: got %d, want %d", len(words), len(want))
	}
	for i := range want {
		if len(words[i]) != len(want[i]) {
			t.Fatalf("word %d: got %v, want %v", i, words[i], want[i])
		}
		for j := range want[i] {
			if words[i][j] != want[i][j] {
				t.Errorf("word %d char %d: got %q, want %q", i, j, words[i][j], want[i][j])
			}
		}
	}

	if decoded := Translate(words); decoded != "HELLO WORLD" {
		t.Errorf("translated: got %q, want %q", decoded, "HELLO WORLD")
	}
}

func TestSplitWordsNoBreaks(t *testing.T) {
	// 没有断点时整个序列是一个单词的一个字符
	words := SplitWords("...", nil, nil)

	if len(words) != 1 || len(words[0]) != 1 || words[0][0] != "..." {
		t.Errorf("got %v, want [[...]]", words)
	}
}
