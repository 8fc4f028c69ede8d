package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"morse"
)

func main() {
	// 1. 解析命令行参数
	inputFile := flag.String("file", "", "Input wav file to decode")
	mode := flag.String("mode", "valid", "Convolution mode: valid or same")
	windowFraction := flag.Float64("window", 0.01, "Smoothing window length as a fraction of sample rate")
	encodeText := flag.String("encode", "", "Encode text into a wav file instead of decoding")
	outFile := flag.String("out", "cw.wav", "Output wav file for -encode")
	wpm := flag.Float64("wpm", 20, "Keying speed for -encode (words per minute)")
	flag.Parse()

	cfg := morse.DefaultConfig()
	cfg.Envelope.Mode = morse.ConvMode(*mode)
	cfg.Envelope.WindowFraction = *windowFraction
	cfg.Keyer.WPM = *wpm

	// 2. 发报模式
	if *encodeText != "" {
		if err := encodeToFile(*encodeText, *outFile, cfg); err != nil {
			log.Fatalf("Encode failed: %v", err)
		}
		fmt.Printf("Wrote %s\n", *outFile)
		return
	}

	if *inputFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	// 3. 读取并解码
	sampleRate, samples, err := morse.ReadWavFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "File %s could not be read: %v\n", *inputFile, err)
		os.Exit(1)
	}

	decoded, err := morse.NewBatchDecoder(cfg).Decode(sampleRate, samples)
	if err != nil {
		// 时序歧义属于数据质量问题，给用户友好提示而不是堆栈
		var ambiguous *morse.AmbiguousTimingError
		if errors.As(err, &ambiguous) {
			fmt.Fprintf(os.Stderr, "%v\n", ambiguous)
			os.Exit(1)
		}
		log.Fatalf("Decode failed: %v", err)
	}

	fmt.Println(decoded)
}

// encodeToFile 把文本合成为键控音频并写入 WAV 文件
func encodeToFile(text, filename string, cfg *morse.Config) error {
	const sampleRate = 8000

	keyer := morse.NewKeyer(sampleRate, cfg)
	samples, err := keyer.Synthesize(text)
	if err != nil {
		return err
	}

	w, err := morse.NewWavWriter(filename, sampleRate)
	if err != nil {
		return err
	}
	if err := w.WriteSamples(samples); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
