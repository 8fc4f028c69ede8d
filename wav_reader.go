package morse

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// WAV fmt chunk 中的音频格式编码
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// ReadWavFile 读取 WAV 文件并返回采样率与第一个声道的全部采样。
// 支持 8/16/32-bit PCM 以及 32-bit IEEE float，多声道时只取第一个声道。
// 返回的采样保持原始量纲 (不归一化)，解码阈值是相对量，不受影响
func ReadWavFile(filename string) (sampleRate int, samples []float64, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	// 读取 RIFF 头
	riffHeader := make([]byte, 12)
	if _, err := io.ReadFull(f, riffHeader); err != nil {
		return 0, nil, fmt.Errorf("invalid wav file: %w", err)
	}
	if string(riffHeader[0:4]) != "RIFF" || string(riffHeader[8:12]) != "WAVE" {
		return 0, nil, fmt.Errorf("invalid wav file: missing RIFF/WAVE header")
	}

	var (
		audioFormat   int
		channels      int
		bitsPerSample int
		data          []byte
		foundFmt      bool
	)

	for {
		chunkHeader := make([]byte, 8)
		if _, err := io.ReadFull(f, chunkHeader); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return 0, nil, err
		}

		chunkID := string(chunkHeader[0:4])
		chunkSize := binary.LittleEndian.Uint32(chunkHeader[4:8])

		// Pad byte if chunk size is odd
		padding := int64(chunkSize % 2)

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return 0, nil, fmt.Errorf("invalid wav file: fmt chunk too small")
			}
			fmtData := make([]byte, chunkSize)
			if _, err := io.ReadFull(f, fmtData); err != nil {
				return 0, nil, err
			}
			audioFormat = int(binary.LittleEndian.Uint16(fmtData[0:2]))
			channels = int(binary.LittleEndian.Uint16(fmtData[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(fmtData[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(fmtData[14:16]))
			foundFmt = true
			if padding > 0 {
				if _, err := f.Seek(padding, io.SeekCurrent); err != nil {
					return 0, nil, err
				}
			}
		case "data":
			data = make([]byte, chunkSize)
			if _, err := io.ReadFull(f, data); err != nil {
				return 0, nil, fmt.Errorf("truncated data chunk: %w", err)
			}
			if padding > 0 {
				if _, err := f.Seek(padding, io.SeekCurrent); err != nil {
					return 0, nil, err
				}
			}
		default:
			// Skip unknown chunk
			if _, err := f.Seek(int64(chunkSize)+padding, io.SeekCurrent); err != nil {
				return 0, nil, err
			}
		}
	}

	if !foundFmt || data == nil {
		return 0, nil, fmt.Errorf("invalid wav file: missing fmt or data chunk")
	}
	if channels < 1 {
		return 0, nil, fmt.Errorf("invalid wav file: %d channels", channels)
	}

	samples, err = decodePCM(data, audioFormat, bitsPerSample, channels)
	if err != nil {
		return 0, nil, err
	}
	return sampleRate, samples, nil
}

// decodePCM 把原始 data chunk 解码为 float64 采样 (只取第一个声道)
func decodePCM(data []byte, audioFormat, bitsPerSample, channels int) ([]float64, error) {
	bytesPerSample := bitsPerSample / 8
	if bytesPerSample == 0 {
		return nil, fmt.Errorf("invalid bits per sample %d", bitsPerSample)
	}

	frameSize := bytesPerSample * channels
	numFrames := len(data) / frameSize
	out := make([]float64, numFrames)

	switch {
	case audioFormat == wavFormatPCM && bitsPerSample == 8:
		// 8-bit PCM 为无符号，中心值 128
		for i := 0; i < numFrames; i++ {
			out[i] = float64(int(data[i*frameSize]) - 128)
		}
	case audioFormat == wavFormatPCM && bitsPerSample == 16:
		for i := 0; i < numFrames; i++ {
			v := int16(binary.LittleEndian.Uint16(data[i*frameSize:]))
			out[i] = float64(v)
		}
	case audioFormat == wavFormatPCM && bitsPerSample == 32:
		for i := 0; i < numFrames; i++ {
			v := int32(binary.LittleEndian.Uint32(data[i*frameSize:]))
			out[i] = float64(v)
		}
	case audioFormat == wavFormatFloat && bitsPerSample == 32:
		for i := 0; i < numFrames; i++ {
			bits := binary.LittleEndian.Uint32(data[i*frameSize:])
			out[i] = float64(math.Float32frombits(bits))
		}
	default:
		return nil, fmt.Errorf("unsupported wav format: format %d, %d bits", audioFormat, bitsPerSample)
	}

	return out, nil
}
