package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在最后一个空格处断行
//   - 如果单词太长超过最大宽度，在字符处强制断行
//   - 支持中文和英文混合文本（按 rune 遍历）
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		textStr = textStr[size:]
		char := string(r)

		testLine := currentLine + char
		if measureTextWidth(testLine, font) <= maxWidth {
			currentLine = testLine
			continue
		}

		switch {
		case currentLine == "":
			// 单个字符就超宽，独占一行
			lines = append(lines, char)
		case r == ' ':
			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = ""
		case strings.LastIndexByte(currentLine, ' ') > 0:
			// 在最后一个空格处断开，剩余部分带到下一行
			cut := strings.LastIndexByte(currentLine, ' ')
			lines = append(lines, strings.TrimSpace(currentLine[:cut]))
			currentLine = strings.TrimLeft(currentLine[cut+1:]+char, " ")
		default:
			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = strings.TrimLeft(char, " ")
		}
	}

	if currentLine != "" {
		lines = append(lines, strings.TrimSpace(currentLine))
	}
	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}
