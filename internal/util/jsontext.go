package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// LLM 返回的内容不保证是合法 JSON，常见形态：
// 纯 JSON、markdown 代码块包裹、JSON 前后夹杂解释性文字。
// 这里统一做"从松散文本中提取结构化结果"的解析，失败由调用方降级处理。

var ErrNoJSONFound = errors.New("no JSON fragment found in text")

// ExtractJSONArray 截取文本中第一个 '[' 到与之配对的 ']' 的子串并解析到 v
func ExtractJSONArray(text string, v interface{}) error {
	fragment, err := extractDelimited(stripCodeFence(text), '[', ']')
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(fragment), v); err != nil {
		return fmt.Errorf("invalid JSON array fragment: %w", err)
	}
	return nil
}

// ExtractJSONObject 截取文本中第一个 '{' 到与之配对的 '}' 的子串并解析到 v
func ExtractJSONObject(text string, v interface{}) error {
	fragment, err := extractDelimited(stripCodeFence(text), '{', '}')
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(fragment), v); err != nil {
		return fmt.Errorf("invalid JSON object fragment: %w", err)
	}
	return nil
}

// stripCodeFence 去掉 ```json ... ``` 代码块标记
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		// 跳过语言标记行（如 json）
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// extractDelimited 返回 open 到配对 close 之间的子串（含两端），
// 用括号深度计数，忽略字符串字面量内的括号
func extractDelimited(text string, open, close byte) (string, error) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return "", ErrNoJSONFound
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSONFound
}
