package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Reason explains why a Result carries no data.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUpstream
	ReasonInvalidJSON
	ReasonUnexpectedShape
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUpstream:
		return "upstream_failure"
	case ReasonInvalidJSON:
		return "invalid_json"
	case ReasonUnexpectedShape:
		return "unexpected_shape"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Result is the outcome of structured-mode extraction.
// Items may be empty even when OK: the model returned an empty list.
type Result struct {
	Items  []any
	Reason Reason
	Err    error
}

func (r Result) OK() bool { return r.Reason == ReasonNone }

func failed(reason Reason, err error) Result {
	return Result{Items: []any{}, Reason: reason, Err: err}
}

// fenceCutset 去掉代码块标记与两端空白
const fenceCutset = "` \t\r\n"

// fenceLang 代码块标记后的语言标签
const fenceLang = "json"

// arrayOfObjects 在散文中查找第一个 "[ {...} ]" 形状的片段
var arrayOfObjects = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)

// Normalize extracts a JSON list from a free-text model reply.
// An object is flattened to its string values, in document order.
func Normalize(raw string) Result {
	content := strings.Trim(raw, fenceCutset)
	if strings.HasPrefix(strings.TrimSpace(raw), "`") && len(content) >= len(fenceLang) &&
		strings.EqualFold(content[:len(fenceLang)], fenceLang) {
		content = strings.TrimSpace(content[len(fenceLang):])
	}

	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		match := arrayOfObjects.FindString(content)
		if match == "" {
			return failed(ReasonInvalidJSON, err)
		}
		if err := json.Unmarshal([]byte(match), &parsed); err != nil {
			return failed(ReasonInvalidJSON, err)
		}
		content = match
	}

	switch v := parsed.(type) {
	case []any:
		return Result{Items: v}
	case map[string]any:
		values, err := stringValues([]byte(content))
		if err != nil {
			return failed(ReasonInvalidJSON, err)
		}
		return Result{Items: values}
	default:
		return failed(ReasonUnexpectedShape, fmt.Errorf("unexpected JSON value of type %T", parsed))
	}
}

// stringValues 按键首次出现的顺序收集字符串值，重复的键以最后一次的值为准
func stringValues(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected JSON object")
	}

	var keys []string
	fields := map[string]json.RawMessage{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if _, seen := fields[key]; !seen {
			keys = append(keys, key)
		}
		fields[key] = value
	}

	values := []any{}
	for _, key := range keys {
		var s string
		if err := json.Unmarshal(fields[key], &s); err == nil {
			values = append(values, s)
		}
	}
	return values, nil
}
