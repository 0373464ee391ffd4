// Package conv 提供标签元素与配置值的类型归一化工具，用于收敛各模块中的类型分支。
package conv

import (
	"fmt"
	"strconv"
)

// LabelValue 是单个标签元素归一化后的标准形式。
// Key 用于判同与展示；Numeric 为 true 时 Ord 给出数值序（布尔按 false < true）。
type LabelValue struct {
	Key     string
	Ord     float64
	Numeric bool
}

// ToLabelValue 将 any 归一化为 LabelValue。
// 支持 string、bool 以及有符号整数；其他类型返回 (zero, false)。
func ToLabelValue(v any) (LabelValue, bool) {
	if v == nil {
		return LabelValue{}, false
	}
	switch val := v.(type) {
	case string:
		return LabelValue{Key: val}, true
	case bool:
		if val {
			return LabelValue{Key: "true", Ord: 1, Numeric: true}, true
		}
		return LabelValue{Key: "false", Ord: 0, Numeric: true}, true
	case int:
		return intLabel(int64(val)), true
	case int64:
		return intLabel(val), true
	case int32:
		return intLabel(int64(val)), true
	case int16:
		return intLabel(int64(val)), true
	case int8:
		return intLabel(int64(val)), true
	default:
		return LabelValue{}, false
	}
}

func intLabel(v int64) LabelValue {
	return LabelValue{Key: strconv.FormatInt(v, 10), Ord: float64(v), Numeric: true}
}

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}

// ConfigGet 从 map[string]any（如 YAML/JSON 解析结果）按 key 取 T，取不到或类型不符时返回 defaultVal。
func ConfigGet[T any](m map[string]any, key string, defaultVal T) T {
	if m == nil {
		return defaultVal
	}
	v, ok := m[key]
	if !ok {
		return defaultVal
	}
	t, ok := v.(T)
	if !ok {
		return defaultVal
	}
	return t
}

// ConfigGetInt 从 config 取 int。YAML/JSON 常得到 int、int64 或 float64，此处兼容并统一为 int。
func ConfigGetInt(m map[string]any, key string, defaultVal int) int {
	if m == nil {
		return defaultVal
	}
	v, ok := m[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case float32:
		return int(val)
	default:
		return defaultVal
	}
}

// FormatLabelKind 返回标签元素类型的可读名称，用于错误消息。
func FormatLabelKind(v any) string {
	return fmt.Sprintf("%T", v)
}
