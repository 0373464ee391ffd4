package core

import (
	"fmt"

	"github.com/vishnu1729/feature-rank/pkg/conv"
)

// Partition 是二分类标签解析出的列索引划分。
// 不变式：ClassA 与 ClassB 互不相交，并且并集覆盖全部实例列；
// 两类各至少 2 个成员（无偏样本方差的前置条件）。
//
// A/B 的次序：数值与布尔标签按升序（false < true），
// 字符串标签按首次出现顺序。两个评分准则对类次序对称，
// 次序只影响 Partition 内容本身，不影响任何分数。
type Partition struct {
	LabelA string // A 类的标准标签键
	LabelB string // B 类的标准标签键
	ClassA []int  // A 类实例的列索引（升序）
	ClassB []int  // B 类实例的列索引（升序）
}

// ResolveClasses 是标签归一化边界：把任一受支持的标签容器解析为两个列索引集合。
// 评分逻辑由此不再包含任何类型分支。
//
// 支持的容器：[]string、[]bool、[]int、[]int32、[]int64，以及元素为上述类型的 []any。
//
// 校验顺序（全部前置、有一失败即整体失败）：
//  1. 容器/元素类型           -> UNSUPPORTED_LABEL_TYPE
//  2. 标签长度 == instances   -> SHAPE_MISMATCH
//  3. 恰好两个不同取值        -> TOO_FEW_CLASSES / TOO_MANY_CLASSES
//  4. 每类至少 2 个成员        -> DEGENERATE_CLASS
func ResolveClasses(labels any, instances int) (*Partition, error) {
	values, err := normalizeLabels(labels)
	if err != nil {
		return nil, err
	}
	if len(values) != instances {
		return nil, NewDomainError(ModuleCore, ErrorCodeShapeMismatch,
			fmt.Sprintf("labels length %d does not match %d matrix instances", len(values), instances))
	}

	// 按首次出现顺序收集不同取值
	var distinct []conv.LabelValue
	seen := make(map[string]bool, 2)
	for _, v := range values {
		if !seen[v.Key] {
			seen[v.Key] = true
			distinct = append(distinct, v)
		}
	}
	if len(distinct) < 2 {
		return nil, NewDomainError(ModuleCore, ErrorCodeTooFewClasses,
			fmt.Sprintf("labels resolve to %d distinct value(s), need exactly 2", len(distinct)))
	}
	if len(distinct) > 2 {
		return nil, NewDomainError(ModuleCore, ErrorCodeTooManyClasses,
			fmt.Sprintf("labels resolve to %d distinct values, need exactly 2", len(distinct)))
	}

	a, b := distinct[0], distinct[1]
	if a.Numeric && b.Numeric && b.Ord < a.Ord {
		a, b = b, a
	}

	p := &Partition{LabelA: a.Key, LabelB: b.Key}
	for i, v := range values {
		if v.Key == a.Key {
			p.ClassA = append(p.ClassA, i)
		} else {
			p.ClassB = append(p.ClassB, i)
		}
	}

	if len(p.ClassA) < 2 || len(p.ClassB) < 2 {
		return nil, NewDomainError(ModuleCore, ErrorCodeDegenerateClass,
			fmt.Sprintf("class %q has %d member(s) and class %q has %d, sample variance needs at least 2 each",
				p.LabelA, len(p.ClassA), p.LabelB, len(p.ClassB)))
	}
	return p, nil
}

// normalizeLabels 把标签容器逐元素归一化为 LabelValue 序列。
func normalizeLabels(labels any) ([]conv.LabelValue, error) {
	switch ls := labels.(type) {
	case []string:
		out := make([]conv.LabelValue, len(ls))
		for i, s := range ls {
			out[i] = conv.LabelValue{Key: s}
		}
		return out, nil
	case []bool:
		return convertAll(ls)
	case []int:
		return convertAll(ls)
	case []int32:
		return convertAll(ls)
	case []int64:
		return convertAll(ls)
	case []any:
		out := make([]conv.LabelValue, len(ls))
		for i, v := range ls {
			lv, ok := conv.ToLabelValue(v)
			if !ok {
				return nil, NewDomainError(ModuleCore, ErrorCodeUnsupportedLabelType,
					fmt.Sprintf("label element %d has unsupported type %s", i, conv.FormatLabelKind(v)))
			}
			out[i] = lv
		}
		// 字符串与数值混用没有一致的类次序，按不支持处理
		for i := 1; i < len(out); i++ {
			if out[i].Numeric != out[0].Numeric {
				return nil, NewDomainError(ModuleCore, ErrorCodeUnsupportedLabelType,
					"labels mix categorical and numeric element types")
			}
		}
		return out, nil
	default:
		return nil, NewDomainError(ModuleCore, ErrorCodeUnsupportedLabelType,
			fmt.Sprintf("unsupported label container type %s", conv.FormatLabelKind(labels)))
	}
}

func convertAll[T any](ls []T) ([]conv.LabelValue, error) {
	out := make([]conv.LabelValue, len(ls))
	for i, v := range ls {
		lv, ok := conv.ToLabelValue(v)
		if !ok {
			return nil, NewDomainError(ModuleCore, ErrorCodeUnsupportedLabelType,
				fmt.Sprintf("label element %d has unsupported type %s", i, conv.FormatLabelKind(v)))
		}
		out[i] = lv
	}
	return out, nil
}
