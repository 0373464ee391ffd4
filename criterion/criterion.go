// Package criterion 定义单特征判别力评分准则及其命名注册表。
//
// 评分的输入是按类切分好的两个取值向量（由 core.ResolveClasses 归一化），
// 评分内部没有任何标签类型分支。
package criterion

import (
	"fmt"
	"sort"
	"sync"
)

// Criterion 对单个特征行打分：classA/classB 是该行在两类实例列上的取值。
// 分数越大判别力越强。
//
// 零分母策略（两类均为常数时）：
//   - 分子 > 0：返回 +Inf（完美分离，排序时排在一切有限分数之前）
//   - 分子 = 0：返回 NaN（无信息，排序时排在一切有限分数之后）
type Criterion interface {
	Name() string
	Score(classA, classB []float64) float64
}

// 内置准则名称
const (
	NameFisher         = "fisher"
	NameDiscriminating = "discriminating"
)

var (
	builders   = make(map[string]func() Criterion)
	buildersMu sync.RWMutex
)

// Register 注册一种评分准则的构建逻辑，供配置驱动使用。
// 建议在各实现的 init 中调用，例如：func init() { criterion.Register(NameFisher, ...) }
func Register(name string, builder func() Criterion) {
	if name == "" || builder == nil {
		return
	}
	buildersMu.Lock()
	defer buildersMu.Unlock()
	builders[name] = builder
}

// Get 按名称构建准则；未注册的名称返回包含已支持列表的错误。
func Get(name string) (Criterion, error) {
	buildersMu.RLock()
	builder, ok := builders[name]
	buildersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported criterion %q (supported: %v)", name, Supported())
	}
	return builder(), nil
}

// Supported 返回当前已注册的准则名称列表（排序），用于错误提示与校验。
func Supported() []string {
	buildersMu.RLock()
	defer buildersMu.RUnlock()
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default 返回默认准则（Fisher Score）。
func Default() Criterion {
	return Fisher{}
}

func init() {
	Register(NameFisher, func() Criterion { return Fisher{} })
	Register(NameDiscriminating, func() Criterion { return Discriminating{} })
}
