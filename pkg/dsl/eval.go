package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("score", cel.DoubleType), // 特征分数（可能为 +Inf 或 NaN）
		cel.Variable("index", cel.IntType),    // 原始特征行索引（0 起）
		cel.Variable("rank", cel.IntType),     // 排序后的名次（0 起）
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	if celEnv == nil && err == nil {
		err = fmt.Errorf("cel env not initialized")
	}
	return celEnv, err
}

// Filter 是排序结果的过滤 DSL，使用 CEL (Common Expression Language) 实现。
// 表达式在 NewFilter 中编译一次，之后可对每个条目反复调用 Keep。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：score > 0.7 / score >= 0.5
//   - 名次：rank < 10
//   - 原始索引：index != 3
//   - 逻辑：score > 0.7 && rank < 20
//
// 示例：
//   - `score > 1.0` → 只保留分数大于 1.0 的特征
//   - `rank < 5 || index == 0` → 前 5 名，外加第 0 号特征
type Filter struct {
	prg cel.Program
}

// NewFilter 编译过滤表达式。空表达式返回保留一切的过滤器。
func NewFilter(expr string) (*Filter, error) {
	if expr == "" {
		return &Filter{}, nil
	}
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env error: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}
	return &Filter{prg: prg}, nil
}

// Keep 对单个排序条目求值，返回是否保留。
// 表达式必须返回布尔值，否则报错。
func (f *Filter) Keep(score float64, index, rank int) (bool, error) {
	if f.prg == nil {
		return true, nil
	}

	out, _, err := f.prg.Eval(map[string]any{
		"score": score,
		"index": index,
		"rank":  rank,
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}
