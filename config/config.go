// Package config 提供配置驱动的 Ranker 构建（支持 YAML/JSON）。
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vishnu1729/feature-rank/criterion"
	"github.com/vishnu1729/feature-rank/pkg/conv"
	"github.com/vishnu1729/feature-rank/rank"
)

// Config 是排序器的配置结构（支持 YAML/JSON）。
type Config struct {
	Ranker RankerConfig `yaml:"ranker" json:"ranker"`
}

// RankerConfig 是单个 Ranker 的配置。
type RankerConfig struct {
	Criterion   string `yaml:"criterion" json:"criterion"`     // fisher / discriminating，空值表示默认（fisher）
	TopK        int    `yaml:"top_k" json:"top_k"`             // <= 0 表示返回全部
	Parallelism int    `yaml:"parallelism" json:"parallelism"` // <= 1 表示串行打分
	Filter      string `yaml:"filter" json:"filter"`           // 排序结果的 CEL 过滤表达式，可为空
}

// LoadFromYAML 从 YAML 文件加载配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// LoadFromJSON 从 JSON 文件加载配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &cfg, nil
}

// FromMap 从 map[string]any（如上层已解析好的 YAML/JSON 片段）构建配置。
// 键名与 RankerConfig 的标签一致；缺失或类型不符的键取零值默认。
// YAML/JSON 解码出的数值可能是 int、int64 或 float64，此处统一兼容。
func FromMap(m map[string]any) *Config {
	return &Config{Ranker: RankerConfig{
		Criterion:   conv.ConfigGet[string](m, "criterion", ""),
		TopK:        conv.ConfigGetInt(m, "top_k", 0),
		Parallelism: conv.ConfigGetInt(m, "parallelism", 0),
		Filter:      conv.ConfigGet[string](m, "filter", ""),
	}}
}

// Build 根据配置构建 Ranker（准则名称经由 criterion 注册表解析，
// 未注册的名称返回包含已支持列表的错误）。
func (c *Config) Build() (*rank.Ranker, error) {
	opts := []rank.Option{
		rank.WithTopK(c.Ranker.TopK),
		rank.WithParallelism(c.Ranker.Parallelism),
		rank.WithFilter(c.Ranker.Filter),
	}
	if c.Ranker.Criterion != "" {
		crit, err := criterion.Get(c.Ranker.Criterion)
		if err != nil {
			return nil, fmt.Errorf("build ranker: %w", err)
		}
		opts = append(opts, rank.WithCriterion(crit))
	}
	return rank.NewRanker(opts...), nil
}
