// Package featurerank 是一个二分类特征选择工具包（Feature Ranking Kit）。
//
// 设计要点：
// - 纯函数：给定 特征 × 实例 矩阵与标签向量，返回按判别力降序的 (分数, 索引)
// - 归一化边界：任一受支持的标签表示在 core.ResolveClasses 收敛为两个列索引集合
// - 准则可扩展：实现 criterion.Criterion 并注册名称即可被配置驱动
package featurerank

import (
	"github.com/vishnu1729/feature-rank/core"
	"github.com/vishnu1729/feature-rank/criterion"
	"github.com/vishnu1729/feature-rank/rank"
)

// 轻量 facade：便于用户直接 import 根包使用核心抽象。
type Matrix = core.Matrix
type Partition = core.Partition
type Criterion = criterion.Criterion
type Ranker = rank.Ranker
type Result = rank.Result
type Entry = rank.Entry

const (
	CriterionFisher         = criterion.NameFisher
	CriterionDiscriminating = criterion.NameDiscriminating
)
