// Package rank 实现二分类特征排序：按判别力准则给每个特征行打分，
// 降序排序后截取 Top-K。
package rank

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vishnu1729/feature-rank/core"
	"github.com/vishnu1729/feature-rank/criterion"
	"github.com/vishnu1729/feature-rank/pkg/dsl"
)

// Entry 是单个特征的 (分数, 原始行索引) 对。
// 排序把 Entry 作为整体移动，分数与索引永不错位。
type Entry struct {
	Score float64
	Index int // 原始特征行索引（0 起）
}

// Result 是排序结果：Scores 与 Indices 按位置对齐。
// Scores 非递增（+Inf 在最前，NaN 在最后）；Indices 为 0 起的原始特征行索引。
type Result struct {
	Scores  []float64
	Indices []int
}

// Entries 把对齐的两个序列重组为 Entry 序列。
func (r *Result) Entries() []Entry {
	out := make([]Entry, len(r.Scores))
	for i := range r.Scores {
		out[i] = Entry{Score: r.Scores[i], Index: r.Indices[i]}
	}
	return out
}

// Option 配置 Ranker。
type Option func(*Ranker)

// WithCriterion 指定评分准则；缺省为 Fisher Score。
func WithCriterion(c criterion.Criterion) Option {
	return func(r *Ranker) { r.criterion = c }
}

// WithTopK 指定返回的特征数量。
// K <= 0 或 K 超过特征数时返回全部（与截断节点的惯例一致）。
func WithTopK(k int) Option {
	return func(r *Ranker) { r.topK = k }
}

// WithParallelism 指定并发打分的 goroutine 上限。
// <= 1 时串行。每个特征行的分数相互独立，并发只是大矩阵上的优化。
func WithParallelism(n int) Option {
	return func(r *Ranker) { r.parallelism = n }
}

// WithFilter 指定作用在排序结果上的 CEL 过滤表达式（见 pkg/dsl）。
// 过滤在 Top-K 截断之前执行：top_k 数的是通过过滤的条目。
func WithFilter(expr string) Option {
	return func(r *Ranker) { r.filter = expr }
}

// Ranker 是二分类特征排序器。零值可用（Fisher、全量、串行、不过滤）。
// Ranker 本身无状态，可并发使用；每次 Rank 调用只读借用输入。
type Ranker struct {
	criterion   criterion.Criterion
	topK        int
	parallelism int
	filter      string
}

// NewRanker 创建 Ranker。
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank 对矩阵的特征行按判别力排序。
//
// 控制流：校验输入 → 解析类划分 → 逐特征打分 → 稳定降序排序 →
// 过滤 → Top-K 截断。整个调用原子地成功或失败，不返回部分结果。
//
// 排序的全序：分数降序；NaN 排在一切非 NaN 之后；
// 分数相等（含 NaN 之间）保持原始特征索引升序（稳定排序）。
//
// TopK <= 0 或超过（过滤后的）条目数时返回全部，不报错。
func (r *Ranker) Rank(ctx context.Context, m *core.Matrix, labels any) (*Result, error) {
	if m == nil {
		return nil, core.NewDomainError(core.ModuleRank, core.ErrorCodeInvalidInput, "matrix is nil")
	}

	part, err := core.ResolveClasses(labels, m.Instances())
	if err != nil {
		return nil, err
	}

	// 过滤表达式先编译：无效表达式在打分之前就失败
	flt, err := dsl.NewFilter(r.filter)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleRank, core.ErrorCodeInvalidInput, err.Error())
	}

	crit := r.criterion
	if crit == nil {
		crit = criterion.Default()
	}

	scores, err := r.scoreAll(ctx, m, part, crit)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(scores))
	for i, s := range scores {
		entries[i] = Entry{Score: s, Index: i}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		si, sj := entries[i].Score, entries[j].Score
		if math.IsNaN(si) {
			return false
		}
		if math.IsNaN(sj) {
			return true
		}
		return si > sj
	})

	if r.filter != "" {
		kept := entries[:0]
		for pos, e := range entries {
			ok, err := flt.Keep(e.Score, e.Index, pos)
			if err != nil {
				return nil, core.NewDomainError(core.ModuleRank, core.ErrorCodeInvalidInput, err.Error())
			}
			if ok {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	if r.topK > 0 && r.topK < len(entries) {
		entries = entries[:r.topK]
	}

	res := &Result{
		Scores:  make([]float64, len(entries)),
		Indices: make([]int, len(entries)),
	}
	for i, e := range entries {
		res.Scores[i] = e.Score
		res.Indices[i] = e.Index
	}
	return res, nil
}

// scoreAll 逐特征行打分。parallelism > 1 时并发执行：
// 各行写入各自的下标，除 errgroup 外不需要其他同步。
func (r *Ranker) scoreAll(ctx context.Context, m *core.Matrix, part *core.Partition, crit criterion.Criterion) ([]float64, error) {
	scores := make([]float64, m.Features())

	scoreRow := func(i int) {
		a := m.Gather(i, part.ClassA)
		b := m.Gather(i, part.ClassB)
		scores[i] = crit.Score(a, b)
	}

	if r.parallelism <= 1 {
		for i := range scores {
			scoreRow(i)
		}
		return scores, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, r.parallelism)
	for i := range scores {
		row := i
		eg.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sem }()

			scoreRow(row)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// Rank 是包级便捷入口：从行切片构建矩阵并排序。
func Rank(ctx context.Context, rows [][]float64, labels any, opts ...Option) (*Result, error) {
	m, err := core.NewMatrix(rows)
	if err != nil {
		return nil, err
	}
	return NewRanker(opts...).Rank(ctx, m, labels)
}
