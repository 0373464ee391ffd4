package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/vishnu1729/feature-rank/pkg/conv"
)

// Matrix 是特征 × 实例 的二维数值矩阵：行是特征，列是实例。
// 排序器只读借用底层数据，不做拷贝也不做修改；调用方在 Rank 调用期间
// 不应并发修改底层切片。
type Matrix struct {
	rows      [][]float64
	instances int
}

// NewMatrix 从行切片构建 Matrix 并做形状校验：
//   - 至少一个特征行
//   - 每行长度一致（否则 SHAPE_MISMATCH）
//   - 至少两个实例列
func NewMatrix(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, NewDomainError(ModuleCore, ErrorCodeInvalidInput,
			"matrix needs at least one feature row")
	}
	instances := len(rows[0])
	for i, row := range rows {
		if len(row) != instances {
			return nil, NewDomainError(ModuleCore, ErrorCodeShapeMismatch,
				fmt.Sprintf("feature row %d has %d instances, row 0 has %d", i, len(row), instances))
		}
	}
	if instances < 2 {
		return nil, NewDomainError(ModuleCore, ErrorCodeInvalidInput,
			fmt.Sprintf("matrix needs at least 2 instance columns, got %d", instances))
	}
	return &Matrix{rows: rows, instances: instances}, nil
}

// NewMatrixAny 从动态解码的行（如 JSON/YAML 得到的 []any）构建 Matrix。
// 元素经 conv.ToFloat64 归一化（整数、浮点与 bool），
// 无法转换的元素报 INVALID_INPUT。形状校验与 NewMatrix 相同。
func NewMatrixAny(rows [][]any) (*Matrix, error) {
	converted := make([][]float64, len(rows))
	for i, row := range rows {
		converted[i] = make([]float64, len(row))
		for j, v := range row {
			f, ok := conv.ToFloat64(v)
			if !ok {
				return nil, NewDomainError(ModuleCore, ErrorCodeInvalidInput,
					fmt.Sprintf("matrix element (%d, %d) has non-numeric type %s", i, j, conv.FormatLabelKind(v)))
			}
			converted[i][j] = f
		}
	}
	return NewMatrix(converted)
}

// FromDense 从 gonum 的 *mat.Dense（特征 × 实例）构建 Matrix。
// 行数据通过 mat.Row 拷贝，之后与原 Dense 互不影响。
func FromDense(d *mat.Dense) (*Matrix, error) {
	r, _ := d.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = mat.Row(nil, i, d)
	}
	return NewMatrix(rows)
}

// Features 返回特征（行）数
func (m *Matrix) Features() int { return len(m.rows) }

// Instances 返回实例（列）数
func (m *Matrix) Instances() int { return m.instances }

// Row 返回第 i 个特征行（共享底层数组，调用方只读）
func (m *Matrix) Row(i int) []float64 { return m.rows[i] }

// Gather 取出第 i 个特征行在给定列上的取值，用于按类抽取子向量。
func (m *Matrix) Gather(i int, cols []int) []float64 {
	out := make([]float64, len(cols))
	row := m.rows[i]
	for j, c := range cols {
		out[j] = row[c]
	}
	return out
}
