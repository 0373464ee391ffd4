package core

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]float64
		wantErr   func(error) bool
		features  int
		instances int
	}{
		{
			name:      "valid 2x4",
			rows:      [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}},
			features:  2,
			instances: 4,
		},
		{
			name:    "no rows",
			rows:    nil,
			wantErr: IsInvalidInput,
		},
		{
			name:    "single instance column",
			rows:    [][]float64{{1}, {2}},
			wantErr: IsInvalidInput,
		},
		{
			name:    "ragged rows",
			rows:    [][]float64{{1, 2, 3}, {4, 5}},
			wantErr: IsShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatrix(tt.rows)
			if tt.wantErr != nil {
				if err == nil || !tt.wantErr(err) {
					t.Fatalf("NewMatrix() error = %v, want domain error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewMatrix() error = %v", err)
			}
			if m.Features() != tt.features || m.Instances() != tt.instances {
				t.Errorf("dims = (%d, %d), want (%d, %d)", m.Features(), m.Instances(), tt.features, tt.instances)
			}
		})
	}
}

func TestNewMatrixAny(t *testing.T) {
	t.Run("mixed numeric element types", func(t *testing.T) {
		m, err := NewMatrixAny([][]any{
			{1, int64(2), 3.5, float32(4)},
			{int32(5), 6.0, 7, 8},
		})
		if err != nil {
			t.Fatalf("NewMatrixAny() error = %v", err)
		}
		if want := []float64{1, 2, 3.5, 4}; !reflect.DeepEqual(m.Row(0), want) {
			t.Errorf("Row(0) = %v, want %v", m.Row(0), want)
		}
	})

	t.Run("non-numeric element", func(t *testing.T) {
		_, err := NewMatrixAny([][]any{{1, 2, "x", 4}})
		if err == nil || !IsInvalidInput(err) {
			t.Fatalf("NewMatrixAny() error = %v, want INVALID_INPUT", err)
		}
	})

	t.Run("shape checks still apply", func(t *testing.T) {
		_, err := NewMatrixAny([][]any{{1, 2, 3}, {4, 5}})
		if err == nil || !IsShapeMismatch(err) {
			t.Fatalf("NewMatrixAny() error = %v, want SHAPE_MISMATCH", err)
		}
	})
}

func TestFromDense(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	m, err := FromDense(d)
	if err != nil {
		t.Fatalf("FromDense() error = %v", err)
	}
	if m.Features() != 2 || m.Instances() != 3 {
		t.Fatalf("dims = (%d, %d), want (2, 3)", m.Features(), m.Instances())
	}
	if got, want := m.Row(1), []float64{4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("Row(1) = %v, want %v", got, want)
	}

	// 行数据是拷贝：修改原 Dense 不影响 Matrix
	d.Set(1, 0, 99)
	if m.Row(1)[0] != 4 {
		t.Errorf("Row(1)[0] = %v after mutating source, want 4", m.Row(1)[0])
	}
}

func TestMatrix_Gather(t *testing.T) {
	m, err := NewMatrix([][]float64{{10, 20, 30, 40}})
	if err != nil {
		t.Fatalf("NewMatrix() error = %v", err)
	}
	got := m.Gather(0, []int{3, 1})
	if want := []float64{40, 20}; !reflect.DeepEqual(got, want) {
		t.Errorf("Gather() = %v, want %v", got, want)
	}
}
