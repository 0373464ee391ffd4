package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有输入校验错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 形状错误：SHAPE_MISMATCH
//   - 标签错误：UNSUPPORTED_LABEL_TYPE, TOO_FEW_CLASSES, TOO_MANY_CLASSES
//   - 统计前置条件：DEGENERATE_CLASS
type DomainError struct {
	Code    string // 错误代码（如 "SHAPE_MISMATCH", "TOO_MANY_CLASSES"）
	Message string // 错误消息
	Module  string // 模块名称（如 "core", "rank"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// 错误代码常量
const (
	ErrorCodeShapeMismatch        = "SHAPE_MISMATCH"         // 标签长度与矩阵实例数不一致，或矩阵行长不齐
	ErrorCodeUnsupportedLabelType = "UNSUPPORTED_LABEL_TYPE" // 标签容器或元素类型不受支持
	ErrorCodeTooFewClasses        = "TOO_FEW_CLASSES"        // 标签中不足两个不同取值
	ErrorCodeTooManyClasses       = "TOO_MANY_CLASSES"       // 标签中超过两个不同取值
	ErrorCodeDegenerateClass      = "DEGENERATE_CLASS"       // 某一类成员数不足以计算样本方差
	ErrorCodeInvalidInput         = "INVALID_INPUT"          // 其他无效输入
)

// 模块名称常量
const (
	ModuleCore      = "core"      // 核心数据模块
	ModuleCriterion = "criterion" // 评分准则模块
	ModuleRank      = "rank"      // 排序模块
	ModuleConfig    = "config"    // 配置模块
)

// 通用错误检查函数

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsShapeMismatch 检查错误是否为 SHAPE_MISMATCH
func IsShapeMismatch(err error) bool {
	return hasCode(err, ErrorCodeShapeMismatch)
}

// IsUnsupportedLabelType 检查错误是否为 UNSUPPORTED_LABEL_TYPE
func IsUnsupportedLabelType(err error) bool {
	return hasCode(err, ErrorCodeUnsupportedLabelType)
}

// IsTooFewClasses 检查错误是否为 TOO_FEW_CLASSES
func IsTooFewClasses(err error) bool {
	return hasCode(err, ErrorCodeTooFewClasses)
}

// IsTooManyClasses 检查错误是否为 TOO_MANY_CLASSES
func IsTooManyClasses(err error) bool {
	return hasCode(err, ErrorCodeTooManyClasses)
}

// IsDegenerateClass 检查错误是否为 DEGENERATE_CLASS
func IsDegenerateClass(err error) bool {
	return hasCode(err, ErrorCodeDegenerateClass)
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrorCodeInvalidInput)
}
