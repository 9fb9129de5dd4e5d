package element

// Combine 并联/串联合成规则
type Combine uint8

const (
	CombineNone       Combine = iota // 不支持
	CombineSum                       // 直接求和
	CombineReciprocal                // 倒数和的倒数
)

// Reactance 频率相关阻抗计算，value 为元件值，frequency 单位 Hz
type Reactance func(value complex128, frequency float64) complex128

// Config 元件类型配置结构体，存储元件的静态信息。
// 这些配置在 init 中注册，之后只读。
type Config struct {
	Name      string    // 类型名称（如 "Resistance"）
	Symbol    string    // 电路符号（如 "R"）
	Unit      string    // 单位（如 "Ohm"）
	Family    Type      // 运算族，零值表示自身
	Real      bool      // 构造时要求虚部为零
	Reactance Reactance // 频率相关阻抗，nil 表示不支持
	Parallel  Combine   // 并联规则
	Series    Combine   // 串联规则
}
