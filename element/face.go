package element

import (
	"fmt"
	"log"
	"slices"
	"strings"
)

// Type 元件类型标识
// 每个元件类型都有一个唯一的 Type 值，用于在 typeList 中查找其配置
type Type uint8

// NumberType 纯数值，表示标量操作数或无量纲的运算结果
const NumberType Type = 0

// typeList 元件类型注册表
var typeList = map[Type]*Config{}

func init() {
	if err := Register(NumberType, &Config{Name: "Number"}); err != nil {
		panic(err)
	}
}

// Register 注册元件类型
// 重复注册返回错误，调用方一般在 init 中 panic
func Register(t Type, config *Config) error {
	if _, ok := typeList[t]; ok {
		return fmt.Errorf("元件类型重复注册: %d", t)
	}
	if config.Family == NumberType {
		config.Family = t
	}
	typeList[t] = config
	return nil
}

// mustRegister 注册失败直接终止
func mustRegister(t Type, config *Config) Type {
	if err := Register(t, config); err != nil {
		log.Fatal(err)
	}
	return t
}

// Config 获取元件类型配置，未注册返回 nil
func (t Type) Config() *Config { return typeList[t] }

// String 类型名称
func (t Type) String() string {
	if config, ok := typeList[t]; ok {
		return config.Name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Unit 单位
func (t Type) Unit() string {
	if config, ok := typeList[t]; ok {
		return config.Unit
	}
	return ""
}

// Family 运算族，电阻归属阻抗族
func (t Type) Family() Type {
	if config, ok := typeList[t]; ok {
		return config.Family
	}
	return t
}

// Types 全部已注册的元件类型（不含 NumberType）
func Types() []Type {
	list := make([]Type, 0, len(typeList))
	for t := range typeList {
		if t != NumberType {
			list = append(list, t)
		}
	}
	slices.Sort(list)
	return list
}

// ParseType 按名称或符号查找类型，不区分大小写，例如 "Capacitance"、"c"
func ParseType(name string) (Type, error) {
	name = strings.TrimSpace(name)
	for t, config := range typeList {
		if t == NumberType {
			continue
		}
		if strings.EqualFold(config.Name, name) || strings.EqualFold(config.Symbol, name) {
			return t, nil
		}
	}
	return NumberType, fmt.Errorf("未知的元件类型 '%s'", name)
}
