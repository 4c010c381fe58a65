package utils

import (
	"strconv"

	"lst-valuation-sol/internal/consts"
)

// ParseUint64 将 RPC 返回的十进制余额字符串解析为 uint64，非法输入返回 0。
// RPC 的 uiTokenAmount.amount 恒为十进制整数字符串，解析失败视为余额缺失。
func ParseUint64(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// IsSPLToken 判断 programId 是否为标准 SPL Token 程序（Tokenkeg / Token-2022）。
func IsSPLToken(programId string) bool {
	return programId == consts.TokenProgramStr || programId == consts.TokenProgram2022Str
}
