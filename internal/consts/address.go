package consts

import "lst-valuation-sol/internal/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr    = "11111111111111111111111111111111"
	TokenProgramStr     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TokenProgram2022Str = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"

	// Marinade 流动性质押协议
	MarinadeProgramStr = "MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD" // marinade-finance 主程序
	MarinadeStateStr   = "8szGkuLTAux9XMgZ2vtY39jVSowEcpBfFfD8hXSEqdGC" // 协议全局 State 账户
	MarinadeReserveStr = "Du3Ysj1wKbxPKkuPPnvzQLQh8oMSVifs3jGZjJWXFmHN" // SOL 储备金 PDA

	// 计价与标的资产
	WSOLMintStr = "So11111111111111111111111111111111111111112"
	MSOLMintStr = "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So"
)

var (
	// Programs
	SystemProgram    = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram     = types.PubkeyFromBase58(TokenProgramStr)
	TokenProgram2022 = types.PubkeyFromBase58(TokenProgram2022Str)

	// Marinade
	MarinadeProgram = types.PubkeyFromBase58(MarinadeProgramStr)
	MarinadeState   = types.PubkeyFromBase58(MarinadeStateStr)
	MarinadeReserve = types.PubkeyFromBase58(MarinadeReserveStr)

	// Mints
	WSOLMint = types.PubkeyFromBase58(WSOLMintStr)
	MSOLMint = types.PubkeyFromBase58(MSOLMintStr)
)
