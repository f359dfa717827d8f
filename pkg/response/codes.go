package response

// 业务错误码
// 1xxxx 通用 / 11xxx 认证 / 12xxx 学生 / 13xxx 申请与报告
const (
	CodeBadParams    = 10001
	CodeUnauthorized = 10002
	CodeForbidden    = 10003
	CodeBodyTooLarge = 10005

	CodeInvalidCredentials = 11001
	CodeDuplicateUsername  = 11002

	CodeAlreadyApplied    = 13001
	CodeInvalidStatus     = 13002
	CodeInvalidTransition = 13003

	CodeInternal = 50000
)
