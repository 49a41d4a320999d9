package response

// 业务错误码
// 0 表示成功，1xxxx 为客户端错误，5xxxx 为服务端错误
const (
	CodeOK              = 0
	CodeInvalidParam    = 10001
	CodeUnauthorized    = 10002
	CodeForbidden       = 10003
	CodeNotFound        = 10004
	CodeConflict        = 10005
	CodeTooManyRequests = 10006
	CodeInternal        = 50000
)
