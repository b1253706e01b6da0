package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"

	// DefaultSignatureHeader webhook签名头
	DefaultSignatureHeader = "X-Signature"
)
