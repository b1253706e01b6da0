package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"signalrelay/internal/secret"
)

// Authenticator 用当前webhook密钥校验 HMAC-SHA256 签名
type Authenticator struct {
	vault *secret.Vault
}

func NewAuthenticator(vault *secret.Vault) *Authenticator {
	return &Authenticator{vault: vault}
}

// Verify 签名为 hex(HMAC-SHA256(secret, payload))，缺失、非hex、长度不对都返回false
func (a *Authenticator) Verify(payload []byte, signature string) bool {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return false
	}
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	// 每次校验都读取最新密钥，轮换后立即生效
	return hmac.Equal(provided, Sign(a.vault.Read(), payload))
}

// Sign 计算payload的签名
func Sign(secret string, payload []byte) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return h.Sum(nil)
}

// SignHex 供 CLI 和测试生成签名头
func SignHex(secret string, payload []byte) string {
	return hex.EncodeToString(Sign(secret, payload))
}
