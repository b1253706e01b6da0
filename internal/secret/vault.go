package secret

import "sync"

// Vault 保存当前的webhook共享密钥，可被操作员随时轮换
type Vault struct {
	mu     sync.RWMutex
	secret string
}

func NewVault(initial string) *Vault {
	return &Vault{secret: initial}
}

func (v *Vault) Read() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.secret
}

// Rotate 无条件覆盖，不保留历史
func (v *Vault) Rotate(newSecret string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.secret = newSecret
}
