package uuid

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	guuid "github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenUUID16 16位请求id
func GenUUID16() string {
	return strings.ReplaceAll(guuid.NewString(), "-", "")[:16]
}

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// 同一毫秒内生成的id保持递增
	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// GenULID 按时间排序的事件id
func GenULID(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t.UTC()), mono)
	if err != nil {
		// 只有时间回拨或熵耗尽才会出错，退化为随机id
		return ulid.Make().String()
	}
	return id.String()
}
