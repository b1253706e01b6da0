package main

import (
	"os"
)

// 启动服务（监听webhook与Telegram）

/*
测试

BODY='{"ticker":"AAPL","signal":"BUY"}'
SIGNATURE=$(relay sign --secret "$WEBHOOK_SECRET" "$BODY")

curl -X POST http://localhost:8000/webhook \
  -H "Content-Type: application/json" \
  -H "X-Signature: $SIGNATURE" \
  -d "$BODY"
*/

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
