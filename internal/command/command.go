package command

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind 操作员消息的类型
type Kind int

const (
	KindText           Kind = iota // 不是命令：交给会话或回复帮助
	KindSetSecret                  // /setsecret SECRET
	KindGetSecret                  // /getsecret
	KindSetPreset                  // /set TICKER SIZE PROFIT
	KindSetBadUsage                // /set TICKER SIZE PROFIT，但数字非法
	KindSetInteractive             // /set
	KindShow                       // /show
)

func (k Kind) String() string {
	switch k {
	case KindSetSecret:
		return "setsecret"
	case KindGetSecret:
		return "getsecret"
	case KindSetPreset:
		return "set"
	case KindSetBadUsage:
		return "set-usage"
	case KindSetInteractive:
		return "set-interactive"
	case KindShow:
		return "show"
	default:
		return "text"
	}
}

// Command 解析后的消息
type Command struct {
	Kind Kind
	Text string // 去掉首尾空白的原始文本

	Secret string
	Ticker string
	Size   decimal.Decimal
	Profit decimal.Decimal // 百分数，5 表示 5%
}

// Parse 命令关键字不区分大小写，参数按空白切分
func Parse(text string) Command {
	text = strings.TrimSpace(text)
	cmd := Command{Kind: KindText, Text: text}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return cmd
	}

	switch strings.ToLower(fields[0]) {
	case "/setsecret":
		// 密钥取关键字之后的整段内容，允许包含空格
		if len(fields) > 1 {
			cmd.Kind = KindSetSecret
			cmd.Secret = strings.TrimSpace(text[len(fields[0]):])
		}
	case "/getsecret":
		if len(fields) == 1 {
			cmd.Kind = KindGetSecret
		}
	case "/set":
		switch len(fields) {
		case 1:
			cmd.Kind = KindSetInteractive
		case 4:
			cmd.Ticker = strings.ToUpper(fields[1])
			size, err1 := decimal.NewFromString(fields[2])
			profit, err2 := decimal.NewFromString(fields[3])
			if err1 != nil || err2 != nil || !size.IsPositive() || profit.IsNegative() {
				cmd.Kind = KindSetBadUsage
				return cmd
			}
			cmd.Kind = KindSetPreset
			cmd.Size = size
			cmd.Profit = profit
		}
	case "/show":
		if len(fields) == 1 {
			cmd.Kind = KindShow
		}
	}
	return cmd
}

// Direct 是否不受进行中的会话影响，优先处理
func (c Command) Direct() bool {
	switch c.Kind {
	case KindSetSecret, KindGetSecret, KindSetPreset, KindSetBadUsage:
		return true
	default:
		return false
	}
}
