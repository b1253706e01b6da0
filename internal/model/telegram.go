package model

// TelegramUpdate 只保留用到的字段
//
//	{ "message": { "chat": { "id": 123 }, "text": "/show" } }
type TelegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *TelegramMessage `json:"message"`
}

type TelegramMessage struct {
	Chat TelegramChat `json:"chat"`
	Text string       `json:"text"`
}

type TelegramChat struct {
	ID int64 `json:"id" binding:"required"`
}
