package bale

// ReplyMarkup is a closed union of keyboard components attachable to an
// outgoing message.
type ReplyMarkup interface {
	self() ReplyMarkup
}

// InlineKeyboardButton is one button of an inline keyboard.
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

// InlineKeyboardMarkup is an inline keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

func (m InlineKeyboardMarkup) self() ReplyMarkup {
	return m
}

// MenuKeyboardButton is one button of a menu (reply) keyboard.
type MenuKeyboardButton struct {
	Text            string `json:"text"`
	RequestContact  bool   `json:"request_contact,omitempty"`
	RequestLocation bool   `json:"request_location,omitempty"`
}

// MenuKeyboardMarkup is a custom keyboard shown instead of the device keyboard.
type MenuKeyboardMarkup struct {
	Keyboard [][]MenuKeyboardButton `json:"keyboard"`
}

func (m MenuKeyboardMarkup) self() ReplyMarkup {
	return m
}
