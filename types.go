package bale

type (
	// User (https://docs.bale.ai/types#user)
	User struct {
		ID        ID            `json:"id"`
		IsBot     bool          `json:"is_bot"`
		FirstName string        `json:"first_name"`
		LastName  Opt[string]   `json:"last_name"`
		Username  Opt[Username] `json:"username"`
	}

	// ChatPhoto (https://docs.bale.ai/types#chatphoto)
	ChatPhoto struct {
		SmallFileID       Opt[string] `json:"small_file_id"`
		SmallFileUniqueID Opt[string] `json:"small_file_unique_id"`
		BigFileID         Opt[string] `json:"big_file_id"`
		BigFileUniqueID   Opt[string] `json:"big_file_unique_id"`
	}

	// Contact is a shared phone contact.
	Contact struct {
		PhoneNumber string      `json:"phone_number"`
		FirstName   string      `json:"first_name"`
		LastName    Opt[string] `json:"last_name"`
		UserID      Opt[ID]     `json:"user_id"`
	}

	// Location is a shared point on the map.
	Location struct {
		Longitude float64 `json:"longitude"`
		Latitude  float64 `json:"latitude"`
	}

	// LabeledPrice is a price component of an invoice.
	LabeledPrice struct {
		Label  string `json:"label"`
		Amount int    `json:"amount"`
	}

	// Invoice contains basic information about an invoice attached to a message.
	Invoice struct {
		Title          string `json:"title"`
		Description    string `json:"description"`
		StartParameter string `json:"start_parameter"`
		Currency       string `json:"currency"`
		TotalAmount    int    `json:"total_amount"`
	}

	// SuccessfulPayment is a service message about a completed payment.
	SuccessfulPayment struct {
		Currency         string      `json:"currency"`
		TotalAmount      int         `json:"total_amount"`
		InvoicePayload   Opt[string] `json:"invoice_payload"`
		ShippingOptionID Opt[string] `json:"shipping_option_id"`
	}

	// Update (https://docs.bale.ai/types#update)
	Update struct {
		ID            ID             `json:"update_id"`
		Message       *Message       `json:"message"`
		EditedMessage *Message       `json:"edited_message"`
		CallbackQuery *CallbackQuery `json:"callback_query"`
	}

	// CallbackQuery is an incoming callback from an inline keyboard button.
	CallbackQuery struct {
		ID      string      `json:"id"`
		From    *User       `json:"from"`
		Message *Message    `json:"message"`
		Data    Opt[string] `json:"data"`
	}
)

func (u User) userID() ID {
	return u.ID
}

func (u *Update) bind(bot Client) *Update {
	if u == nil {
		return nil
	}

	u.Message.bind(bot)
	u.EditedMessage.bind(bot)
	if q := u.CallbackQuery; q != nil {
		q.Message.bind(bot)
	}

	return u
}
