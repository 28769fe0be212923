package bale

// MediaType is the kind of a media group item.
type MediaType string

const (
	MediaPhoto     MediaType = "photo"
	MediaVideo     MediaType = "video"
	MediaAnimation MediaType = "animation"
	MediaAudio     MediaType = "audio"
	MediaDocument  MediaType = "document"
)

// Media is one item of a media album sent via SendMediaGroup.
type Media struct {
	Type    MediaType `json:"type"`
	Media   FileRef   `json:"media"`
	Caption string    `json:"caption,omitempty"`
}

// NewInvoice describes an invoice to be sent via SendInvoice.
type NewInvoice struct {
	Title         string
	Description   string
	ProviderToken string
	Prices        []LabeledPrice
}
