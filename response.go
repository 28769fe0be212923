package bale

import (
	"io"
	"time"

	"github.com/jfk9w-go/flu"
)

// responseParameters carries additional information about a failed request.
type responseParameters struct {
	MigrateToChatID ID  `json:"migrate_to_chat_id"`
	RetryAfter      int `json:"retry_after"`
}

// response is the generic Bale Bot API response envelope.
// See https://docs.bale.ai/methods#making-requests
type response struct {
	Ok          bool                `json:"ok"`
	ErrorCode   int                 `json:"error_code"`
	Description string              `json:"description"`
	Result      interface{}         `json:"result"`
	Parameters  *responseParameters `json:"parameters"`
}

func newResponse(value interface{}) *response {
	return &response{
		Result: value,
	}
}

func (r *response) DecodeFrom(reader io.Reader) error {
	if err := flu.JSON(r).DecodeFrom(reader); err != nil {
		return err
	}

	if !r.Ok {
		var retryAfter time.Duration
		if r.Parameters != nil && r.Parameters.RetryAfter > 0 {
			retryAfter = time.Duration(r.Parameters.RetryAfter) * time.Second
		}

		return classify(r.ErrorCode, r.Description, retryAfter)
	}

	return nil
}
