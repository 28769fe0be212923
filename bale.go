// Package bale provides a typed client for the Bale Bot API.
//
// Entities (Chat, Message, User, etc.) are decoded from the platform's JSON
// payloads once and never modified afterwards; derived accessors are pure
// functions of the decoded fields. Entities returned by a client carry a
// reference to it, so shortcut methods like Chat.Send and Message.Reply
// forward straight to the corresponding API call.
package bale

import "github.com/jfk9w-go/flu/logf"

const rootLoggerName = "bale.client"

func log() logf.Interface {
	return logf.Get(rootLoggerName)
}
