package common

import "strings"

// RoomType distinguishes a two-person chat from a named group.
type RoomType string

const (
	RoomTypeDirect RoomType = "direct"
	RoomTypeGroup  RoomType = "group"
)

func (rt RoomType) IsValid() bool {
	return rt == RoomTypeDirect || rt == RoomTypeGroup
}

// ParticipantRole is the role a user holds inside a room.
type ParticipantRole string

const (
	RoleAdmin  ParticipantRole = "admin"
	RoleMember ParticipantRole = "member"
)

// MessageType classifies the payload of a chat message.
type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeFile  MessageType = "file"
	MessageTypeImage MessageType = "image"
	MessageTypeVoice MessageType = "voice"
)

func (mt MessageType) String() string {
	return string(mt)
}

func (mt MessageType) IsValid() bool {
	switch mt {
	case MessageTypeText, MessageTypeFile, MessageTypeImage, MessageTypeVoice:
		return true
	}
	return false
}

// BottleStatus is the dream-bottle lifecycle state. Matched and expired
// are terminal.
type BottleStatus string

const (
	BottleStatusActive  BottleStatus = "active"
	BottleStatusMatched BottleStatus = "matched"
	BottleStatusExpired BottleStatus = "expired"
)

func (bs BottleStatus) IsValid() bool {
	switch bs {
	case BottleStatusActive, BottleStatusMatched, BottleStatusExpired:
		return true
	}
	return false
}

func (bs BottleStatus) IsTerminal() bool {
	return bs == BottleStatusMatched || bs == BottleStatusExpired
}

// DetectMessageType maps a MIME type to the message classification used
// for attachment-bearing messages.
func DetectMessageType(mimeType string) MessageType {
	lower := strings.ToLower(mimeType)
	if strings.HasPrefix(lower, "image/") {
		return MessageTypeImage
	}
	if strings.HasPrefix(lower, "audio/") {
		return MessageTypeVoice
	}
	return MessageTypeFile
}
