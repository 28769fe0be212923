package bale

// File carries the attributes shared by every downloadable attachment kind.
type File struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	FileSize     Opt[int64] `json:"file_size"`
}

// Ref returns the reusable reference to this file.
func (f File) Ref() FileRef {
	return FileRef(f.FileID)
}

// FileRef references an already uploaded file by its file_id, or external
// content by HTTP URL. Uploading new file content is out of scope for this
// client.
type FileRef string

// PhotoSize is one size of a photo or a thumbnail.
type PhotoSize struct {
	File
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Photos is a message photo in all its available sizes.
type Photos []PhotoSize

// Document is a general file.
type Document struct {
	File
	FileName Opt[string] `json:"file_name"`
	MimeType Opt[string] `json:"mime_type"`
}

// Audio is an audio file to be treated as music.
type Audio struct {
	File
	Duration int         `json:"duration"`
	Title    Opt[string] `json:"title"`
	FileName Opt[string] `json:"file_name"`
	MimeType Opt[string] `json:"mime_type"`
}

// Voice is a voice note.
type Voice struct {
	File
	Duration int         `json:"duration"`
	MimeType Opt[string] `json:"mime_type"`
}

// Video is a video file.
type Video struct {
	File
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Duration int         `json:"duration"`
	FileName Opt[string] `json:"file_name"`
	MimeType Opt[string] `json:"mime_type"`
}

// Animation is an animation file (GIF or H.264/MPEG-4 AVC video without sound).
type Animation struct {
	File
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Duration  int         `json:"duration"`
	Thumbnail *PhotoSize  `json:"thumbnail"`
	FileName  Opt[string] `json:"file_name"`
	MimeType  Opt[string] `json:"mime_type"`
}

// Sticker is a sticker.
type Sticker struct {
	File
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	SetName Opt[string] `json:"set_name"`
}

// Attachment is one of the media payloads a message may carry.
// The implementations are *Video, Photos, *Audio, *Animation, *Voice
// and *Document.
type Attachment interface {
	attachment()
}

func (*Video) attachment()     {}
func (Photos) attachment()     {}
func (*Audio) attachment()     {}
func (*Animation) attachment() {}
func (*Voice) attachment()     {}
func (*Document) attachment()  {}
