package feed

const dataURIPrefix = "data:image/jpeg;base64,"

// FrameMessage is one inbound text frame, expected to hold a base64 JPEG.
type FrameMessage struct {
	Payload string
}

// DataURI builds the image source for msg. The payload is used verbatim.
func DataURI(msg FrameMessage) string {
	return dataURIPrefix + msg.Payload
}
