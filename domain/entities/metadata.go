package entities

// Metadata describes a message that leaves the explorer
// + City: city which belongs the data
// + Type: helps consumers to recognize what type of data is
// + Stage: component that built the message
// + Message: human readable summary
type Metadata struct {
	City    string `json:"city"`
	Type    string `json:"type"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

func NewMetadata(city string, dataType string, stage string, message string) Metadata {
	return Metadata{
		City:    city,
		Type:    dataType,
		Stage:   stage,
		Message: message,
	}
}
