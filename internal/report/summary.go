package report

import (
	"encoding/json"

	"github.com/Mavwarf/assetgen/internal/raster"
)

// Summary is the machine-readable outcome of one pipeline run, sent to
// the optional MQTT broker and webhook.
type Summary struct {
	Pipeline string         `json:"pipeline"`
	RunID    string         `json:"run_id,omitempty"`
	Status   string         `json:"status"`
	Error    string         `json:"error,omitempty"`
	Assets   []raster.Asset `json:"assets"`
}

// Payload encodes s as JSON. Assets is never null.
func (s Summary) Payload() ([]byte, error) {
	if s.Assets == nil {
		s.Assets = []raster.Asset{}
	}
	return json.Marshal(s)
}
