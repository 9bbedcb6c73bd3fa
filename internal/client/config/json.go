package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/A-PollyMer/blogsite-cli/internal/flagx"
	"github.com/A-PollyMer/blogsite-cli/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds.
type jsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionFile    string         `json:"session_file"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. Absent flag means no JSON is loaded. Read or
// unmarshal errors panic; the binary cannot run with a config it was
// explicitly pointed at but cannot read.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
}
