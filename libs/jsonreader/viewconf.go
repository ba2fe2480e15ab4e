package jsonreader

import (
	"bytes"
	"encoding/json"
	"os"
)

// Default view settings of the result panel
func DefaultViewConf() ViewConf {
	return ViewConf{ShowCaps: true, ShowDialerCodes: true, ShowHz: false}
}

// Read view config
func ReadViewConf() (ViewConf, bool) {
	path, err := os.Getwd()
	if err != nil {
		return DefaultViewConf(), true
	}
	text, err := os.ReadFile(path + "/config/viewconf.json")
	if err != nil {
		return DefaultViewConf(), true
	}
	text = bytes.ReplaceAll(text, []byte{13, 10}, []byte{})
	var conf ViewConf = DefaultViewConf()
	if err := json.Unmarshal(text, &conf); err != nil {
		return DefaultViewConf(), true
	}
	return conf, false
}
