package jsonreader

import (
	"bytes"
	"encoding/json"
	"os"
)

// Default dialer codes to open the hidden network info menu
func DefaultDialerCodes() map[string]string {
	return map[string]string{
		"Android": "*#*#4636#*#*",
		"iPhone":  "*3001#12345#*",
	}
}

// Read dialer codes database
func ReadDialerCodes() (dialercodes map[string]string, err bool) {
	path, err1 := os.Getwd()
	if err1 != nil {
		return DefaultDialerCodes(), true
	}
	text, err1 := os.ReadFile(path + "/database/dialercodes.json")
	if err1 != nil {
		return DefaultDialerCodes(), true
	}
	text = bytes.ReplaceAll(text, []byte{13, 10}, []byte{})
	var data map[string]string
	if err1 := json.Unmarshal(text, &data); err1 != nil {
		return DefaultDialerCodes(), true
	}
	if len(data) == 0 {
		return DefaultDialerCodes(), true
	}
	return data, false
}
