package observ

import (
	"encoding/json"
	"fmt"
	"time"
)

// Log emits a one-line JSON event to stdout. Key/value pairs are merged with
// a timestamp and the event name.
func Log(event string, kv map[string]any) {
	if kv == nil {
		kv = map[string]any{}
	}
	kv["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	kv["event"] = event
	b, _ := json.Marshal(kv)
	fmt.Println(string(b))
}
