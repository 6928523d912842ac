package protocol

// messages coming in from the browser

type Hello struct {
	V int `json:"v" jsonschema:"description=Protocol version"`
}

type Attack struct {
	Technique string `json:"technique" jsonschema:"enum=jab,enum=hook,enum=straight,enum=uppercut"`
}
