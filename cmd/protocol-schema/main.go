package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/kawertyff-source/Simungboxing-128/internal/protocol"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if err := writeSchema(outPath, buildSchema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}

	payloads := make([]*jsonschema.Schema, 0, len(protocol.Messages))
	for _, m := range protocol.Messages {
		s := reflector.ReflectFromType(reflect.TypeOf(m.Payload))
		s.Version = ""
		s.Title = m.Type
		if m.FromClient {
			s.Description = "client -> server payload of \"" + m.Type + "\""
		} else {
			s.Description = "server -> client payload of \"" + m.Type + "\""
		}
		payloads = append(payloads, s)
	}

	envelope := reflector.ReflectFromType(reflect.TypeOf(protocol.Envelope{}))
	envelope.Version = ""
	envelope.Title = "envelope"
	envelope.Description = "Every frame is an envelope {t, p}; p matches the payload titled t."

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Counterpunch Fight Protocol",
		Description: fmt.Sprintf("Websocket messages of protocol version %d.", protocol.Version),
		OneOf:       append([]*jsonschema.Schema{envelope}, payloads...),
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	return os.Rename(tmpPath, outPath)
}
