package energy

import (
	"encoding/json"
	"os"
)

// WriteJSON writes v to filename as indented UTF-8 JSON, one of the three
// files the pipeline stages hand to each other
func WriteJSON(filename string, v any) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func ReadRecords(filename string) ([]*Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var records []*Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
