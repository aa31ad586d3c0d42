package utils

import (
	"encoding/json"
	"net/http"
)

// DecodeJSONMap décode un corps JSON en map brute, sans rien supposer des
// champs ni de leurs types. UseNumber préserve la distinction entier /
// fractionnaire pour le validateur.
func DecodeJSONMap(r *http.Request) (map[string]interface{}, error) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	var payload map[string]interface{}
	if err := decoder.Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}
